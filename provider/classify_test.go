package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"reflect"
	"testing"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/sashabaranov/go-openai"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	var syntaxErr error
	{
		var v any
		syntaxErr = json.Unmarshal([]byte("{oops"), &v)
	}

	tests := []struct {
		name string
		err  error
		want texttranslator.ErrorKind
	}{
		{"api 400", &openai.APIError{HTTPStatusCode: 400}, texttranslator.KindBadRequest},
		{"api 404", &openai.APIError{HTTPStatusCode: 404}, texttranslator.KindBadRequest},
		{"api 401", &openai.APIError{HTTPStatusCode: 401}, texttranslator.KindUnauthorized},
		{"api 402", &openai.APIError{HTTPStatusCode: 402}, texttranslator.KindNoCredits},
		{"api 403", &openai.APIError{HTTPStatusCode: 403}, texttranslator.KindModelModerationError},
		{"api 408", &openai.APIError{HTTPStatusCode: 408}, texttranslator.KindTimeout},
		{"api 429", &openai.APIError{HTTPStatusCode: 429, Code: "rate_limit_exceeded"}, texttranslator.KindRateLimited},
		{"api quota code", &openai.APIError{HTTPStatusCode: 429, Code: "insufficient_quota"}, texttranslator.KindNoCredits},
		{"api quota type", &openai.APIError{HTTPStatusCode: 429, Type: "insufficient_quota"}, texttranslator.KindNoCredits},
		{"api 500", &openai.APIError{HTTPStatusCode: 500}, texttranslator.KindServiceUnavailable},
		{"api 418", &openai.APIError{HTTPStatusCode: 418}, texttranslator.KindOther},
		{"request 503", &openai.RequestError{HTTPStatusCode: 503, Err: errors.New("bad body")}, texttranslator.KindServiceUnavailable},
		{"request 504", &openai.RequestError{HTTPStatusCode: 504}, texttranslator.KindTimeout},
		{"deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), texttranslator.KindTimeout},
		{"canceled", &url.Error{Op: "Post", URL: "http://x", Err: context.Canceled}, texttranslator.KindRequestError},
		{"net timeout", &url.Error{Op: "Post", URL: "http://x", Err: timeoutErr{}}, texttranslator.KindTimeout},
		{"json syntax", syntaxErr, texttranslator.KindDeserializeError},
		{"json type", &json.UnmarshalTypeError{Value: "number", Type: reflect.TypeOf("")}, texttranslator.KindDeserializeError},
		{"dial", &url.Error{Op: "Post", URL: "http://x", Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}}, texttranslator.KindServiceUnavailable},
		{"read", &net.OpError{Op: "read", Err: errors.New("connection reset")}, texttranslator.KindIOError},
		{"unexpected eof", fmt.Errorf("decode: %w", io.ErrUnexpectedEOF), texttranslator.KindIOError},
		{"url error", &url.Error{Op: "Post", URL: "http://x", Err: errors.New("unsupported protocol")}, texttranslator.KindRequestError},
		{"other", errors.New("boom"), texttranslator.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, message := classify(tt.err)
			if kind != tt.want {
				t.Errorf("classify() kind = %v, want %v", kind, tt.want)
			}
			if message == "" {
				t.Error("classify() should return a message")
			}
		})
	}
}

func TestClassifyError_WrapsCause(t *testing.T) {
	cause := &openai.APIError{HTTPStatusCode: 401, Message: "bad key"}
	err := classifyError(cause)

	var pe *texttranslator.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProviderError, got %T", err)
	}
	if pe.Kind != texttranslator.KindUnauthorized {
		t.Errorf("Kind = %v", pe.Kind)
	}

	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		t.Error("cause should stay reachable through errors.As")
	}
}

func TestExtractTranslation(t *testing.T) {
	choice := func(content string, reason openai.FinishReason, refusal string) openai.ChatCompletionChoice {
		return openai.ChatCompletionChoice{
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content, Refusal: refusal},
			FinishReason: reason,
		}
	}

	tests := []struct {
		name    string
		choices []openai.ChatCompletionChoice
		want    string
		kind    texttranslator.ErrorKind
	}{
		{"ok", []openai.ChatCompletionChoice{choice("Привет", openai.FinishReasonStop, "")}, "Привет", 0},
		{"first choice wins", []openai.ChatCompletionChoice{choice("A", openai.FinishReasonStop, ""), choice("B", openai.FinishReasonStop, "")}, "A", 0},
		{"whitespace preserved", []openai.ChatCompletionChoice{choice("  Привет\n", openai.FinishReasonStop, "")}, "  Привет\n", 0},
		{"no choices", nil, "", texttranslator.KindInvalidResponse},
		{"empty", []openai.ChatCompletionChoice{choice("", openai.FinishReasonStop, "")}, "", texttranslator.KindInvalidResponse},
		{"content filter", []openai.ChatCompletionChoice{choice("", openai.FinishReasonContentFilter, "")}, "", texttranslator.KindModelModerationError},
		{"refusal", []openai.ChatCompletionChoice{choice("", openai.FinishReasonStop, "I can't help with that")}, "", texttranslator.KindModelModerationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractTranslation(openai.ChatCompletionResponse{Choices: tt.choices})
			if tt.kind != 0 {
				if texttranslator.KindOf(err) != tt.kind {
					t.Errorf("kind = %v, want %v", texttranslator.KindOf(err), tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("extractTranslation() = %q, want %q", got, tt.want)
			}
		})
	}
}
