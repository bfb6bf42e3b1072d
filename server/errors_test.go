package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	texttranslator "github.com/YourCarma/text-translator"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromProviderError_Mapping(t *testing.T) {
	tests := []struct {
		kind    texttranslator.ErrorKind
		want    ErrorKind
		status  int
		message string
	}{
		{texttranslator.KindBadRequest, KindBadRequest, 400, "detail"},
		{texttranslator.KindDeserializeError, KindDeserializeError, 502, "Invalid payload in model response. Try again."},
		{texttranslator.KindIOError, KindIOError, 204, "Response reading or sending error."},
		{texttranslator.KindRequestError, KindRequestError, 502, "Request Error"},
		{texttranslator.KindInvalidResponse, KindInvalidResponse, 204, "Invalid Response from model API. See the logs"},
		{texttranslator.KindNoCredits, KindNoCredits, 402, "You have not credits on API"},
		{texttranslator.KindModelModerationError, KindModelModerationError, 403, "Model API is on moderation. Try another model"},
		{texttranslator.KindRateLimited, KindRateLimited, 429, "Too many requests for API"},
		{texttranslator.KindServiceUnavailable, KindServiceUnavailable, 503, "Model provider is unavailable"},
		{texttranslator.KindTimeout, KindTimeout, 408, "API request to model timeout"},
		{texttranslator.KindUnauthorized, KindUnauthorized, 401, "Unauthorized to API"},
		{texttranslator.KindOther, KindInternalError, 500, "Internal server error"},
	}

	if len(tests) != len(texttranslator.AllErrorKinds) {
		t.Fatalf("table covers %d kinds, provider defines %d", len(tests), len(texttranslator.AllErrorKinds))
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := texttranslator.NewProviderError(tt.kind, "detail", errors.New("cause"))
			got := FromProviderError(err, nil)

			if got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.want)
			}
			if got.Status(false) != tt.status {
				t.Errorf("Status = %d, want %d", got.Status(false), tt.status)
			}
			if got.Message != tt.message {
				t.Errorf("Message = %q, want %q", got.Message, tt.message)
			}

			again := FromProviderError(err, nil)
			if *again != *got {
				t.Error("mapping should be deterministic")
			}
		})
	}
}

func TestFromProviderError_EveryKindMapped(t *testing.T) {
	for _, kind := range texttranslator.AllErrorKinds {
		if _, ok := providerMapping[kind]; !ok {
			t.Errorf("no transport mapping for %v", kind)
		}
	}
}

func TestFromProviderError_PlainError(t *testing.T) {
	got := FromProviderError(fmt.Errorf("wrapped: %w", errors.New("boom")), nil)
	if got.Kind != KindInternalError || got.Status(false) != http.StatusInternalServerError {
		t.Errorf("plain errors should map to InternalError, got %v", got)
	}
}

func TestFromProviderError_WrappedProviderError(t *testing.T) {
	inner := texttranslator.NewProviderError(texttranslator.KindBadRequest, `unknown source language code "xx"`, nil)
	got := FromProviderError(fmt.Errorf("translate: %w", inner), nil)

	if got.Kind != KindBadRequest {
		t.Errorf("Kind = %v", got.Kind)
	}
	if got.Message != `unknown source language code "xx"` {
		t.Errorf("Message = %q", got.Message)
	}
}

func TestFromProviderError_Logs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	FromProviderError(texttranslator.NewProviderError(texttranslator.KindRateLimited, "429", nil), logger)

	entries := logs.FilterMessage("Translation failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["kind"]; got != "rate_limited" {
		t.Errorf("kind field = %v", got)
	}
}

func TestError_StrictStatus(t *testing.T) {
	tests := []struct {
		kind   ErrorKind
		normal int
		strict int
	}{
		{KindIOError, 204, 502},
		{KindInvalidResponse, 204, 502},
		{KindRateLimited, 429, 429},
		{KindSerdeError, 422, 422},
		{KindNotFound, 404, 404},
		{KindUnsupportedMediaType, 415, 415},
		{ErrorKind(99), 500, 500},
	}

	for _, tt := range tests {
		e := NewError(tt.kind, "x")
		if got := e.Status(false); got != tt.normal {
			t.Errorf("%v Status(false) = %d, want %d", tt.kind, got, tt.normal)
		}
		if got := e.Status(true); got != tt.strict {
			t.Errorf("%v Status(true) = %d, want %d", tt.kind, got, tt.strict)
		}
	}
}

func TestErrorKind_String(t *testing.T) {
	if KindSerdeError.String() != "serde_error" {
		t.Errorf("String() = %q", KindSerdeError.String())
	}
	if ErrorKind(99).String() != "kind(99)" {
		t.Errorf("String() = %q", ErrorKind(99).String())
	}
	if NewError(KindNotFound, "missing").Error() != "not_found: missing" {
		t.Errorf("Error() = %q", NewError(KindNotFound, "missing").Error())
	}
}
