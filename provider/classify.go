package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/sashabaranov/go-openai"
)

const quotaErrorCode = "insufficient_quota"

// classifyError wraps a go-openai client error into a ProviderError.
func classifyError(err error) error {
	kind, message := classify(err)
	return texttranslator.NewProviderError(kind, message, err)
}

func classify(err error) (texttranslator.ErrorKind, string) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if fmt.Sprint(apiErr.Code) == quotaErrorCode || apiErr.Type == quotaErrorCode {
			return texttranslator.KindNoCredits, "provider quota exhausted"
		}
		return kindForStatus(apiErr.HTTPStatusCode), fmt.Sprintf("provider API error (%d)", apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return kindForStatus(reqErr.HTTPStatusCode), fmt.Sprintf("provider request failed (%d)", reqErr.HTTPStatusCode)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return texttranslator.KindTimeout, "provider call timed out"
	}
	if errors.Is(err, context.Canceled) {
		return texttranslator.KindRequestError, "provider call cancelled"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return texttranslator.KindTimeout, "provider call timed out"
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return texttranslator.KindDeserializeError, "cannot decode provider response"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" {
			return texttranslator.KindServiceUnavailable, "provider unreachable"
		}
		return texttranslator.KindIOError, "connection error"
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return texttranslator.KindIOError, "connection closed"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return texttranslator.KindRequestError, "provider request failed"
	}

	return texttranslator.KindOther, "unexpected provider failure"
}

func kindForStatus(status int) texttranslator.ErrorKind {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return texttranslator.KindBadRequest
	case http.StatusUnauthorized:
		return texttranslator.KindUnauthorized
	case http.StatusPaymentRequired:
		return texttranslator.KindNoCredits
	case http.StatusForbidden:
		return texttranslator.KindModelModerationError
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return texttranslator.KindTimeout
	case http.StatusTooManyRequests:
		return texttranslator.KindRateLimited
	}
	if status >= 500 && status < 600 {
		return texttranslator.KindServiceUnavailable
	}
	return texttranslator.KindOther
}
