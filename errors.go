package texttranslator

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a provider failure.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindBadRequest
	KindDeserializeError
	KindIOError
	KindRequestError
	KindInvalidResponse
	KindModelModerationError
	KindNoCredits
	KindRateLimited
	KindServiceUnavailable
	KindTimeout
	KindUnauthorized
)

// AllErrorKinds lists every provider error kind.
var AllErrorKinds = []ErrorKind{
	KindBadRequest,
	KindDeserializeError,
	KindIOError,
	KindRequestError,
	KindInvalidResponse,
	KindModelModerationError,
	KindNoCredits,
	KindRateLimited,
	KindServiceUnavailable,
	KindTimeout,
	KindUnauthorized,
	KindOther,
}

var kindNames = map[ErrorKind]string{
	KindOther:                "other",
	KindBadRequest:           "bad_request",
	KindDeserializeError:     "deserialize_error",
	KindIOError:              "io_error",
	KindRequestError:         "request_error",
	KindInvalidResponse:      "invalid_response",
	KindModelModerationError: "model_moderation_error",
	KindNoCredits:            "no_credits",
	KindRateLimited:          "rate_limited",
	KindServiceUnavailable:   "service_unavailable",
	KindTimeout:              "timeout",
	KindUnauthorized:         "unauthorized",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ProviderError indicates an AI provider failure (API error, rate limit, bad input, etc.).
type ProviderError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error (%s): %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error (%s): %s", e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError builds a ProviderError of the given kind.
func NewProviderError(kind ErrorKind, message string, cause error) *ProviderError {
	return &ProviderError{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind carried by err, or KindOther if err is not a ProviderError.
func KindOf(err error) ErrorKind {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Kind
	}
	return KindOther
}
