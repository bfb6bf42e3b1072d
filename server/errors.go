package server

import (
	"errors"
	"fmt"
	"net/http"

	texttranslator "github.com/YourCarma/text-translator"
	"go.uber.org/zap"
)

// ErrorKind classifies failures reported to HTTP clients.
type ErrorKind int

const (
	KindInternalError ErrorKind = iota
	KindNotFound
	KindServiceUnavailable
	KindUnauthorized
	KindDeserializeError
	KindNoCredits
	KindModelModerationError
	KindRateLimited
	KindInvalidResponse
	KindIOError
	KindTimeout
	KindBadRequest
	KindSerdeError
	KindRequestError
	KindUnsupportedMediaType
)

var kindInfo = map[ErrorKind]struct {
	name   string
	status int
}{
	KindInternalError:        {"internal_error", http.StatusInternalServerError},
	KindNotFound:             {"not_found", http.StatusNotFound},
	KindServiceUnavailable:   {"service_unavailable", http.StatusServiceUnavailable},
	KindUnauthorized:         {"unauthorized", http.StatusUnauthorized},
	KindDeserializeError:     {"deserialize_error", http.StatusBadGateway},
	KindNoCredits:            {"no_credits", http.StatusPaymentRequired},
	KindModelModerationError: {"model_moderation_error", http.StatusForbidden},
	KindRateLimited:          {"rate_limited", http.StatusTooManyRequests},
	KindInvalidResponse:      {"invalid_response", http.StatusNoContent},
	KindIOError:              {"io_error", http.StatusNoContent},
	KindTimeout:              {"timeout", http.StatusRequestTimeout},
	KindBadRequest:           {"bad_request", http.StatusBadRequest},
	KindSerdeError:           {"serde_error", http.StatusUnprocessableEntity},
	KindRequestError:         {"request_error", http.StatusBadGateway},
	KindUnsupportedMediaType: {"unsupported_media_type", http.StatusUnsupportedMediaType},
}

func (k ErrorKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a failure ready to be sent to a client as {"message": ...}.
type Error struct {
	Kind    ErrorKind
	Message string
}

// NewError creates a transport error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Status returns the HTTP status for the error. In strict mode IO and
// invalid-response failures are reported as 502 instead of 204.
func (e *Error) Status(strict bool) int {
	if strict && (e.Kind == KindIOError || e.Kind == KindInvalidResponse) {
		return http.StatusBadGateway
	}
	if info, ok := kindInfo[e.Kind]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// providerMapping holds the transport kind and fixed client message for every
// provider kind. An empty message means the provider detail is passed through.
var providerMapping = map[texttranslator.ErrorKind]struct {
	kind    ErrorKind
	message string
}{
	texttranslator.KindBadRequest:           {KindBadRequest, ""},
	texttranslator.KindDeserializeError:     {KindDeserializeError, "Invalid payload in model response. Try again."},
	texttranslator.KindIOError:              {KindIOError, "Response reading or sending error."},
	texttranslator.KindRequestError:         {KindRequestError, "Request Error"},
	texttranslator.KindInvalidResponse:      {KindInvalidResponse, "Invalid Response from model API. See the logs"},
	texttranslator.KindNoCredits:            {KindNoCredits, "You have not credits on API"},
	texttranslator.KindModelModerationError: {KindModelModerationError, "Model API is on moderation. Try another model"},
	texttranslator.KindRateLimited:          {KindRateLimited, "Too many requests for API"},
	texttranslator.KindServiceUnavailable:   {KindServiceUnavailable, "Model provider is unavailable"},
	texttranslator.KindTimeout:              {KindTimeout, "API request to model timeout"},
	texttranslator.KindUnauthorized:         {KindUnauthorized, "Unauthorized to API"},
	texttranslator.KindOther:                {KindInternalError, "Internal server error"},
}

// FromProviderError converts a translation failure into a transport error
// and logs it once. Errors that are not *ProviderError map to InternalError.
func FromProviderError(err error, logger *zap.Logger) *Error {
	kind := texttranslator.KindOf(err)
	if logger != nil {
		logger.Error("Translation failed", zap.Stringer("kind", kind), zap.Error(err))
	}

	m, ok := providerMapping[kind]
	if !ok {
		return NewError(KindInternalError, "Internal server error")
	}

	message := m.message
	if message == "" {
		message = providerDetail(err)
	}
	return NewError(m.kind, message)
}

func providerDetail(err error) string {
	var pe *texttranslator.ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return "Bad request"
}
