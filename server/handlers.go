package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// translateRequest is the wire form of a translate call. Pointer fields let
// binding reject absent keys while still accepting empty strings.
type translateRequest struct {
	SourceLanguage *string `json:"source_language" binding:"required"`
	TargetLanguage *string `json:"target_language" binding:"required"`
	Text           *string `json:"text" binding:"required"`
}

func (r translateRequest) task() texttranslator.TranslateTask {
	return texttranslator.TranslateTask{
		SourceLanguage: *r.SourceLanguage,
		TargetLanguage: *r.TargetLanguage,
		Text:           *r.Text,
	}
}

// translateText handles POST /api/v1/translate/text.
func (s *server) translateText(c *gin.Context) {
	logger := requestLogger(c, s.logger)

	if !isJSONContentType(c.ContentType()) {
		logger.Warn("Unsupported content type", zap.String("content_type", c.ContentType()))
		s.respondError(c, NewError(KindUnsupportedMediaType, "Expected request with `Content-Type: application/json`"))
		return
	}

	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid translate request", zap.Error(err))
		s.respondError(c, bindError(err))
		return
	}
	task := req.task()

	logger.Debug("Translating", zap.Stringer("task", task))

	result, err := s.translator.Translate(c.Request.Context(), task)
	if err != nil {
		e := FromProviderError(err, logger)
		s.metrics.observeTranslation(e.Kind.String())
		s.respondError(c, e)
		return
	}

	s.metrics.observeTranslation("ok")
	c.JSON(http.StatusOK, result)
}

func isJSONContentType(ct string) bool {
	return ct == "application/json" || (strings.HasPrefix(ct, "application/") && strings.HasSuffix(ct, "+json"))
}

// bindError reports unparsable JSON as 400 and well-formed JSON of the
// wrong shape as 422.
func bindError(err error) *Error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return NewError(KindBadRequest, "Failed to parse the request body as JSON: "+err.Error())
	}
	return NewError(KindSerdeError, "Invalid request body: "+err.Error())
}
