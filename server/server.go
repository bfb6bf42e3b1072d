// Package server exposes the translator over HTTP with gin.
package server

import (
	"context"
	"net/http"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Translator is the translation pipeline the HTTP surface serves.
type Translator interface {
	Translate(ctx context.Context, task texttranslator.TranslateTask) (texttranslator.TranslationResult, error)
}

// Options configures the HTTP surface.
type Options struct {
	Translator Translator
	Logger     *zap.Logger

	// StrictErrorStatus reports IO and invalid-response failures as 502
	// instead of 204 No Content.
	StrictErrorStatus bool

	// Metrics defaults to a fresh registry per server.
	Metrics *Metrics
}

type server struct {
	translator Translator
	logger     *zap.Logger
	strict     bool
	metrics    *Metrics
}

// New creates a new router with all routes configured.
func New(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	s := &server{
		translator: opts.Translator,
		logger:     logger,
		strict:     opts.StrictErrorStatus,
		metrics:    metrics,
	}

	r := gin.New()

	// Middleware
	r.Use(requestID())
	r.Use(ginLogger(logger))
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(metrics.middleware())

	r.GET("/", s.index)
	r.GET("/health", s.health)
	r.GET("/metrics", metrics.handler())
	registerDocs(r)

	v1 := r.Group("/api/v1")
	{
		translate := v1.Group("/translate")
		{
			translate.POST("/text", s.translateText)
		}
	}

	r.NoRoute(s.notFound)

	return r
}

// respondError writes e as {"message": ...}. For 204 gin sends headers only.
func (s *server) respondError(c *gin.Context, e *Error) {
	c.AbortWithStatusJSON(e.Status(s.strict), gin.H{"message": e.Message})
}

func (s *server) notFound(c *gin.Context) {
	s.respondError(c, NewError(KindNotFound, "Route "+c.Request.URL.Path+" not found"))
}

func (s *server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": texttranslator.Version,
	})
}

func (s *server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<a href="/docs">Documentation</a>`))
}
