// Package logging builds the zap logger used across the service.
package logging

import (
	"fmt"
	"strings"

	"github.com/YourCarma/text-translator/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger from the logger configuration.
// Format "console" selects the human-readable development encoder and
// "json" (the default) the production encoder.
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case "console", "text":
		zcfg = zap.NewDevelopmentConfig()
	case "", "json":
		zcfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// MaskSecret hides all but the first and last four characters of a secret.
// Short secrets are masked entirely.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 12 {
		return "****"
	}
	return secret[:4] + "****" + secret[len(secret)-4:]
}
