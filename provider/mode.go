package provider

import (
	"fmt"
	"strings"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/YourCarma/text-translator/config"
	"go.uber.org/zap"
)

// WorkingMode selects the LLM provider backing the service.
type WorkingMode string

const (
	ModeOpenAI WorkingMode = "openai" // any OpenAI-compatible chat-completion API
)

// ParseWorkingMode parses a configured mode name.
func ParseWorkingMode(s string) (WorkingMode, error) {
	switch mode := WorkingMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ModeOpenAI:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported LLM mode: %q", s)
	}
}

// NewProvider creates the provider for this mode from the service configuration.
// When provider pacing is configured the result is wrapped in a RateLimitedProvider.
func (m WorkingMode) NewProvider(cfg *config.Config, logger *zap.Logger) (AIProvider, error) {
	var p AIProvider

	switch m {
	case ModeOpenAI:
		logger.Info("Running OPENAI mode")
		openaiProvider, err := NewOpenAIProvider(cfg.OpenAI, logger)
		if err != nil {
			return nil, fmt.Errorf("creating OpenAI provider: %w", err)
		}
		p = openaiProvider
	default:
		return nil, fmt.Errorf("unimplemented LLM client mode: %q", m)
	}

	limits := texttranslator.RateLimitConfig{
		RequestsPerMinute: cfg.Provider.RequestsPerMinute,
		BurstSize:         cfg.Provider.Burst,
	}
	if limits.Enabled() {
		logger.Info("Provider rate limit enabled",
			zap.Int("requests_per_minute", limits.RequestsPerMinute),
			zap.Int("burst", limits.BurstSize),
		)
		p = texttranslator.NewRateLimitedProvider(p, limits)
	}

	return p, nil
}
