// Package cache provides the response caches the service can put in front
// of the model provider. Keys are built by texttranslator.CacheKey.
package cache

import (
	"fmt"
	"strings"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/YourCarma/text-translator/config"
	"go.uber.org/zap"
)

// TranslationCache is the cache contract used by the translator.
type TranslationCache = texttranslator.TranslationCache

// DefaultKeyPrefix namespaces Redis keys when no prefix is configured.
const DefaultKeyPrefix = "text-translator:"

// New builds the cache selected by cfg.Backend. For the "none" backend the
// cache is nil, so the translator calls the provider on every request.
// The returned close function is never nil.
func New(cfg config.CacheConfig, logger *zap.Logger) (TranslationCache, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() error { return nil }

	switch backend := strings.ToLower(cfg.Backend); backend {
	case "", config.CacheNone:
		logger.Info("Response cache disabled")
		return nil, noop, nil
	case config.CacheMemory:
		c := NewInMemoryCache(cfg.TTL)
		stop := c.StartJanitor(janitorInterval(cfg.TTL))
		logger.Info("Using in-memory response cache", zap.Int("ttl_seconds", cfg.TTL))
		return c, func() error { stop(); return nil }, nil
	case config.CacheRedis:
		c, err := NewRedisCache(RedisConfig{
			URL:       cfg.RedisURL,
			TTL:       cfg.TTL,
			KeyPrefix: cfg.KeyPrefix,
		}, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("connecting to redis cache: %w", err)
		}
		logger.Info("Using redis response cache",
			zap.String("key_prefix", c.keyPrefix),
			zap.Int("ttl_seconds", cfg.TTL),
		)
		return c, c.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend: %q", cfg.Backend)
	}
}
