// Package config loads the service configuration from the environment,
// an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	OpenAI   OpenAIConfig
	Provider ProviderConfig
	Cache    CacheConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Address           string
	LLMMode           string
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	StrictErrorStatus bool // report IO/invalid-response failures as 502 instead of 204
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// OpenAIConfig holds configuration for an OpenAI-compatible provider.
type OpenAIConfig struct {
	Address      string // API base URL
	APIKey       string
	ModelName    string
	Temperature  float32 // 0 leaves the provider default
	UseProxy     bool
	ProxyAddress string // http://, https://, socks5:// or socks5h://
}

// ProviderConfig holds outbound pacing for provider calls.
type ProviderConfig struct {
	RequestsPerMinute int // 0 disables the limiter
	Burst             int
}

// CacheConfig selects the response cache.
// Supported backends: "none" (default), "memory", "redis".
type CacheConfig struct {
	Backend   string
	TTL       int // seconds, 0 = no expiration
	RedisURL  string
	KeyPrefix string
}

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Load loads configuration from environment variables.
// A .env file in the working directory is read first if present, and
// CONFIG_FILE may name a config file whose values the environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "0.0.0.0:8000")
	v.SetDefault("server.llm_mode", "openai")
	v.SetDefault("server.request_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.strict_error_status", false)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("openai.address", "https://api.openai.com/v1")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model_name", "")
	v.SetDefault("openai.temperature", 0)
	v.SetDefault("openai.use_proxy", false)
	v.SetDefault("openai.proxy_address", "")
	v.SetDefault("provider.requests_per_minute", 0)
	v.SetDefault("provider.burst", 0)
	v.SetDefault("cache.backend", CacheNone)
	v.SetDefault("cache.ttl", 3600)
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.key_prefix", "text-translator:")
}

func fromViper(v *viper.Viper) (*Config, error) {
	requestTimeout, err := duration(v, "server.request_timeout")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := duration(v, "server.shutdown_timeout")
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Address:           v.GetString("server.address"),
			LLMMode:           v.GetString("server.llm_mode"),
			RequestTimeout:    requestTimeout,
			ShutdownTimeout:   shutdownTimeout,
			StrictErrorStatus: v.GetBool("server.strict_error_status"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Format: v.GetString("logger.format"),
		},
		OpenAI: OpenAIConfig{
			Address:      v.GetString("openai.address"),
			APIKey:       v.GetString("openai.api_key"),
			ModelName:    v.GetString("openai.model_name"),
			Temperature:  float32(v.GetFloat64("openai.temperature")),
			UseProxy:     v.GetBool("openai.use_proxy"),
			ProxyAddress: v.GetString("openai.proxy_address"),
		},
		Provider: ProviderConfig{
			RequestsPerMinute: v.GetInt("provider.requests_per_minute"),
			Burst:             v.GetInt("provider.burst"),
		},
		Cache: CacheConfig{
			Backend:   strings.ToLower(v.GetString("cache.backend")),
			TTL:       v.GetInt("cache.ttl"),
			RedisURL:  v.GetString("cache.redis_url"),
			KeyPrefix: v.GetString("cache.key_prefix"),
		},
	}, nil
}

// duration parses a Go duration string; a bare number is taken as seconds.
func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("SERVER_ADDRESS is required")
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("SERVER_REQUEST_TIMEOUT must not be negative")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.OpenAI.ModelName == "" {
		return fmt.Errorf("OPENAI_MODEL_NAME is required")
	}
	if c.OpenAI.UseProxy && c.OpenAI.ProxyAddress == "" {
		return fmt.Errorf("OPENAI_PROXY_ADDRESS is required when OPENAI_USE_PROXY is set")
	}
	if c.Provider.RequestsPerMinute < 0 {
		return fmt.Errorf("PROVIDER_REQUESTS_PER_MINUTE must not be negative")
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("CACHE_REDIS_URL is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("unsupported CACHE_BACKEND: %s", c.Cache.Backend)
	}
	return nil
}
