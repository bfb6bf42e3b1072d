package texttranslator

import (
	"context"
	"time"
)

// AIProvider is the interface for LLM translation backends.
// Implementations return *ProviderError on failure.
type AIProvider interface {
	Translate(ctx context.Context, task TranslateTask) (string, error)
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Translator runs a task through the configured provider.
// It is safe for concurrent use when its provider and cache are.
type Translator struct {
	provider AIProvider
	cache    TranslationCache
	model    string
	timeout  time.Duration
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache. Entries are keyed by model (see WithModel).
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithModel records the model name so cached results of different models don't mix.
func WithModel(model string) TranslatorOption {
	return func(t *Translator) {
		t.model = model
	}
}

// WithTimeout bounds every Translate call. Zero disables the bound.
func WithTimeout(timeout time.Duration) TranslatorOption {
	return func(t *Translator) {
		t.timeout = timeout
	}
}

// NewTranslator creates a new Translator backed by provider.
func NewTranslator(provider AIProvider, opts ...TranslatorOption) *Translator {
	t := &Translator{provider: provider}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate translates one task.
func (t *Translator) Translate(ctx context.Context, task TranslateTask) (TranslationResult, error) {
	var key string
	if t.cache != nil {
		key = CacheKey(task, t.model)
		if cached, ok := t.cache.Get(key); ok {
			return TranslationResult{Text: cached}, nil
		}
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	text, err := t.provider.Translate(ctx, task)
	if err != nil {
		return TranslationResult{}, err
	}

	if t.cache != nil {
		_ = t.cache.Set(key, text) // Ignore cache set errors
	}

	return TranslationResult{Text: text}, nil
}

// Timeout returns the per-call timeout (zero when unbounded).
func (t *Translator) Timeout() time.Duration {
	return t.timeout
}

// Model returns the model name used in cache keys.
func (t *Translator) Model() string {
	return t.model
}
