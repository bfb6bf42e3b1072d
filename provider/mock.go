package provider

import (
	"context"
	"sync"

	texttranslator "github.com/YourCarma/text-translator"
)

// MockProvider is a deterministic AI provider for testing.
// Like the real adapter it rejects unknown language codes.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	Err          error             // Returned by every call when set

	mu          sync.Mutex
	callCount   int
	lastRequest *TranslateTask
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hello":       "Привет",
			"World":       "Мир",
			"Hello World": "Привет, мир",
		},
	}
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, task TranslateTask) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastRequest = &task
	m.mu.Unlock()

	if _, _, err := texttranslator.ResolveLanguages(task); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if translation, ok := m.Translations[task.Text]; ok {
		return translation, nil
	}
	// Return bracketed text for unknown translations
	return "[" + task.Text + "]", nil
}

// CallCount returns the number of times Translate was called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the last task received, or nil.
func (m *MockProvider) LastRequest() *TranslateTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastRequest = nil
}

// Verify MockProvider implements AIProvider
var _ AIProvider = (*MockProvider)(nil)
