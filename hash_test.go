package texttranslator

import "testing"

func TestHashText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HashText(tt.input)
			if result != tt.expected {
				t.Errorf("HashText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestHashText_WhitespaceSignificant(t *testing.T) {
	if HashText("Hello World") == HashText("  Hello World") {
		t.Error("leading whitespace should change the hash")
	}
}

func TestCacheKey(t *testing.T) {
	task := TranslateTask{SourceLanguage: "en", TargetLanguage: "ru", Text: "Hello World"}

	result := CacheKey(task, "gpt-4o-mini")
	expected := "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e:en:ru:gpt-4o-mini"

	if result != expected {
		t.Errorf("CacheKey() = %q, want %q", result, expected)
	}
}

func TestCacheKey_NormalizesCodes(t *testing.T) {
	a := CacheKey(TranslateTask{SourceLanguage: "EN", TargetLanguage: "ru-RU", Text: "x"}, "m")
	b := CacheKey(TranslateTask{SourceLanguage: "en", TargetLanguage: "ru", Text: "x"}, "m")
	if a != b {
		t.Errorf("expected equal keys, got %q and %q", a, b)
	}

	c := CacheKey(TranslateTask{SourceLanguage: "en", TargetLanguage: "ru", Text: "x"}, "other")
	if a == c {
		t.Error("different models should produce different keys")
	}
}
