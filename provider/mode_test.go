package provider

import (
	"testing"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/YourCarma/text-translator/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseWorkingMode(t *testing.T) {
	for _, in := range []string{"openai", "OpenAI", " OPENAI "} {
		mode, err := ParseWorkingMode(in)
		if err != nil {
			t.Errorf("ParseWorkingMode(%q) failed: %v", in, err)
		}
		if mode != ModeOpenAI {
			t.Errorf("ParseWorkingMode(%q) = %q", in, mode)
		}
	}

	if _, err := ParseWorkingMode("ollama"); err == nil {
		t.Error("expected error for unsupported mode")
	}
	if _, err := ParseWorkingMode(""); err == nil {
		t.Error("expected error for empty mode")
	}
}

func testConfig() *config.Config {
	return &config.Config{
		OpenAI: config.OpenAIConfig{
			Address:   "http://127.0.0.1:1/v1",
			APIKey:    "sk-test",
			ModelName: "gpt-4o-mini",
		},
	}
}

func TestWorkingMode_NewProvider(t *testing.T) {
	p, err := ModeOpenAI.NewProvider(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	op, ok := p.(*OpenAIProvider)
	if !ok {
		t.Fatalf("expected *OpenAIProvider, got %T", p)
	}
	if op.Model() != "gpt-4o-mini" {
		t.Errorf("Model() = %q", op.Model())
	}
}

func TestWorkingMode_NewProvider_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Provider.RequestsPerMinute = 60
	cfg.Provider.Burst = 5

	core, logs := observer.New(zap.InfoLevel)
	p, err := ModeOpenAI.NewProvider(cfg, zap.New(core))
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if _, ok := p.(*texttranslator.RateLimitedProvider); !ok {
		t.Fatalf("expected *RateLimitedProvider, got %T", p)
	}
	entries := logs.FilterMessage("Provider rate limit enabled").All()
	if len(entries) != 1 {
		t.Fatalf("expected one rate limit log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["burst"]; got != int64(5) {
		t.Errorf("burst field = %v, want 5", got)
	}
}

func TestWorkingMode_NewProvider_Errors(t *testing.T) {
	if _, err := WorkingMode("local").NewProvider(testConfig(), zap.NewNop()); err == nil {
		t.Error("expected error for unimplemented mode")
	}

	cfg := testConfig()
	cfg.OpenAI.UseProxy = true
	cfg.OpenAI.ProxyAddress = "ftp://proxy:21"
	if _, err := ModeOpenAI.NewProvider(cfg, zap.NewNop()); err == nil {
		t.Error("expected error for bad proxy")
	}
}
