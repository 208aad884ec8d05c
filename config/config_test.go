package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider != ProviderOllama {
		t.Errorf("expected default provider %s, got %s", ProviderOllama, cfg.Provider)
	}
	if len(cfg.Languages) != 1 || cfg.Languages[0] != "en" {
		t.Errorf("expected default languages [en], got %v", cfg.Languages)
	}
	if cfg.HTTPTimeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.Ollama.Host != "http://localhost:11434" {
		t.Errorf("unexpected ollama host %s", cfg.Ollama.Host)
	}
	if cfg.Ollama.Model != "llama3.2" {
		t.Errorf("unexpected ollama model %s", cfg.Ollama.Model)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Errorf("unexpected openai model %s", cfg.OpenAI.Model)
	}
	if cfg.Anthropic.Model != "claude-3-haiku-20240307" {
		t.Errorf("unexpected anthropic model %s", cfg.Anthropic.Model)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SUMMARY_PROVIDER", "OpenAI")
	t.Setenv("LANGUAGES", "fr, es ,en")
	t.Setenv("HTTP_TIMEOUT", "90s")
	t.Setenv("YT_RATE_LIMIT", "5")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider != "openai" {
		t.Errorf("expected provider openai (lowercased), got %s", cfg.Provider)
	}
	want := []string{"fr", "es", "en"}
	if len(cfg.Languages) != len(want) {
		t.Fatalf("expected languages %v, got %v", want, cfg.Languages)
	}
	for i, lang := range want {
		if cfg.Languages[i] != lang {
			t.Errorf("languages[%d] = %s, want %s", i, cfg.Languages[i], lang)
		}
	}
	if cfg.HTTPTimeout != 90*time.Second {
		t.Errorf("expected 90s, got %s", cfg.HTTPTimeout)
	}
	if cfg.YouTube.RequestsPerSecond != 5 {
		t.Errorf("expected rate limit 5, got %d", cfg.YouTube.RequestsPerSecond)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Errorf("expected mistral, got %s", cfg.Ollama.Model)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("expected sk-test, got %s", cfg.OpenAI.APIKey)
	}
	if !cfg.Debug {
		t.Error("expected debug true")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("YT_RATE_LIMIT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPTimeout != 60*time.Second {
		t.Errorf("expected default 60s, got %s", cfg.HTTPTimeout)
	}
	if cfg.YouTube.RequestsPerSecond != 2 {
		t.Errorf("expected default 2, got %d", cfg.YouTube.RequestsPerSecond)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty provider", func(c *Config) { c.Provider = "" }, true},
		{"no languages", func(c *Config) { c.Languages = nil }, true},
		{"zero timeout", func(c *Config) { c.HTTPTimeout = 0 }, true},
		{"zero rate limit", func(c *Config) { c.YouTube.RequestsPerSecond = 0 }, true},
		{"empty ollama host", func(c *Config) { c.Ollama.Host = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
