// Package config reads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Known summarization providers.
const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	// Summarization settings
	Provider string `json:"provider"`

	// Transcript settings
	Languages []string `json:"languages"`

	// HTTP settings
	HTTPTimeout time.Duration `json:"http_timeout"`

	// YouTube request pacing
	YouTube YouTubeConfig `json:"youtube"`

	// Provider backends
	Ollama    OllamaConfig    `json:"ollama"`
	OpenAI    OpenAIConfig    `json:"openai"`
	Anthropic AnthropicConfig `json:"anthropic"`

	// Logging
	LogDir   string `json:"log_dir"`
	LogLevel string `json:"log_level"`
	Debug    bool   `json:"debug"`
}

type YouTubeConfig struct {
	RequestsPerSecond int `json:"requests_per_second"`
	Burst             int `json:"burst"`
}

type OllamaConfig struct {
	Host  string `json:"host"`
	Model string `json:"model"`
}

type OpenAIConfig struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	APIKey  string `json:"-"`
}

type AnthropicConfig struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	APIKey  string `json:"-"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Provider:  strings.ToLower(getEnv("SUMMARY_PROVIDER", ProviderOllama)),
		Languages: getEnvAsStringSlice("LANGUAGES", []string{"en"}),

		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", 60*time.Second),

		YouTube: YouTubeConfig{
			RequestsPerSecond: getEnvAsInt("YT_RATE_LIMIT", 2),
			Burst:             getEnvAsInt("YT_RATE_BURST", 4),
		},

		Ollama: OllamaConfig{
			Host:  getEnv("OLLAMA_HOST", "http://localhost:11434"),
			Model: getEnv("OLLAMA_MODEL", "llama3.2"),
		},

		OpenAI: OpenAIConfig{
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			APIKey:  getEnv("OPENAI_API_KEY", ""),
		},

		Anthropic: AnthropicConfig{
			BaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Model:   getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
			APIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		},

		LogDir:   getEnv("LOG_DIR", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Debug:    getEnvAsBool("DEBUG", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Provider == "" {
		return errors.New("summary provider is required")
	}
	if len(c.Languages) == 0 {
		return errors.New("at least one transcript language is required")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("http timeout must be positive")
	}
	if c.YouTube.RequestsPerSecond <= 0 {
		return errors.New("youtube rate limit must be positive")
	}
	if c.YouTube.Burst <= 0 {
		return errors.New("youtube rate burst must be positive")
	}
	if c.Ollama.Host == "" {
		return fmt.Errorf("ollama host is required")
	}
	return nil
}

// Helper functions for reading environment variables
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.WithFields(logrus.Fields{
			"key":          key,
			"value":        value,
			"defaultValue": defaultValue,
		}).Warn("Invalid duration, using default")
	}
	return defaultValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists {
		if parsed := SplitLanguages(value); len(parsed) > 0 {
			return parsed
		}
	}
	return defaultValue
}

// SplitLanguages parses a comma-separated language list, trimming whitespace
// and dropping empty entries. Returns nil for an empty input.
func SplitLanguages(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
