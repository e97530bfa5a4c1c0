package llm

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable ConfigFromEnv reads.
const EnvPrefix = "QTIGEN_"

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic"
	Provider string `env:"PROVIDER" envDefault:"gemini"`

	Gemini    GeminiConfig    `envPrefix:"GEMINI_"`
	Anthropic AnthropicConfig `envPrefix:"ANTHROPIC_"`

	// MaxTokens is the output token budget applied to every request.
	MaxTokens int `env:"MAX_TOKENS" envDefault:"8192"`
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.5-flash"`

	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string `env:"BASE_URL"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"claude-sonnet"`

	// BaseURL overrides the API endpoint. Used by tests.
	BaseURL string `env:"BASE_URL"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		MaxTokens: 8192,
	}
}

// ConfigFromEnv builds a Config from QTIGEN_* environment variables.
// Unprefixed keys (GEMINI_API_KEY, API_KEY, ANTHROPIC_API_KEY) are used as
// fallbacks when the prefixed ones are unset.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = firstEnv("GEMINI_API_KEY", "API_KEY")
	}
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = firstEnv("ANTHROPIC_API_KEY")
	}

	return cfg, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks that the selected provider is known and has its API key.
// A missing key is reported as *ErrMissingCredential.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return &ErrMissingCredential{Provider: "gemini", EnvVar: EnvPrefix + "GEMINI_API_KEY"}
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return &ErrMissingCredential{Provider: "anthropic", EnvVar: EnvPrefix + "ANTHROPIC_API_KEY"}
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// Model returns the resolved model ID for the selected provider.
func (c Config) Model() string {
	switch c.Provider {
	case "gemini":
		return resolveModel(c.Gemini.Model, geminiModels)
	case "anthropic":
		return resolveModel(c.Anthropic.Model, anthropicModels)
	default:
		return ""
	}
}
