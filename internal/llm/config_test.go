package llm

import (
	"errors"
	"os"
	"testing"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QTIGEN_PROVIDER", "QTIGEN_GEMINI_API_KEY", "QTIGEN_GEMINI_MODEL",
		"QTIGEN_ANTHROPIC_API_KEY", "QTIGEN_ANTHROPIC_MODEL", "QTIGEN_MAX_TOKENS",
		"GEMINI_API_KEY", "API_KEY", "ANTHROPIC_API_KEY",
	} {
		// Setenv registers the restore; Unsetenv makes the key absent.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearKeys(t)

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini, got %q", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("expected gemini-2.5-flash, got %q", cfg.Gemini.Model)
	}
	if cfg.MaxTokens != 8192 {
		t.Fatalf("expected 8192, got %d", cfg.MaxTokens)
	}
	if cfg.Gemini.APIKey != "" {
		t.Fatalf("expected empty key, got %q", cfg.Gemini.APIKey)
	}
}

func TestConfigFromEnv_Prefixed(t *testing.T) {
	clearKeys(t)
	t.Setenv("QTIGEN_PROVIDER", "anthropic")
	t.Setenv("QTIGEN_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("QTIGEN_ANTHROPIC_MODEL", "claude-haiku")
	t.Setenv("QTIGEN_MAX_TOKENS", "2048")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "sk-test" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Model() != "claude-haiku-4-5" {
		t.Fatalf("expected claude-haiku-4-5, got %q", cfg.Model())
	}
	if cfg.MaxTokens != 2048 {
		t.Fatalf("expected 2048, got %d", cfg.MaxTokens)
	}
}

func TestConfigFromEnv_FallbackKeys(t *testing.T) {
	clearKeys(t)
	t.Setenv("API_KEY", "legacy-key")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.APIKey != "legacy-key" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.Gemini.APIKey)
	}

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	cfg, _ = ConfigFromEnv()
	if cfg.Gemini.APIKey != "gemini-key" {
		t.Fatalf("expected GEMINI_API_KEY to win over API_KEY, got %q", cfg.Gemini.APIKey)
	}

	t.Setenv("QTIGEN_GEMINI_API_KEY", "prefixed")
	cfg, _ = ConfigFromEnv()
	if cfg.Gemini.APIKey != "prefixed" {
		t.Fatalf("expected prefixed key to win, got %q", cfg.Gemini.APIKey)
	}
}

func TestConfigFromEnv_BadMaxTokens(t *testing.T) {
	clearKeys(t)
	t.Setenv("QTIGEN_MAX_TOKENS", "lots")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		wantMissing bool
	}{
		{
			name:        "gemini without key",
			cfg:         Config{Provider: "gemini"},
			wantErr:     true,
			wantMissing: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}},
			wantErr: false,
		},
		{
			name:        "anthropic without key",
			cfg:         Config{Provider: "anthropic"},
			wantErr:     true,
			wantMissing: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			var missing *ErrMissingCredential
			if got := errors.As(err, &missing); got != tt.wantMissing {
				t.Fatalf("ErrMissingCredential = %v, want %v", got, tt.wantMissing)
			}
		})
	}
}
