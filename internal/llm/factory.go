package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewProvider creates a Provider from configuration, wrapped with logging.
// A missing API key does not fail here; the returned provider reports
// *ErrMissingCredential from Generate.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (Provider, error) {
	var base Provider

	switch cfg.Provider {
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg.Gemini, cfg.MaxTokens)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		base = p
	case "anthropic":
		base = NewAnthropicProvider(cfg.Anthropic, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	return WithLogging(base, cfg.Provider, logger), nil
}
