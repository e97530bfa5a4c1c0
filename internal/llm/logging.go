package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider is a decorator that emits one structured record per call.
// Prompt text, attachment bytes, and output text are never logged; only
// their sizes.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      *slog.Logger
}

// WithLogging wraps a Provider with request logging. A nil logger uses
// slog.Default().
func WithLogging(p Provider, provider string, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, provider: provider, log: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	model := l.inner.ModelID()
	if resp != nil && resp.Model != "" {
		model = resp.Model
	}

	attrs := []slog.Attr{
		slog.String("provider", l.provider),
		slog.String("model", model),
		slog.String("purpose", PurposeFrom(ctx)),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
		slog.Bool("grounding", req.Grounding),
		slog.Int("parts", len(req.Parts)),
		slog.Int("request_bytes", requestSize(req)),
	}

	if resp != nil {
		attrs = append(attrs,
			slog.Int("input_tokens", resp.Usage.InputTokens),
			slog.Int("output_tokens", resp.Usage.OutputTokens),
			slog.Int("response_bytes", len(resp.Text)),
			slog.String("stop_reason", resp.StopReason),
			slog.Int("sources", len(resp.Sources)),
		)
		if cost := LookupCost(model); cost != nil {
			attrs = append(attrs, slog.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
		l.log.LogAttrs(ctx, slog.LevelWarn, "LLM request failed", attrs...)
		return resp, err
	}

	l.log.LogAttrs(ctx, slog.LevelInfo, "LLM request", attrs...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// requestSize is the total payload size across all parts.
func requestSize(req Request) int {
	n := len(req.System)
	for _, p := range req.Parts {
		n += len(p.Text) + len(p.Data)
	}
	return n
}
