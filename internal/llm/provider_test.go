package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "<a/>", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "<b/>"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Parts: []Part{TextPart("first")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "<a/>" {
		t.Fatalf("expected <a/>, got %s", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Parts: []Part{TextPart("second")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "<b/>" {
		t.Fatalf("expected <b/>, got %s", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	req := Request{
		System:    "sys",
		Parts:     []Part{TextPart("hello")},
		Grounding: true,
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	last, ok := mock.LastCall()
	if !ok {
		t.Fatal("expected a recorded call")
	}
	if last.System != "sys" || !last.Grounding {
		t.Fatalf("recorded request mismatch: %+v", last)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 0}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestPart_IsData(t *testing.T) {
	if TextPart("x").IsData() {
		t.Fatal("text part reported as data")
	}
	if !DataPart("image/png", []byte{1}).IsData() {
		t.Fatal("data part not reported as data")
	}
	if !DataPart("", []byte("%PDF")).IsData() {
		t.Fatal("data part without MIME type reported as text")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "qti-text")
	if p := PurposeFrom(ctx); p != "qti-text" {
		t.Fatalf("expected 'qti-text', got %q", p)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	if got := c.Cost(1_000_000, 0); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "nope"}, nil)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_MissingKeyFailsAtCallTime(t *testing.T) {
	for _, name := range []string{"gemini", "anthropic"} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Provider = name

			p, err := NewProvider(context.Background(), cfg, nil)
			if err != nil {
				t.Fatalf("NewProvider should not fail on a missing key: %v", err)
			}

			_, err = p.Generate(context.Background(), Request{Parts: []Part{TextPart("x")}})
			var missing *ErrMissingCredential
			if !errors.As(err, &missing) {
				t.Fatalf("expected ErrMissingCredential, got: %v", err)
			}
			if missing.Provider != name {
				t.Fatalf("expected provider %q, got %q", name, missing.Provider)
			}
		})
	}
}
