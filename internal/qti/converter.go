package qti

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/qtigen/internal/llm"
)

// Converter turns a Request into a QTI XML document using one provider.
// It holds no per-call state and is safe for concurrent use.
type Converter struct {
	provider llm.Provider
	config   Config
	log      *slog.Logger
}

// New creates a Converter with the given provider and config.
func New(provider llm.Provider, cfg Config) *Converter {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{provider: provider, config: cfg, log: logger}
}

// Convert runs one conversion. The only suspension point is the provider
// call; cancellation of ctx surfaces as a provider failure.
func (c *Converter) Convert(ctx context.Context, req Request) (string, error) {
	start := time.Now()

	out, err := c.convert(ctx, req)

	mode := Mode("")
	if req != nil {
		mode = req.Mode()
	}
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		c.log.WarnContext(ctx, "conversion failed",
			"mode", mode,
			"kind", KindOf(err),
			"elapsed_ms", elapsed,
			"err", err,
		)
		return "", err
	}
	c.log.DebugContext(ctx, "conversion done",
		"mode", mode,
		"elapsed_ms", elapsed,
		"bytes", len(out),
	)
	return out, nil
}

func (c *Converter) convert(ctx context.Context, req Request) (string, error) {
	task, purpose, err := c.build(req)
	if err != nil {
		return "", err
	}

	if c.config.MaxTokens > 0 {
		task.MaxTokens = c.config.MaxTokens
	}
	task.Temperature = c.config.Temperature

	resp, err := c.provider.Generate(llm.WithPurpose(ctx, purpose), task)
	if err != nil {
		return "", providerError(err)
	}

	out := Sanitize(resp.Text)

	for _, v := range c.config.Validators {
		if verr := v.Validate(out); verr != nil {
			return "", verr
		}
	}
	return out, nil
}

// build validates req and produces the provider request for its mode.
func (c *Converter) build(req Request) (llm.Request, string, error) {
	switch r := req.(type) {
	case TextRequest:
		if strings.TrimSpace(r.Text) == "" {
			return llm.Request{}, "", validationError("text is required")
		}
		return textTask(r.Text), "qti-text", nil

	case LinkRequest:
		if strings.TrimSpace(r.URL) == "" {
			return llm.Request{}, "", validationError("url is required")
		}
		return urlTask(r.URL), "qti-link", nil

	case FileRequest:
		if r.Attachment == nil {
			return llm.Request{}, "", validationError("file is required")
		}
		if strings.TrimSpace(r.Attachment.MIMEType) == "" {
			return llm.Request{}, "", validationError("file MIME type is required")
		}
		if r.Attachment.Data == "" {
			return llm.Request{}, "", validationError("file is empty")
		}
		data, err := base64.StdEncoding.DecodeString(r.Attachment.Data)
		if err != nil {
			return llm.Request{}, "", &Error{Kind: KindValidation, Message: "file data is not valid base64", Err: err}
		}
		if len(data) == 0 {
			return llm.Request{}, "", validationError("file is empty")
		}
		return fileTask(r.Attachment, data), "qti-file", nil

	case nil:
		return llm.Request{}, "", validationError("request is required")
	}
	return llm.Request{}, "", validationError("unsupported request type")
}

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// providerError maps a provider failure to CONFIGURATION when the
// credential is missing and PROVIDER otherwise.
func providerError(err error) *Error {
	var missing *llm.ErrMissingCredential
	if errors.As(err, &missing) {
		return &Error{Kind: KindConfiguration, Message: "provider credential is not set", Err: err}
	}
	return &Error{Kind: KindProvider, Message: "provider call failed", Err: err}
}
