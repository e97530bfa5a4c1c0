package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicModels maps friendly names to Anthropic model IDs.
var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-5",
	"claude-haiku":  "claude-haiku-4-5",
}

// anthropicImageTypes are the inline image MIME types the Messages API accepts.
var anthropicImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// anthropicWebSearchMaxUses bounds the searches one grounded call may run.
const anthropicWebSearchMaxUses = 5

// AnthropicProvider implements Provider using the Anthropic SDK.
type AnthropicProvider struct {
	// client is nil when no API key was configured.
	client    *anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropicProvider creates a new Anthropic provider. A missing API key is
// reported by Generate, not here.
func NewAnthropicProvider(cfg AnthropicConfig, maxTokens int) *AnthropicProvider {
	p := &AnthropicProvider{
		model:     resolveModel(cfg.Model, anthropicModels),
		maxTokens: maxTokens,
	}
	if cfg.APIKey == "" {
		return p
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	p.client = &client
	return p
}

func (p *AnthropicProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if p.client == nil {
		return nil, &ErrMissingCredential{Provider: "anthropic", EnvVar: EnvPrefix + "ANTHROPIC_API_KEY"}
	}

	blocks, err := buildAnthropicBlocks(req.Parts)
	if err != nil {
		return nil, err
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.maxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: blocks,
		}},
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.System},
		}
	}

	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	if req.Grounding {
		params.Tools = []anthropic.ToolUnionParam{{
			OfWebSearchTool20250305: &anthropic.WebSearchTool20250305Param{
				MaxUses: anthropic.Int(anthropicWebSearchMaxUses),
			},
		}}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	return &Response{
		Text:       anthropicText(msg),
		Usage:      mapAnthropicUsage(msg.Usage),
		Model:      string(msg.Model),
		StopReason: mapAnthropicStopReason(msg.StopReason),
	}, nil
}

func (p *AnthropicProvider) ModelID() string {
	return p.model
}

func buildAnthropicBlocks(parts []Part) ([]anthropic.ContentBlockParamUnion, error) {
	out := make([]anthropic.ContentBlockParamUnion, 0, len(parts))
	for _, part := range parts {
		if !part.IsData() {
			out = append(out, anthropic.NewTextBlock(part.Text))
			continue
		}

		encoded := base64.StdEncoding.EncodeToString(part.Data)
		switch {
		case part.MIMEType == "application/pdf":
			out = append(out, anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{Data: encoded}))
		case anthropicImageTypes[part.MIMEType]:
			out = append(out, anthropic.NewImageBlockBase64(part.MIMEType, encoded))
		default:
			return nil, &ErrUnsupportedContent{Provider: "anthropic", MIMEType: part.MIMEType}
		}
	}
	return out, nil
}

// anthropicText joins every text block. Grounded replies interleave text
// with search result blocks, so the answer can span several blocks.
func anthropicText(msg *anthropic.Message) string {
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

func mapAnthropicUsage(u anthropic.Usage) Usage {
	return Usage{
		InputTokens:  int(u.InputTokens),
		OutputTokens: int(u.OutputTokens),
		TotalTokens:  int(u.InputTokens + u.OutputTokens),
	}
}

func mapAnthropicStopReason(reason anthropic.StopReason) string {
	switch reason {
	case "end_turn":
		return "end"
	case "max_tokens":
		return "max_tokens"
	case "refusal":
		return "blocked"
	default:
		return "end"
	}
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	// If not in the map, use as-is (allows direct model IDs).
	return name
}
