package llm

import "context"

// Provider is the core abstraction for LLM interaction.
// Each Generate call issues exactly one request to the backing service.
type Provider interface {
	// Generate sends a single-turn request and returns the raw text reply.
	// There is no retry: the call either completes or fails.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Optional.
	System string

	// Parts is the content of the single user turn, in order. A part is
	// either text or inline binary data.
	Parts []Part

	// Grounding lets the provider consult web search results while
	// composing its answer. It changes provider-side behavior only.
	Grounding bool

	// MaxTokens is the maximum number of tokens in the response.
	// Zero leaves the provider default in place where the API allows it.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default in place.
	Temperature float64
}

// Part is one piece of user content.
type Part struct {
	// Text is set for text parts.
	Text string

	// Data and MIMEType are set for inline binary parts
	// (e.g. a PDF or an image).
	Data     []byte
	MIMEType string
}

// TextPart returns a text content part.
func TextPart(s string) Part {
	return Part{Text: s}
}

// DataPart returns an inline binary content part.
func DataPart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// IsData reports whether the part carries inline binary data.
func (p Part) IsData() bool {
	return p.Data != nil
}

// Response holds the LLM's output.
type Response struct {
	// Text is the provider's text output, verbatim. May be empty.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "blocked"
	StopReason string

	// Sources lists web sources the provider cited when grounding was on.
	Sources []string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
