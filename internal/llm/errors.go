package llm

import (
	"fmt"
	"time"
)

// ErrMissingCredential indicates the selected provider has no API key.
// It is returned before any network call is made.
type ErrMissingCredential struct {
	Provider string
	EnvVar   string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("%s API key is not configured (set %s)", e.Provider, e.EnvVar)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider failed or was unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrUnsupportedContent indicates a request part the provider cannot accept,
// such as an inline MIME type it has no content block for.
type ErrUnsupportedContent struct {
	Provider string
	MIMEType string
}

func (e *ErrUnsupportedContent) Error() string {
	return fmt.Sprintf("%s does not accept inline %q content", e.Provider, e.MIMEType)
}
