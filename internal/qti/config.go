package qti

import "log/slog"

// MinResultLength is the rune count a result must exceed.
const MinResultLength = 10

// Config controls the behavior of the Converter.
type Config struct {
	// Validators is the ordered list of checks run on every sanitized
	// result. The first failure stops the chain.
	Validators []Validator

	// MaxTokens is the token budget for the provider reply. Zero uses the
	// provider's configured budget.
	MaxTokens int

	// Temperature controls output randomness. Zero leaves the provider
	// default.
	Temperature float64

	// Logger receives one record per conversion outcome. Nil uses
	// slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&LengthValidator{Min: MinResultLength},
		},
	}
}

// StrictConfig is DefaultConfig plus the well-formed XML check.
func StrictConfig() Config {
	cfg := DefaultConfig()
	cfg.Validators = append(cfg.Validators, &WellFormedValidator{})
	return cfg
}
