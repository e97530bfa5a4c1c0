package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/qtigen/internal/llm"
	"github.com/abhisek/qtigen/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the configured LLM provider, model, and pricing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := llm.ConfigFromEnv()
		if err != nil {
			return fmt.Errorf("load LLM config: %w", err)
		}
		return printLLMInfo(cmd.OutOrStdout(), cfg)
	},
}

func printLLMInfo(w io.Writer, cfg llm.Config) error {
	model := cfg.Model()
	if model == "" {
		return fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	credential := theme.Ok.Render("set")
	if err := cfg.Validate(); err != nil {
		credential = theme.Warn.Render("missing") + " " + theme.Dim.Render(err.Error())
	}

	fmt.Fprintf(w, "Provider:    %s\n", cfg.Provider)
	fmt.Fprintf(w, "Model:       %s\n", model)
	lipgloss.Fprintf(w, "Credential:  %s\n", credential)
	fmt.Fprintf(w, "Max tokens:  %d\n", cfg.MaxTokens)

	cost := llm.LookupCost(model)
	if cost == nil {
		lipgloss.Fprintf(w, "Pricing:     %s\n", theme.Dim.Render("unknown"))
		return nil
	}
	fmt.Fprintf(w, "Pricing:     %s in / %s out per 1M tokens\n",
		formatCost(cost.InputPerMTok), formatCost(cost.OutputPerMTok))
	return nil
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
