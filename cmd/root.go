package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/qtigen/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "qtigen",
	Short: "Generate QTI 2.1 assessment XML",
	Long:  "qtigen turns pasted text, a web page, or a document into an IMS QTI 2.1 assessment using a generative model.",
	// Errors are printed once by Execute.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		logger, err := newLogger(os.Stderr, level, format)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

// Execute loads .env and runs the root command.
func Execute(ctx context.Context) error {
	if err := loadDotEnv(".env"); err != nil {
		printFailure(os.Stderr, err)
		return err
	}
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printFailure(os.Stderr, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv reads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// newLogger builds the process logger for the given level and format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid --log-format %q: must be text or json", format)
}

// loadProvider reads provider configuration from the environment and builds
// the logged provider.
func loadProvider(ctx context.Context) (llm.Provider, llm.Config, error) {
	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		return nil, cfg, fmt.Errorf("load LLM config: %w", err)
	}
	provider, err := llm.NewProvider(ctx, cfg, slog.Default())
	if err != nil {
		return nil, cfg, err
	}
	return provider, cfg, nil
}
