package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/qtigen/internal/qti"
	"github.com/abhisek/qtigen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversion API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := server.DefaultConfig()
		cfg.Addr, _ = cmd.Flags().GetString("addr")
		cfg.CORSOrigins, _ = cmd.Flags().GetStringSlice("cors-origins")
		cfg.MaxBodyBytes, _ = cmd.Flags().GetInt64("max-body")
		cfg.RequestTimeout, _ = cmd.Flags().GetDuration("timeout")

		ctx := cmd.Context()
		provider, llmCfg, err := loadProvider(ctx)
		if err != nil {
			return err
		}

		info := server.ProviderInfo{
			Provider:   llmCfg.Provider,
			Model:      llmCfg.Model(),
			Configured: llmCfg.Validate() == nil,
		}
		if !info.Configured {
			slog.Warn("provider credential missing; conversions will fail until it is set", "provider", info.Provider)
		}
		printStatus(cmd.ErrOrStderr(), "serving %s (%s) on %s", info.Provider, info.Model, cfg.Addr)

		srv := server.New(provider, info, qti.DefaultConfig(), cfg, slog.Default())
		return srv.Run(ctx)
	},
}

func init() {
	def := server.DefaultConfig()
	serveCmd.Flags().String("addr", def.Addr, "Listen address")
	serveCmd.Flags().StringSlice("cors-origins", def.CORSOrigins, "Allowed CORS origins")
	serveCmd.Flags().Int64("max-body", def.MaxBodyBytes, "Maximum request body size in bytes")
	serveCmd.Flags().Duration("timeout", def.RequestTimeout, "Per-conversion timeout (0 disables)")
}
