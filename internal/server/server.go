package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/qtigen/internal/llm"
	"github.com/abhisek/qtigen/internal/metrics"
	"github.com/abhisek/qtigen/internal/qti"
)

// Config controls the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// CORSOrigins lists allowed browser origins. "*" allows any.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Base64 file data counts in full.
	MaxBodyBytes int64

	// RequestTimeout bounds each conversion. Zero disables it.
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		CORSOrigins:     []string{"*"},
		MaxBodyBytes:    20 << 20,
		RequestTimeout:  2 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ProviderInfo describes the configured provider for the health endpoint.
type ProviderInfo struct {
	Provider   string
	Model      string
	Configured bool
}

// Server exposes conversions over a JSON HTTP API.
type Server struct {
	cfg       Config
	info      ProviderInfo
	converter *qti.Converter
	strict    *qti.Converter
	log       *slog.Logger
}

// New creates a Server backed by provider. qcfg is the base converter
// config; strict requests add the well-formed check on top of it.
func New(provider llm.Provider, info ProviderInfo, qcfg qti.Config, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if qcfg.Logger == nil {
		qcfg.Logger = logger
	}

	strictCfg := qcfg
	strictCfg.Validators = append(append([]qti.Validator(nil), qcfg.Validators...), &qti.WellFormedValidator{})

	configured := 0.0
	if info.Configured {
		configured = 1
	}
	metrics.ProviderConfigured.WithLabelValues(info.Provider).Set(configured)

	return &Server{
		cfg:       cfg,
		info:      info,
		converter: qti.New(provider, qcfg),
		strict:    qti.New(provider, strictCfg),
		log:       logger,
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/convert", s.handleConvert)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return s.chain(mux)
}

// Run listens on cfg.Addr and serves until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}
