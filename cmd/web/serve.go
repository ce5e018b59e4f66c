package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hypertech.group/hypersystem-web/internal/config"
	"hypertech.group/hypersystem-web/internal/httpserver"
	"hypertech.group/hypersystem-web/internal/observability"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(load loadFunc) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HYPER_WEB_ADDR and PORT")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	tracing, err := observability.NewTracing(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	tracing.Install()
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tracing.Shutdown(flushCtx); err != nil {
			logger.Error("tracing shutdown failed", zap.Error(err))
		}
	}()

	srv, err := httpserver.New(httpserver.Config{
		App:            cfg,
		Logger:         logger,
		TracerProvider: tracing.Provider,
		Propagator:     tracing.Propagator,
	})
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("address", cfg.Server.Addr),
			zap.String("environment", cfg.Server.Environment),
			zap.Bool("dev_templates", cfg.Templates.Dev),
			zap.Bool("otlp_export", cfg.Tracing.OTLPEndpoint != ""))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}
