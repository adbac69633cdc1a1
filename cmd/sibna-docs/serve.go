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

	"github.com/F2fX4553/sibnav5-pro/internal/docs/httpserver"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/observability"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the documentation HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	docs, err := a.router()
	if err != nil {
		return err
	}
	metrics, err := observability.NewPageMetrics(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	cfg := a.cfg
	srv := httpserver.New(httpserver.Config{
		Address:        cfg.Server.Addr,
		BasePath:       cfg.Site.BasePath,
		SiteTitle:      cfg.Site.Title,
		Lang:           cfg.Site.Lang,
		Environment:    cfg.Site.Environment,
		Router:         docs,
		Logger:         a.logger,
		Metrics:        metrics,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	a.logger.Info("docs server listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("base_path", cfg.Site.BasePath),
		zap.String("environment", cfg.Site.Environment),
		zap.Int("pages", docs.Registry().Len()),
	)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	a.logger.Info("docs server stopped")
	return nil
}
