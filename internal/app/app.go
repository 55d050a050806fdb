package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/gamecatalog-backend/internal/config"
)

// ServeOptions tunes Serve.
type ServeOptions struct {
	// Migrate applies pending migrations before the listener opens.
	Migrate bool
}

// Serve runs the HTTP API until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ServeOptions) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	if opts.Migrate {
		if err := migrateUp(ctx, c); err != nil {
			return err
		}
	}

	handler, stopLimiter := c.Handler()
	defer stopLimiter()

	srv := newHTTPServer(cfg.Server, handler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

func newHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

func migrateUp(ctx context.Context, c *Container) error {
	m, err := c.Migrator()
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	c.Logger.Info("migrations applied", slog.Int("count", applied))
	return nil
}
