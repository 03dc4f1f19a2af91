package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/ovenside/storefront-api/config"
	httpx "github.com/ovenside/storefront-api/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunHTTPServer serves the storefront API until ctx is canceled, then shuts
// down gracefully within the configured timeout.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Cart:     cfg.Services.Cart,
		Sessions: cfg.Services.Sessions,
		Catalog:  cfg.Services.Catalog,
		KV:       cfg.Services.KV,
		Logger:   logger,
	})

	server := &http.Server{
		Addr:         cfg.Config.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Config.HTTP.ReadTimeout,
		WriteTimeout: cfg.Config.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Config.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
