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

	"github.com/ICHI0608/jiji-matching/internal/config"
	"github.com/ICHI0608/jiji-matching/internal/httpapi"
	"github.com/ICHI0608/jiji-matching/internal/logging"
	"github.com/ICHI0608/jiji-matching/internal/matching"
	"github.com/ICHI0608/jiji-matching/internal/storage"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the matching HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Logging, os.Stderr)

	catalog, store, cleanup, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	engine := matching.NewEngine(catalog, logger)
	api := httpapi.NewServer(engine, store, cfg.Matching.MaxResults, logger)

	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.Routes(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("catalog", cfg.Catalog.Source).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// openCatalog builds the catalog provider for the configured source. The
// returned store is nil for read-only JSON catalogs, which disables the
// shop management endpoints.
func openCatalog(cfg *config.Config) (matching.CatalogProvider, httpapi.ShopStore, func(), error) {
	switch cfg.Catalog.Source {
	case "sqlite":
		store, err := storage.OpenSQLite(cfg.Catalog.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open catalog db: %w", err)
		}
		if err := store.EnsureSchema(); err != nil {
			_ = store.Close()
			return nil, nil, nil, fmt.Errorf("ensure catalog schema: %w", err)
		}
		return store, store, func() { _ = store.Close() }, nil
	case "json":
		catalog, err := storage.NewFileCatalog(cfg.Catalog.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		return catalog, nil, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
