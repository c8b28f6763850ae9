package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ICHI0608/jiji-matching/internal/config"
	"github.com/ICHI0608/jiji-matching/internal/logging"
	"github.com/ICHI0608/jiji-matching/internal/storage"
)

// importCmd loads a normalized JSON catalog dump into the SQLite store.
// Re-importing replaces existing shops by shop_id.
func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <shops.json>",
		Short: "Import a shop catalog dump into the SQLite catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Catalog.Source != "sqlite" {
				return fmt.Errorf("import requires catalog source sqlite, got %q", cfg.Catalog.Source)
			}
			logger := logging.New(cfg.Logging, os.Stderr)

			shops, err := storage.LoadShopsFromFile(args[0])
			if err != nil {
				return err
			}

			store, err := storage.OpenSQLite(cfg.Catalog.Path)
			if err != nil {
				return fmt.Errorf("open catalog db: %w", err)
			}
			defer store.Close()

			if err := store.EnsureSchema(); err != nil {
				return fmt.Errorf("ensure catalog schema: %w", err)
			}
			if err := store.UpsertMany(shops); err != nil {
				return err
			}

			total, err := store.CountShops()
			if err != nil {
				return err
			}
			logger.Info().
				Int("imported", len(shops)).
				Int("total", total).
				Str("db", cfg.Catalog.Path).
				Msg("catalog import complete")
			return nil
		},
	}
}
