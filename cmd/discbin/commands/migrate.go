package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apickard/discbin/internal/logger"
	"github.com/apickard/discbin/pkg/config"
	"github.com/apickard/discbin/pkg/lostfound/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run database migrations for the found-disc database.

This command applies pending schema migrations to the configured database
(SQLite or PostgreSQL). The server also migrates on startup, so this is only
needed to prepare a database ahead of time or to verify connectivity.

Examples:
  # Run migrations with default config
  discbin migrate

  # Run migrations with custom config
  discbin migrate --config /etc/discbin/config.yaml`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.MustLoad(GetConfigFile())
	if err != nil {
		return err
	}

	// Initialize the structured logger
	if err := InitLogger(cfg); err != nil {
		return err
	}

	logger.Info("Running database migrations", "type", cfg.Database.Type)

	// Opening the store triggers auto-migration
	ctx := context.Background()
	discStore, err := store.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer func() { _ = discStore.Close() }()

	// Verify the migration worked by querying the found_discs table
	_, err = discStore.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("migration verification failed: %w", err)
	}

	fmt.Printf("Migrations completed successfully (database type: %s)\n", cfg.Database.Type)
	return nil
}
