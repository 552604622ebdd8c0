package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge/internal/adapters/turso"
	"github.com/tokenforge/tokenforge/internal/config"
	"github.com/tokenforge/tokenforge/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations.

Without arguments, runs all pending migrations (up).
With a version number below the current one, rolls back to that version.

Examples:
  tokenforge migrate      # Run all pending migrations
  tokenforge migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := turso.NewDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := migrate.EnsureTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, _, err := migrate.CurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	fmt.Printf("Current version: %d\n", current)

	if len(args) == 0 {
		version, err := migrate.Up(ctx, db)
		if err != nil {
			return err
		}
		if version == current {
			fmt.Println("No migrations to run")
		} else {
			fmt.Printf("Migrated to version %d\n", version)
		}
		return nil
	}

	target, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version number: %s", args[0])
	}

	switch {
	case target < current:
		if err := migrate.DownTo(ctx, db, target); err != nil {
			return err
		}
		fmt.Printf("Migrated down to version %d\n", target)
	case target > current:
		version, err := migrate.Up(ctx, db)
		if err != nil {
			return err
		}
		fmt.Printf("Migrated to version %d\n", version)
	default:
		fmt.Println("Already at target version")
	}
	return nil
}
