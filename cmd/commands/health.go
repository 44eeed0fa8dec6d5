package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/pkg/config"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check catalog database connectivity and reference set sizes",
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	fmt.Println("✓ Catalog database connection healthy")

	store := catalog.NewStore(pool)
	for _, kind := range catalog.Kinds {
		count, err := store.Count(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to count %s records: %w", kind, err)
		}
		fmt.Printf("  %-8s %d records\n", kind, count)
	}

	return nil
}
