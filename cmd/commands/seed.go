package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/pkg/config"
)

var seedFilePath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load an HCL catalog seed file into the reference database",
	Long: `Parse an HCL seed file and replace the matching reference sets in
the catalog database. Kinds absent from the file are left untouched.

Example:
  vca-engine seed --file catalog.hcl`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFilePath, "file", "", "Path to HCL seed file")
	seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	records, err := catalog.LoadSeedFile(seedFilePath)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("seed file %s contains no records", seedFilePath)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	store := catalog.NewStore(pool)
	if err := store.Replace(ctx, records); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	counts := map[catalog.Kind]int{}
	for _, r := range records {
		counts[r.Kind]++
	}
	for kind, count := range counts {
		log.WithFields(log.Fields{"kind": kind, "records": count}).Info("Reference set loaded")
	}

	return nil
}
