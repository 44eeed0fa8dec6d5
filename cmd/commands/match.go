package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/internal/matching"
	"github.com/optiorder/vca-engine/pkg/config"
)

var (
	matchKind     string
	matchSeedFile string
)

var matchCmd = &cobra.Command{
	Use:   "match [term]",
	Short: "Resolve a free-text term against the reference catalog",
	Long: `Resolve a free-text identifier (customer name, lens/tint/coating
code) against the catalog and print the match result.

Examples:
  # Match a coating code against the reference database
  vca-engine match "pt green" --kind coating

  # Match against an HCL seed file instead of the database
  vca-engine match OVMDXV --kind lens --seed catalog.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchKind, "kind", "customer", "Catalog kind (customer, lens, tint, coating)")
	matchCmd.Flags().StringVar(&matchSeedFile, "seed", "", "Match against an HCL seed file instead of the database")
}

func runMatch(cmd *cobra.Command, args []string) error {
	kind, err := catalog.ParseKind(matchKind)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var provider catalog.Provider
	if matchSeedFile != "" {
		records, err := catalog.LoadSeedFile(matchSeedFile)
		if err != nil {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
		provider = catalog.NewMemory(records)
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()
		provider = catalog.NewStore(pool)
	}

	records, err := provider.Records(ctx, kind)
	if err != nil {
		return err
	}

	result := matching.Match(args[0], records, matching.ModeForKind(kind))
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
