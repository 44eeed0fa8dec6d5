package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/pkg/api"
	"github.com/optiorder/vca-engine/pkg/config"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP API server",
	Long: `Start the order gateway HTTP API server.

The server exposes REST endpoints for:
  - VCA encoding and order validation
  - Free-text matching against the reference catalog
  - Order storage and submission to the order-entry service

Examples:
  # Start server on default port
  vca-engine server

  # Start server on custom port
  vca-engine server --port 9090

Environment variables:
  DATABASE_URL       - PostgreSQL connection string for the catalog
  CATALOG_SEED_FILE  - Serve the catalog from an HCL seed file instead of Postgres
  LAB_ENDPOINT       - Order-entry submission URL (empty disables submission)
  CORS_ORIGINS       - Comma-separated CORS origins (default: localhost dev ports)
  LOG_LEVEL          - Logging level (debug/info/warn/error)`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&serverPort, "port", "", "HTTP server port (overrides PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	log.Info("Initializing order gateway HTTP API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}

	ctx := context.Background()

	var provider catalog.Provider
	var pool *pgxpool.Pool

	if cfg.SeedFile != "" {
		records, err := catalog.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
		provider = catalog.NewMemory(records)
		log.WithFields(log.Fields{
			"file":    cfg.SeedFile,
			"records": len(records),
		}).Info("Serving catalog from seed file")
	} else {
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		provider = catalog.NewStore(pool)
		log.Info("Connected to catalog database")
	}

	log.WithField("port", cfg.Port).Info("Server configuration loaded")

	server := api.New(cfg, pool, provider)
	return server.Start()
}
