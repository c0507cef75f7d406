package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pruthviraj/career-compass/internal/db"
	"github.com/pruthviraj/career-compass/internal/logger"
	"github.com/pruthviraj/career-compass/internal/seed"
)

var (
	seedDataDir   string
	seedSchemaDir string
	seedVerbose   bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Validate and load the catalog seed files into the database",
	Long: `Validate data/careers.json, data/resources.json, and data/startups.json
against their JSON Schemas and upsert them into the database. Reseeding is
idempotent; existing rows are updated in place.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedDataDir, "data", "data", "Directory holding the seed JSON files")
	seedCmd.Flags().StringVar(&seedSchemaDir, "schemas", "", "Directory holding the JSON Schemas (default: the repo's schemas/ directory)")
	seedCmd.Flags().BoolVar(&seedVerbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(false, seedVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	seeder := seed.NewSeeder(database, seedDataDir, seedSchemaDir, log)
	if err := seeder.Run(ctx); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	return nil
}
