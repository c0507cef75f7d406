package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/db"
	"github.com/pruthviraj/career-compass/internal/logger"
	"github.com/pruthviraj/career-compass/internal/resources"
)

var (
	refreshID      string
	refreshVerbose bool
)

var refreshCmd = &cobra.Command{
	Use:   "refresh-metadata",
	Short: "Re-crawl learning resource pages and update stored titles and descriptions",
	RunE:  runRefresh,
}

func init() {
	refreshCmd.Flags().StringVar(&refreshID, "id", "", "Refresh a single resource by ID (default: all active resources)")
	refreshCmd.Flags().BoolVar(&refreshVerbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(false, refreshVerbose)
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

	refresher := resources.NewRefresher(database, nil, log)

	if refreshID != "" {
		id, err := uuid.Parse(refreshID)
		if err != nil {
			return fmt.Errorf("invalid resource ID %q: %w", refreshID, err)
		}
		return refresher.RefreshOne(ctx, id)
	}

	updated, err := refresher.RefreshAll(ctx)
	if err != nil {
		return err
	}
	log.Info("metadata refresh complete", zap.Int("updated", updated))
	return nil
}
