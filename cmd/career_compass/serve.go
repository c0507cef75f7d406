package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pruthviraj/career-compass/internal/config"
	"github.com/pruthviraj/career-compass/internal/logger"
	"github.com/pruthviraj/career-compass/internal/server"
)

var (
	servePort     int
	serveConfig   string
	serveVerbose  bool
	serveJSONLogs bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the career matching, roadmap, mentor chat, and startup idea endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit JSON log lines")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Precedence: CLI flags, then config file, then environment, then defaults.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveVerbose {
		cfg.Verbose = true
	}
	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Config{Port: 8080})

	if err := merged.Validate(); err != nil {
		return err
	}
	if merged.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or the config file's database_url)")
	}

	log, err := logger.New(serveJSONLogs, merged.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(merged, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}
