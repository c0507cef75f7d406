// Package main provides the entry point for the Career Compass HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_compass",
	Short: "Career Compass HTTP API Server",
	Long:  "Career Compass matches user profiles against a career catalog, generates phased learning roadmaps, and serves AI mentor chat and startup business plans via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
