// Package main provides the entry point for the JobPortal API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobportal",
	Short: "JobPortal API server",
	Long:  "JobPortal parses uploaded resumes, extracts technology skills and matches them against job listings from external job-search providers.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
