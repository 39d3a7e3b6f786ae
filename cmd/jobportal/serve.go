package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobportal/internal/config"
	"github.com/jonathan/jobportal/internal/jobsource"
	"github.com/jonathan/jobportal/internal/logger"
	"github.com/jonathan/jobportal/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the resume-parsing and job-search endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	source := jobsource.FromConfig(cfg, log)

	srv := server.New(server.Config{
		Port:        cfg.Port,
		CORSOrigins: cfg.CORSOrigins,
		Source:      source,
		Logger:      log,
	})

	return srv.Start()
}
