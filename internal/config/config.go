// Package config provides environment-driven configuration for the
// JobPortal API. All values are read once at startup; there is no
// runtime reconfiguration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Job source identifiers accepted in JOB_SOURCE.
const (
	SourceDemo    = "demo"
	SourceAdzuna  = "adzuna"
	SourceJSearch = "jsearch"
)

// Config holds the service configuration.
type Config struct {
	Port int

	// Job source selection and credentials
	JobSource     string
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string
	RapidAPIKey   string

	// CORS origins allowed to call the API
	CORSOrigins []string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Call Validate before using the result.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          8080,
		JobSource:     getenv("JOB_SOURCE", SourceDemo),
		AdzunaAppID:   os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:  os.Getenv("ADZUNA_APP_KEY"),
		AdzunaCountry: getenv("ADZUNA_COUNTRY", "in"),
		RapidAPIKey:   os.Getenv("RAPIDAPI_KEY"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	origins := getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}

	switch c.JobSource {
	case SourceDemo, SourceAdzuna, SourceJSearch:
	default:
		return fmt.Errorf("config error: unknown JOB_SOURCE %q (expected %s, %s or %s)",
			c.JobSource, SourceDemo, SourceAdzuna, SourceJSearch)
	}

	if c.JobSource == SourceJSearch && c.RapidAPIKey == "" {
		return fmt.Errorf("config error: JOB_SOURCE=jsearch requires RAPIDAPI_KEY")
	}
	if c.JobSource == SourceAdzuna && (c.AdzunaAppID == "" || c.AdzunaAppKey == "") {
		return fmt.Errorf("config error: JOB_SOURCE=adzuna requires ADZUNA_APP_ID and ADZUNA_APP_KEY")
	}

	return nil
}

// getenv returns the value of key, or fallback when unset or blank.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
