// Package jobsource queries external job-search providers and
// normalizes their listings into a uniform job record shape.
package jobsource

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/jobportal/internal/config"
)

// providerTimeout bounds each outbound provider call. There are no
// retries: a failed call surfaces as a single FetchError.
const providerTimeout = 15 * time.Second

// Job is the normalized job record returned by every provider.
type Job struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	URL        string   `json:"url"`
	Salary     string   `json:"salary"`
	Remote     bool     `json:"remote"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
}

// Query carries the skill list and optional filters for a job search.
type Query struct {
	Skills     []string
	Location   string
	Experience string
	Remote     bool
}

// Source is a job-search provider. Exactly one implementation is active
// per deployment, selected at startup.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]Job, error)
}

// FromConfig selects the provider for this deployment. JSearch is used
// only when explicitly selected with a RapidAPI key; Adzuna when its
// credentials are present; the built-in demo listings otherwise.
func FromConfig(cfg *config.Config, logger *zap.Logger) Source {
	switch {
	case cfg.JobSource == config.SourceJSearch && cfg.RapidAPIKey != "":
		return NewJSearch(cfg.RapidAPIKey, cfg.AdzunaCountry, logger)
	case cfg.AdzunaAppID != "" && cfg.AdzunaAppKey != "":
		return NewAdzuna(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry, logger)
	default:
		return NewDemo(logger)
	}
}

// topSkills returns at most n leading skills. Providers differ in how
// many skills make a useful query term.
func topSkills(skills []string, n int) []string {
	if len(skills) > n {
		return skills[:n]
	}
	return skills
}
