package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "JOB_SOURCE", "ADZUNA_APP_ID", "ADZUNA_APP_KEY",
		"ADZUNA_COUNTRY", "RAPIDAPI_KEY", "CORS_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults tests configuration defaults
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, SourceDemo, cfg.JobSource)
	assert.Equal(t, "in", cfg.AdzunaCountry)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

// TestLoad_FromEnvironment tests reading values from env vars
func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("JOB_SOURCE", "adzuna")
	t.Setenv("ADZUNA_APP_ID", "id")
	t.Setenv("ADZUNA_APP_KEY", "key")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, SourceAdzuna, cfg.JobSource)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

// TestLoad_InvalidPort tests that a non-numeric PORT fails
func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	_, err := Load()
	assert.Error(t, err)
}

// TestValidate tests configuration validation rules
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid demo", Config{Port: 8080, JobSource: SourceDemo}, ""},
		{"unknown source", Config{Port: 8080, JobSource: "linkedin"}, "unknown JOB_SOURCE"},
		{"jsearch without key", Config{Port: 8080, JobSource: SourceJSearch}, "RAPIDAPI_KEY"},
		{"jsearch with key", Config{Port: 8080, JobSource: SourceJSearch, RapidAPIKey: "k"}, ""},
		{"adzuna without credentials", Config{Port: 8080, JobSource: SourceAdzuna}, "ADZUNA_APP_ID"},
		{"port out of range", Config{Port: 70000, JobSource: SourceDemo}, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
