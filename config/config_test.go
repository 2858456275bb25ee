package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStripsTrailingSlash(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "15s", cfg.HTTPTimeout.String())
	assert.Equal(t, "platebook-session.db", cfg.SessionDBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingBaseURLFailsOutsideDevelopment(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("ENV", "production")
	t.Setenv("CI", "false")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL is required")
}

func TestLoadMissingBaseURLFallsBackInDevelopment(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("ENV", "development")
	t.Setenv("CI", "false")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}
