package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"go.uber.org/zap"
)

// DefaultAPIBaseURL is the known development backend, used only when
// API_BASE_URL is absent in a development environment.
const DefaultAPIBaseURL = "http://134.122.96.197:3000"

// Config holds all configuration for the client.
type Config struct {
	// APIBaseURL is the root of the backend REST API. Required outside
	// development.
	APIBaseURL string `env:"API_BASE_URL"`

	// HTTPTimeout bounds every backend call.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`

	// SessionDBPath is where the signed-in session is persisted.
	SessionDBPath string `env:"SESSION_DB_PATH" envDefault:"platebook-session.db"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment. Outside development a
// missing API_BASE_URL is a hard error; in development it falls back to the
// known dev backend with a warning, matching how the app has always been
// configured.
func Load(logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.APIBaseURL == "" {
		if !IsDevelopment() {
			return nil, fmt.Errorf("API_BASE_URL is required in %s environment", GetEnvironment())
		}
		logger.Warn("API_BASE_URL not set, falling back to default",
			zap.String("url", DefaultAPIBaseURL))
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	// Path joins assume no trailing slash.
	cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")

	return cfg, nil
}
