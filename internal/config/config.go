// Package config loads the jobs API configuration from environment variables.
package config

import "os"

// Config holds all configuration for the jobs API.
//
// Nothing in here is required at startup: a missing DATABASE_URL leaves the
// document store disconnected, and GET /test reports that state instead of
// the process refusing to boot.
type Config struct {
	// Port is the HTTP listen port (PORT, default "8000").
	Port string

	// DatabaseURL is the document store connection string (DATABASE_URL).
	// postgres:// and postgresql:// URLs use the Postgres driver; anything
	// else is treated as a SQLite path.
	DatabaseURL string

	// DatabaseName namespaces the store's tables (DATABASE_NAME, optional).
	DatabaseName string

	// RedisAddr enables application analytics when set (REDIS_ADDR, optional).
	RedisAddr string

	// MetricsEnabled exposes Prometheus metrics at /metrics (METRICS_ENABLED).
	MetricsEnabled bool
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "true",
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	return cfg
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// MaskedDatabaseURL returns the connection string with everything but the
// URI scheme hidden. Safe for startup logs.
func (c Config) MaskedDatabaseURL() string {
	if c.DatabaseURL == "" {
		return ""
	}
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if len(c.DatabaseURL) >= len(scheme) && c.DatabaseURL[:len(scheme)] == scheme {
			return scheme + "***"
		}
	}
	return "***"
}
