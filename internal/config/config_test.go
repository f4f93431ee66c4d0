package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("METRICS_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.DatabaseName)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://user:secret@db:5432/stuvify")
	t.Setenv("DATABASE_NAME", "stuvify")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("METRICS_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://user:secret@db:5432/stuvify", cfg.DatabaseURL)
	assert.Equal(t, "stuvify", cfg.DatabaseName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_MetricsFlagMustBeExactlyTrue(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "yes")

	assert.False(t, Load().MetricsEnabled)
}

func TestMaskedDatabaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"empty", "", ""},
		{"postgres scheme kept", "postgres://user:secret@db:5432/stuvify", "postgres://***"},
		{"postgresql scheme kept", "postgresql://user:secret@db/stuvify", "postgresql://***"},
		{"sqlite path fully masked", "/var/data/jobs.sqlite", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{DatabaseURL: tt.url}
			assert.Equal(t, tt.want, cfg.MaskedDatabaseURL())
		})
	}
}
