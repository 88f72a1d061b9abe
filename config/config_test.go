package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"FILE_DIR", "RESOURCE_SIZE_LIMIT", "SESSION_DURATION",
		"ENVIRONMENT", "LOG_LEVEL",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "inkpot", cfg.Database.DBName)
	assert.Equal(t, "./files", cfg.Storage.FileDir)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.ResourceSizeLimit)
	assert.Equal(t, 720*time.Hour, cfg.Session.Duration)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("FILE_DIR", "/var/lib/inkpot/files")
	t.Setenv("SESSION_DURATION", "24h")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "/var/lib/inkpot/files", cfg.Storage.FileDir)
	assert.Equal(t, 24*time.Hour, cfg.Session.Duration)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadInvalidSessionDuration(t *testing.T) {
	clearEnv(t)

	t.Setenv("SESSION_DURATION", "not-a-duration")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_DURATION")
}

func TestLoadInvalidResourceSizeLimit(t *testing.T) {
	clearEnv(t)

	t.Setenv("RESOURCE_SIZE_LIMIT", "-1")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_SIZE_LIMIT")
}
