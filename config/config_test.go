package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env around
	t.Setenv("TRIPWISE_DATA_DIR", "")
	t.Setenv("TRIPWISE_STORE", "")
	t.Setenv("TRIPWISE_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRIPWISE_DATA_DIR", "/tmp/trips")
	t.Setenv("TRIPWISE_STORE", "sqlite")
	t.Setenv("TRIPWISE_RATE_API_KEY", "secret")
	t.Setenv("TRIPWISE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/trips", cfg.DataDir)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "secret", cfg.RateAPIKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadBadStore(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TRIPWISE_STORE", "postgres")

	_, err := Load()
	require.Error(t, err)
}
