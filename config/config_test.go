package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TELEGRAM_TOKEN", "DEPARTMENTS_FILE", "SEED_DB", "WORKERS", "QUEUE_SIZE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 32, cfg.QueueSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DepartmentsFile)

	_, err = cfg.BotToken()
	var noToken ErrNoToken
	assert.True(t, errors.As(err, &noToken))
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DEPARTMENTS_FILE", "deps.yaml")
	t.Setenv("SEED_DB", "seed.db")
	t.Setenv("WORKERS", "8")
	t.Setenv("QUEUE_SIZE", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	token, err := cfg.BotToken()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", token)
	assert.Equal(t, "deps.yaml", cfg.DepartmentsFile)
	assert.Equal(t, "seed.db", cfg.SeedDB)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 2, cfg.QueueSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_BadInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKERS", "many")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKERS")
}
