package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONEYWISE_API_URL", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.StatePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONEYWISE_API_URL", "http://localhost:8080")
	t.Setenv("TELEGRAM_TOKEN", "tg-token")
	t.Setenv("MONEYWISE_STATE_PATH", "/tmp/state.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "tg-token", cfg.TelegramToken)
	assert.Equal(t, "/tmp/state.db", cfg.StatePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}
