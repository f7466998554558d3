package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DATABASE_PATH", "/tmp/bot.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.TelegramBotToken)
	assert.Equal(t, "/tmp/bot.db", cfg.DatabasePath)
}

func TestLoadDefaultDatabasePath(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DATABASE_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "calorie_bot.db", cfg.DatabasePath)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}
