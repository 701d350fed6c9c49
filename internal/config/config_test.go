package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DIRECTORY_TOKEN", "tok-abc")
	t.Setenv("DIRECTORY_BOT_ID", "668701133069352961")
	t.Setenv("WEBHOOK_SECRET", "hush")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(668701133069352961), cfg.BotID)
	assert.Equal(t, ":8080", cfg.WebhookAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.ServerCount)
}

func TestLoad_MissingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("DIRECTORY_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadBotID(t *testing.T) {
	setRequired(t)
	t.Setenv("DIRECTORY_BOT_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ServerCount(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_COUNT", "1234")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.ServerCount)
	assert.Equal(t, 1234, *cfg.ServerCount)

	t.Setenv("SERVER_COUNT", "-1")
	_, err = Load()
	require.Error(t, err)
}
