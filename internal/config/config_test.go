package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("VOGENT_API_KEY", "key-1")
	t.Setenv("VOGENT_AGENT_ID", "agent-1")
	t.Setenv("VOGENT_PHONE_NUMBER_ID", "phone-1")
	t.Setenv("VOGENT_VOICE_ID", "voice-1")
	t.Setenv("VOGENT_WEBHOOK_SECRET", "segredo")

	// Garante que o ambiente da máquina não vaza para o teste
	t.Setenv("VOGENT_API_URL", "")
	t.Setenv("PORT", "")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key-1", cfg.VogentAPIKey)
	assert.Equal(t, "segredo", cfg.VogentWebhookSecret)
	assert.Equal(t, "https://api.vogent.ai", cfg.VogentAPIURL)
	assert.Equal(t, 8000, cfg.Port)
}

// Segredo de webhook não tem default: sem ele o processo não sobe.
func TestLoad_WebhookSecretRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("VOGENT_WEBHOOK_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PortOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "abc")

	_, err := Load()
	assert.Error(t, err)
}
