package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "tobias@truenorthmaterials.com", cfg.MailTo)
	assert.Equal(t, "peti@truenorthmaterials.com", cfg.MailCc)
	assert.False(t, cfg.MailConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("MAIL_TO", "ops@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "ops@example.com", cfg.MailTo)
	assert.True(t, cfg.MailConfigured())
}
