package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATA_FILE", "LOG_DIR", "CLAUDE_API_KEY", "CLAUDE_MODEL",
		"MAILGUN_SMTP_SERVER", "MAILGUN_SMTP_PORT", "EMAIL_SENDER_ADDRESS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "assessments_data.json", cfg.DataFile)
	assert.Equal(t, "claude-3-opus-20240229", cfg.AI.Model)
	assert.Equal(t, 150, cfg.AI.MaxTokens)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.AI.IsEnabled())
	assert.False(t, cfg.SMTP.IsEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("CLAUDE_API_KEY", "sk-test")
	t.Setenv("MAILGUN_SMTP_SERVER", "smtp.mailgun.org")
	t.Setenv("MAILGUN_SMTP_PORT", "2525")
	t.Setenv("EMAIL_SENDER_ADDRESS", "noreply@example.com")
	t.Setenv("EMAIL_RECIPIENT_ADDRESS", "admin@example.com")

	cfg := Load()

	assert.Equal(t, "8088", cfg.Port)
	assert.True(t, cfg.AI.IsEnabled())
	assert.True(t, cfg.SMTP.IsEnabled())
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "admin@example.com", cfg.SMTP.OperatorRecipient)
}

func TestInvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAILGUN_SMTP_PORT", "not-a-number")
	cfg := Load()
	assert.Equal(t, 587, cfg.SMTP.Port)
}
