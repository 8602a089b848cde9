package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBase() Config {
	return Config{
		URL:      DefaultURL,
		StateDir: ".",
	}
}

func TestValidate_MinimalConfigWithoutEmail(t *testing.T) {
	cfg := validBase()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsMissingURL(t *testing.T) {
	cfg := validBase()
	cfg.URL = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsMalformedURL(t *testing.T) {
	cfg := validBase()
	cfg.URL = "not a url"
	assert.Error(t, cfg.Validate())
}

func TestValidate_EmailEnabledRequiresCredentials(t *testing.T) {
	cfg := validBase()
	cfg.EmailEnabled = true
	cfg.SMTPHost = DefaultSMTPHost
	cfg.SMTPPort = DefaultSMTPPort
	cfg.Recipient = "watcher@example.com"
	// Sender and Password deliberately absent.

	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidate_EmailEnabledWithFullCredentials(t *testing.T) {
	cfg := validBase()
	cfg.EmailEnabled = true
	cfg.SMTPHost = DefaultSMTPHost
	cfg.SMTPPort = DefaultSMTPPort
	cfg.Sender = "alerts@example.com"
	cfg.Recipient = "watcher@example.com"
	cfg.Password = "app-password"

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadRecipientAddress(t *testing.T) {
	cfg := validBase()
	cfg.EmailEnabled = true
	cfg.SMTPHost = DefaultSMTPHost
	cfg.SMTPPort = DefaultSMTPPort
	cfg.Sender = "alerts@example.com"
	cfg.Recipient = "not-an-address"
	cfg.Password = "app-password"

	assert.Error(t, cfg.Validate())
}

func TestFromEnv_FillsCredentials(t *testing.T) {
	t.Setenv(EnvSMTPUsername, "alerts@example.com")
	t.Setenv(EnvSMTPPassword, "app-password")
	t.Setenv(EnvRecipient, "watcher@example.com")

	cfg := validBase()
	cfg.FromEnv()

	assert.Equal(t, "alerts@example.com", cfg.Sender)
	assert.Equal(t, "app-password", cfg.Password)
	assert.Equal(t, "watcher@example.com", cfg.Recipient)
}

func TestFromEnv_DoesNotOverrideExplicitValues(t *testing.T) {
	t.Setenv(EnvSMTPUsername, "env@example.com")

	cfg := validBase()
	cfg.Sender = "explicit@example.com"
	cfg.FromEnv()

	assert.Equal(t, "explicit@example.com", cfg.Sender)
}
