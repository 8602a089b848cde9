// Package config provides configuration loading and validation for the
// monitor. Everything except SMTP credentials comes from flags with
// deployment defaults; the credentials are read from the process
// environment at startup.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Deployment defaults. Every value can be overridden by a flag.
const (
	DefaultURL      = "https://www.onemodel.co/roles-in-people-analytics-hr-technology"
	DefaultStateDir = "."
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
)

// Environment variable names for the SMTP credentials and recipient.
const (
	EnvSMTPUsername = "SMTP_USERNAME"
	EnvSMTPPassword = "SMTP_PASSWORD"
	EnvRecipient    = "ROLEWATCH_RECIPIENT"
)

// Config is the full runtime configuration for one monitor invocation.
// The SMTP fields are only required when EmailEnabled is set.
type Config struct {
	URL        string `validate:"required,url"`
	StateDir   string `validate:"required"`
	Timeout    time.Duration
	UseBrowser bool

	EmailEnabled bool
	SMTPHost     string `validate:"required_if=EmailEnabled true"`
	SMTPPort     int    `validate:"required_if=EmailEnabled true"`
	Sender       string `validate:"required_if=EmailEnabled true,omitempty,email"`
	Recipient    string `validate:"required_if=EmailEnabled true,omitempty,email"`
	Password     string `validate:"required_if=EmailEnabled true"`
}

// FromEnv fills credential fields that were not set explicitly. The sender
// address doubles as the SMTP username.
func (c *Config) FromEnv() {
	if c.Sender == "" {
		c.Sender = os.Getenv(EnvSMTPUsername)
	}
	if c.Password == "" {
		c.Password = os.Getenv(EnvSMTPPassword)
	}
	if c.Recipient == "" {
		c.Recipient = os.Getenv(EnvRecipient)
	}
}

// Validate checks the configuration, failing fast when notification is
// enabled but credentials are absent.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
