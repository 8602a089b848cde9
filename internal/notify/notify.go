// Package notify sends the change-alert email over authenticated SMTP.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
)

// Subject is the fixed subject line of every alert.
const Subject = "OneModel Page Update Detected"

// Error represents a failed notification. It surfaces only after state has
// already been persisted, so a delivery failure never loses the detected
// change.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("notification error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("notification error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Mailer delivers plaintext alerts from one sender to one recipient via
// SMTP submission with STARTTLS.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Send composes a plaintext email with one change message per line and
// submits it. Delivery blocks until the SMTP session completes or the
// transport gives up.
func (m Mailer) Send(messages []string) error {
	mail := m.compose(messages)

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	if err := mail.Send(addr, auth); err != nil {
		return &Error{Message: "failed to deliver alert", Cause: err}
	}
	return nil
}

func (m Mailer) compose(messages []string) *email.Email {
	mail := email.NewEmail()
	mail.From = m.From
	mail.To = []string{m.To}
	mail.Subject = Subject
	mail.Text = []byte(strings.Join(messages, "\n"))
	return mail
}
