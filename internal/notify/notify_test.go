package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_OneMessagePerLine(t *testing.T) {
	m := Mailer{From: "alerts@example.com", To: "watcher@example.com"}

	mail := m.compose([]string{
		"Page update date changed: 2025-04-12 -> 2025-05-01",
		"Table content has changed since last check.",
	})

	assert.Equal(t, Subject, mail.Subject)
	assert.Equal(t, "alerts@example.com", mail.From)
	require.Len(t, mail.To, 1)
	assert.Equal(t, "watcher@example.com", mail.To[0])
	assert.Equal(t,
		"Page update date changed: 2025-04-12 -> 2025-05-01\nTable content has changed since last check.",
		string(mail.Text))
}

func TestSend_UnreachableServer(t *testing.T) {
	m := Mailer{
		Host:     "127.0.0.1",
		Port:     1, // nothing listens here
		Username: "user",
		Password: "pass",
		From:     "alerts@example.com",
		To:       "watcher@example.com",
	}

	err := m.Send([]string{"Table content has changed since last check."})

	var notifyErr *Error
	require.ErrorAs(t, err, &notifyErr)
}
