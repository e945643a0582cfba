package email

import (
	"errors"
	"net/smtp"
	"portfolio-backend/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredService() *EmailService {
	return NewEmailService(&config.Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       "587",
		SMTPUsername:   "mailer@example.com",
		SMTPPassword:   "secret",
		ContactEmailTo: "me@example.com",
	})
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewEmailService(&config.Config{}).IsConfigured())
	assert.True(t, configuredService().IsConfigured())
}

func TestBuildContactMessageEscapesBody(t *testing.T) {
	svc := configuredService()

	msg, err := svc.BuildContactMessage(ContactEmailData{
		SenderName:  "Ada",
		SenderEmail: "ada@example.com",
		Subject:     "Hello",
		Message:     "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	text := string(msg)
	assert.Contains(t, text, "From: mailer@example.com\r\n")
	assert.Contains(t, text, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, text, "Subject: Portfolio contact: Hello\r\n")
	assert.NotContains(t, text, "<script>")
	assert.Contains(t, text, "&lt;script&gt;")
}

func TestSendContactEmail(t *testing.T) {
	svc := configuredService()

	var gotAddr string
	var gotTo []string
	svc.send = func(addr string, _ smtp.Auth, _ string, to []string, _ []byte) error {
		gotAddr = addr
		gotTo = to
		return nil
	}

	require.NoError(t, svc.SendContactEmail(ContactEmailData{SenderName: "Ada", SenderEmail: "ada@example.com", Message: "hi"}))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"me@example.com"}, gotTo)
}

func TestSendContactEmailErrors(t *testing.T) {
	err := NewEmailService(&config.Config{}).SendContactEmail(ContactEmailData{})
	assert.EqualError(t, err, "email service is not configured")

	svc := configuredService()
	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}
	err = svc.SendContactEmail(ContactEmailData{SenderName: "Ada"})
	assert.EqualError(t, err, "failed to send email: connection refused")
}
