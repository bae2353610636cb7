package mail

import (
	"bytes"
	"context"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/config"
)

func newTestSMTPMailer(t *testing.T, send sendFunc) *smtpMailer {
	t.Helper()

	m, err := NewSMTPMailer(&config.MailConfig{
		Provider: ProviderSMTP,
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "no-reply@example.com",
	})
	require.NoError(t, err)

	mailer := m.(*smtpMailer)
	mailer.send = send

	return mailer
}

func TestSMTPMailer_SendPasswordResetOTP(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	mailer := newTestSMTPMailer(t, func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg

		return nil
	})

	err := mailer.SendPasswordResetOTP(context.Background(), "vendor@example.com", "123456", 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "no-reply@example.com", gotFrom)
	assert.Equal(t, []string{"vendor@example.com"}, gotTo)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: Password Reset OTP\r\n")
	assert.Contains(t, body, "To: vendor@example.com\r\n")
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "15 minutes")
}

func TestSMTPMailer_SendPasswordResetLink(t *testing.T) {
	var gotMsg []byte
	mailer := newTestSMTPMailer(t, func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = msg

		return nil
	})

	link := "https://api.example.com/api/auth/reset-password/abc"
	require.NoError(t, mailer.SendPasswordResetLink(context.Background(), "user@example.com", link, time.Hour))

	assert.Contains(t, string(gotMsg), link)
	assert.Contains(t, string(gotMsg), "1 hour")
}

func TestSMTPMailer_PropagatesTransportError(t *testing.T) {
	mailer := newTestSMTPMailer(t, func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	})

	err := mailer.SendPasswordResetOTP(context.Background(), "a@b.c", "000000", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPMailer_RespectsCancelledContext(t *testing.T) {
	called := false
	mailer := newTestSMTPMailer(t, func(string, smtp.Auth, string, []string, []byte) error {
		called = true

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.SendPasswordResetOTP(ctx, "a@b.c", "000000", time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestNewSMTPMailer_RequiresHost(t *testing.T) {
	_, err := NewSMTPMailer(&config.MailConfig{Port: 25, From: "a@b.c"})
	assert.Error(t, err)
}

func TestNewMailer_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	m, err := NewMailer(MailerParams{Config: &config.Config{}, Logger: logger})
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, m)

	_, err = NewMailer(MailerParams{Config: &config.Config{Mail: &config.MailConfig{Provider: "carrier-pigeon"}}, Logger: logger})
	assert.Error(t, err)
}

func TestLogMailer_WritesMessage(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, m.SendPasswordResetOTP(context.Background(), "a@b.c", "654321", time.Minute))
	assert.True(t, strings.Contains(buf.String(), "654321"))
}
