package mail

import (
	"context"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"vendorhub/config"
	"vendorhub/internal/domain/service"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// smtpMailer hands messages to an SMTP relay.
type smtpMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	send     sendFunc
}

// NewSMTPMailer builds a mailer from the mail section of the configuration.
func NewSMTPMailer(cfg *config.MailConfig) (service.Mailer, error) {
	if cfg == nil {
		return nil, errors.New("mail configuration is missing")
	}

	m := &smtpMailer{
		host:     strings.TrimSpace(cfg.Host),
		port:     strconv.Itoa(cfg.Port),
		username: cfg.Username,
		password: cfg.Password,
		from:     strings.TrimSpace(cfg.From),
		send:     smtp.SendMail,
	}
	if m.host == "" || cfg.Port == 0 || m.from == "" {
		return nil, errors.New("mailer missing configuration")
	}

	return m, nil
}

func (m *smtpMailer) SendPasswordResetOTP(ctx context.Context, to, otp string, validFor time.Duration) error {
	return m.deliver(ctx, to, resetOTPMessage(otp, validFor))
}

func (m *smtpMailer) SendPasswordResetLink(ctx context.Context, to, link string, validFor time.Duration) error {
	return m.deliver(ctx, to, resetLinkMessage(link, validFor))
}

func (m *smtpMailer) deliver(ctx context.Context, to string, msg message) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.send(addr, auth, m.from, []string{to}, msg.render(m.from, to)); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	return nil
}
