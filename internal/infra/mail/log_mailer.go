package mail

import (
	"context"
	"log/slog"
	"time"

	"vendorhub/internal/domain/service"
)

// logMailer writes messages to the log instead of sending them. Local
// development only: the secret appears in the log line.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for logMailer.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendPasswordResetOTP(ctx context.Context, to, otp string, validFor time.Duration) error {
	m.logger.InfoContext(ctx, "Mail delivery skipped",
		slog.String("subject", subjectResetOTP),
		slog.String("to", to),
		slog.String("otp", otp),
		slog.Duration("validFor", validFor),
	)

	return nil
}

func (m *logMailer) SendPasswordResetLink(ctx context.Context, to, link string, validFor time.Duration) error {
	m.logger.InfoContext(ctx, "Mail delivery skipped",
		slog.String("subject", subjectResetLink),
		slog.String("to", to),
		slog.String("link", link),
		slog.Duration("validFor", validFor),
	)

	return nil
}
