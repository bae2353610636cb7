package mail

import (
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"vendorhub/config"
	"vendorhub/internal/domain/service"
)

// Provider types
const (
	ProviderSMTP = "smtp"
	ProviderLog  = "log"
)

// MailerParams defines the dependencies for creating a Mailer
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the transport named by mail.provider. Unset falls back to the log mailer.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderLog {
		params.Logger.Warn("Mail provider not configured, messages will be logged")

		return NewLogMailer(params.Logger), nil
	}

	switch cfg.Provider {
	case ProviderSMTP:
		params.Logger.Info("Using SMTP mailer", slog.String("host", cfg.Host), slog.Int("port", cfg.Port))

		return NewSMTPMailer(cfg)
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
