package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vendorhub/internal/delivery/context"
	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var knownAccountEvents = map[string]bool{
	service.EventAccountRegistered:      true,
	service.EventVendorOnboarded:        true,
	service.EventAccountPasswordReset:   true,
	service.EventAccountPasswordChanged: true,
	service.EventAccountDeleted:         true,
}

// AccountEventServiceParams holds dependencies for the audit consumer.
type AccountEventServiceParams struct {
	fx.In

	Repo     repository.AccountEventRepository
	Recorder service.FlowRecorder
	Logger   *slog.Logger
}

type accountEventService struct {
	repo     repository.AccountEventRepository
	recorder service.FlowRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountEventService is the constructor for the audit consumer.
func NewAccountEventService(params AccountEventServiceParams) usecase.AccountEventUsecase {
	return &accountEventService{
		repo:     params.Repo,
		recorder: params.Recorder,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *accountEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record validates the event and appends it to the audit trail.
func (srv *accountEventService) Record(ctx context.Context, event *service.AccountEvent) (err error) {
	eventType := "unknown"
	if event != nil && knownAccountEvents[event.Type] {
		eventType = event.Type
	}
	defer func() { srv.recorder.RecordEventReceived(eventType, err) }()

	audit, err := toAuditEvent(event, srv.now())
	if err != nil {
		return err
	}

	inserted, err := srv.repo.Record(ctx, audit)
	if err != nil {
		return errors.Wrap(err, "failed to record account event")
	}

	logger := srv.log(ctx).With(
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.String("account_type", event.AccountType),
		slog.String("account_id", event.AccountID),
	)
	if !inserted {
		logger.Info("Duplicate account event ignored")

		return nil
	}
	logger.Info("Account event recorded")

	return nil
}

// toAuditEvent checks the wire event and converts it to the stored form.
func toAuditEvent(event *service.AccountEvent, receivedAt time.Time) (*entity.AccountEvent, error) {
	if event == nil {
		return nil, domainerrors.NewValidationError([]string{"event is required"})
	}

	var problems []string
	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		problems = append(problems, "event_id must be a valid UUID")
	}
	if !knownAccountEvents[event.Type] {
		problems = append(problems, "type is not a known account event")
	}
	accountType := entity.AccountType(event.AccountType)
	if accountType != entity.AccountTypeUser && accountType != entity.AccountTypeVendor {
		problems = append(problems, "account_type must be one of [user vendor]")
	}
	accountID, err := uuid.Parse(event.AccountID)
	if err != nil {
		problems = append(problems, "account_id must be a valid UUID")
	}
	if len(problems) > 0 {
		return nil, domainerrors.NewValidationError(problems)
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = receivedAt
	}

	return &entity.AccountEvent{
		ID:         eventID,
		Type:       event.Type,
		Account:    entity.AccountRef{Type: accountType, ID: accountID},
		RequestID:  event.RequestID,
		OccurredAt: occurredAt,
		ReceivedAt: receivedAt,
	}, nil
}
