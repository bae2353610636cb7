package usecase

import (
	"context"

	"vendorhub/internal/domain/service"
)

// AccountEventUsecase consumes account events into the audit trail.
type AccountEventUsecase interface {
	// Record stores one delivered event. Malformed events fail with a
	// validation error and are not worth redelivering; redelivered events
	// succeed without writing twice.
	Record(ctx context.Context, event *service.AccountEvent) error
}
