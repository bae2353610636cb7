package repository

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// AccountEventRepository stores the account audit trail.
type AccountEventRepository interface {
	// Record inserts the event unless one with the same id exists. It reports
	// whether a row was written, so redelivered events are detected.
	Record(ctx context.Context, event *entity.AccountEvent) (bool, error)
}
