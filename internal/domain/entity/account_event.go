package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountEvent is one audited change to an account, as received from the event stream.
type AccountEvent struct {
	ID         uuid.UUID // Publisher-assigned event id, the deduplication key.
	Type       string
	Account    AccountRef
	RequestID  string
	OccurredAt time.Time
	ReceivedAt time.Time
}
