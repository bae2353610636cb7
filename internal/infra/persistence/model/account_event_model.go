package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountEventModel is the GORM-specific struct for the 'account_events' table.
type AccountEventModel struct {
	EventID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type        string    `gorm:"type:varchar(64);not null"`
	AccountType string    `gorm:"type:varchar(16);not null"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null"`
	RequestID   string    `gorm:"type:varchar(128);not null"`
	OccurredAt  time.Time `gorm:"not null"`
	ReceivedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountEventModel) TableName() string {
	return "account_events"
}
