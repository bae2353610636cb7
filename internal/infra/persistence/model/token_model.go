package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenModel mirrors the 'tokens' table. Exactly one of UserID and VendorID
// is set; a CHECK constraint enforces it.
type TokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	VendorID  *uuid.UUID `gorm:"type:uuid;index"`
	Kind      string     `gorm:"type:varchar(32);not null;uniqueIndex:tokens_kind_digest_key"`
	Digest    string     `gorm:"type:char(64);not null;uniqueIndex:tokens_kind_digest_key"`
	ExpiresAt time.Time  `gorm:"not null"`
	Revoked   bool       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}
