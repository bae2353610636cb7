package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog entry vendors can offer.
type Service struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       string // Decimal kept as text to avoid float rounding.
	NextService string // Recommended interval, e.g. "6 months".
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
