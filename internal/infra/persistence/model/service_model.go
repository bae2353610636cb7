package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' catalog table. Price is NUMERIC(10,2)
// and travels as text.
type ServiceModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);uniqueIndex:services_name_key;not null"`
	Description string     `gorm:"type:text"`
	Price       string     `gorm:"type:numeric(10,2);not null"`
	NextService string     `gorm:"type:varchar(100)"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
