package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel mirrors the 'vendors' table. Business columns hold '' until
// onboarding completes.
type VendorModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName       string     `gorm:"type:varchar(100);not null"`
	LastName        string     `gorm:"type:varchar(100);not null"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex:vendors_email_key;not null"`
	PhoneNumber     string     `gorm:"type:varchar(20);not null"`
	Password        string     `gorm:"type:varchar(255);not null"`
	BusinessName    string     `gorm:"type:varchar(255)"`
	BusinessAddress string     `gorm:"type:text"`
	State           string     `gorm:"type:varchar(100)"`
	City            string     `gorm:"type:varchar(100)"`
	PostalCode      string     `gorm:"type:varchar(10)"`
	GSTNumber       string     `gorm:"column:gst_number;type:varchar(15)"`
	Notes           string     `gorm:"type:text"`
	CreatedBy       *uuid.UUID `gorm:"type:uuid"`
	UpdatedBy       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}

// VendorServiceModel mirrors the 'vendor_services' join table.
type VendorServiceModel struct {
	VendorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorServiceModel) TableName() string {
	return "vendor_services"
}
