package repository

import (
	"context"
	"errors"

	"vendorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when a vendor is not found.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines vendor persistence, including the vendor/service association.
type VendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	ExistsByEmail(ctx context.Context, email string, exclude uuid.UUID) (bool, error)
	Create(ctx context.Context, vendor *entity.Vendor) error
	// Update saves the scalar fields; ServiceIDs are written by ReplaceServices.
	Update(ctx context.Context, vendor *entity.Vendor) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	ReplaceServices(ctx context.Context, vendorID uuid.UUID, serviceIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
