package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/infra/persistence/model"
)

// vendorRepository implements repository.VendorRepository using GORM.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// FindByID retrieves a vendor and the ids of the services it offers.
func (repo *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a vendor by normalized email.
func (repo *vendorRepository) FindByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *vendorRepository) findOne(ctx context.Context, query string, arg any) (*entity.Vendor, error) {
	var vendorM model.VendorModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	var serviceIDs []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.VendorServiceModel{}).
		Where("vendor_id = ?", vendorM.ID).
		Order("created_at").
		Pluck("service_id", &serviceIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load vendor services")
	}

	return toVendorDomain(&vendorM, serviceIDs), nil
}

// ExistsByEmail reports whether another vendor already holds email.
func (repo *vendorRepository) ExistsByEmail(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("email = ?", email).
		Where("id <> ?", exclude).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check vendor email")
	}

	return count > 0, nil
}

// Create persists a new vendor. ServiceIDs are ignored; use ReplaceServices.
func (repo *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = newID()
	}

	vendorM := fromVendorDomain(vendor)
	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		return translateVendorWriteError(err, "failed to create vendor")
	}

	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// Update writes every scalar column of an existing vendor.
func (repo *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{ID: vendor.ID}).
		Updates(map[string]any{
			"first_name":       vendor.FirstName,
			"last_name":        vendor.LastName,
			"email":            vendor.Email,
			"phone_number":     vendor.PhoneNumber,
			"business_name":    vendor.BusinessName,
			"business_address": vendor.BusinessAddress,
			"state":            vendor.State,
			"city":             vendor.City,
			"postal_code":      vendor.PostalCode,
			"gst_number":       vendor.GSTNumber,
			"notes":            vendor.Notes,
			"updated_by":       vendor.UpdatedBy,
		})
	if result.Error != nil {
		return translateVendorWriteError(result.Error, "failed to update vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	vendor.UpdatedAt = time.Now()

	return nil
}

// UpdatePassword replaces the stored digest.
func (repo *vendorRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{ID: id}).
		Updates(map[string]any{"password": hash, "updated_by": id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// ReplaceServices swaps the vendor's service set for serviceIDs. Callers run
// it inside a transaction so the delete and insert land together.
func (repo *vendorRepository) ReplaceServices(ctx context.Context, vendorID uuid.UUID, serviceIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("vendor_id = ?", vendorID).Delete(&model.VendorServiceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear vendor services")
	}
	if len(serviceIDs) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]model.VendorServiceModel, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		rows = append(rows, model.VendorServiceModel{VendorID: vendorID, ServiceID: id, CreatedAt: now})
	}

	if err := db.Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidServiceSelection.WrapMessage("unknown service or vendor")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert vendor services")
	}

	return nil
}

// Delete removes the vendor. Service links and tokens cascade.
func (repo *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VendorModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

func translateVendorWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrEmailTaken.WrapMessage(details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing or invalid vendor information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toVendorDomain(data *model.VendorModel, serviceIDs []uuid.UUID) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		PhoneNumber:     data.PhoneNumber,
		HashedPassword:  data.Password,
		BusinessName:    data.BusinessName,
		BusinessAddress: data.BusinessAddress,
		State:           data.State,
		City:            data.City,
		PostalCode:      data.PostalCode,
		GSTNumber:       data.GSTNumber,
		Notes:           data.Notes,
		ServiceIDs:      serviceIDs,
		CreatedBy:       data.CreatedBy,
		UpdatedBy:       data.UpdatedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		PhoneNumber:     data.PhoneNumber,
		Password:        data.HashedPassword,
		BusinessName:    data.BusinessName,
		BusinessAddress: data.BusinessAddress,
		State:           data.State,
		City:            data.City,
		PostalCode:      data.PostalCode,
		GSTNumber:       data.GSTNumber,
		Notes:           data.Notes,
		CreatedBy:       data.CreatedBy,
		UpdatedBy:       data.UpdatedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
