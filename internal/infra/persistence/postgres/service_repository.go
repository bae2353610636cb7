package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/infra/persistence/model"
)

// serviceRepository implements repository.ServiceRepository using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// List returns the whole catalog ordered by name.
func (repo *serviceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	var rows []model.ServiceModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return toServiceDomains(rows), nil
}

// FindByIDs returns the catalog entries among ids that exist. Missing ids are
// silently skipped; callers compare lengths.
func (repo *serviceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	if len(ids) == 0 {
		return []*entity.Service{}, nil
	}

	var rows []model.ServiceModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find services")
	}

	return toServiceDomains(rows), nil
}

// FindByName retrieves a catalog entry by its unique name.
func (repo *serviceRepository) FindByName(ctx context.Context, name string) (*entity.Service, error) {
	var row model.ServiceModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by name")
	}

	return toServiceDomain(&row), nil
}

// Create adds a catalog entry.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == uuid.Nil {
		service.ID = newID()
	}

	row := fromServiceDomain(service)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrServiceNameTaken.WrapMessage("failed to create service")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.CreatedAt = row.CreatedAt
	service.UpdatedAt = row.UpdatedAt

	return nil
}

func toServiceDomains(rows []model.ServiceModel) []*entity.Service {
	services := make([]*entity.Service, 0, len(rows))
	for i := range rows {
		services = append(services, toServiceDomain(&rows[i]))
	}

	return services
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		NextService: data.NextService,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		NextService: data.NextService,
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
