package repository

import (
	"context"
	"errors"

	"vendorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a catalog entry is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines catalog persistence.
type ServiceRepository interface {
	List(ctx context.Context) ([]*entity.Service, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error)
	FindByName(ctx context.Context, name string) (*entity.Service, error)
	Create(ctx context.Context, service *entity.Service) error
}
