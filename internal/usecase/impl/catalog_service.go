package impl

import (
	"context"
	"log/slog"

	deliverycontext "vendorhub/internal/delivery/context"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(serviceRepo repository.ServiceRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListServices returns the whole catalog ordered by name.
func (srv *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Listed services", slog.Int("count", len(services)))

	return services, nil
}
