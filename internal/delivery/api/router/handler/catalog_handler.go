package handler

import (
	"context"
	"net/http"
	"time"

	"vendorhub/internal/delivery/api/response"
	"vendorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public service catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListServices returns every catalog entry ordered by name.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogUC.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Services retrieved successfully", newServiceViews(services))
}

// DatabasePinger reports whether the primary database answers.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

const healthCheckTimeout = 2 * time.Second

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	db DatabasePinger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db DatabasePinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck answers 200 while the database is reachable.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
