// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vendorhub/internal/delivery/api/middleware"
	"vendorhub/internal/delivery/api/router/handler"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	VendorHandler  *handler.VendorHandler
	CatalogHandler *handler.CatalogHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	vendorHandler  *handler.VendorHandler
	catalogHandler *handler.CatalogHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		vendorHandler:  params.VendorHandler,
		catalogHandler: params.CatalogHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	if r.metrics.Enabled() {
		e.GET(r.metrics.Path(), echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")
	bearer := r.authMiddleware.Authenticate
	asUser := r.authMiddleware.RequireAccountType(entity.AccountTypeUser)
	asVendor := r.authMiddleware.RequireAccountType(entity.AccountTypeVendor)

	// User auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh-token", r.userHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.userHandler.ForgotPassword)
		authGroup.POST("/reset-password/:token", r.userHandler.ResetPassword)
		authGroup.POST("/logout", r.userHandler.Logout, bearer, asUser)
		authGroup.PUT("/change-password", r.userHandler.ChangePassword, bearer, asUser)
	}

	// User routes that require authentication
	userGroup := api.Group("/users", bearer, asUser)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}

	// Vendor onboarding and account routes
	vendorGroup := api.Group("/vendors")
	{
		vendorGroup.POST("/register", r.vendorHandler.Register)
		vendorGroup.POST("/business", r.vendorHandler.UpdateBusinessDetails)
		vendorGroup.POST("/services", r.vendorHandler.SelectServices)
		vendorGroup.POST("/login", r.vendorHandler.Login)
		vendorGroup.POST("/refresh-token", r.vendorHandler.RefreshToken)
		vendorGroup.POST("/forgot-password", r.vendorHandler.ForgotPassword)
		vendorGroup.POST("/verify-otp", r.vendorHandler.VerifyOTP)
		vendorGroup.POST("/reset-password", r.vendorHandler.ResetPassword)

		vendorGroup.POST("/services/add", r.vendorHandler.AddService, bearer, asVendor)
		vendorGroup.POST("/logout", r.vendorHandler.Logout, bearer, asVendor)
		vendorGroup.POST("/change-password", r.vendorHandler.ChangePassword, bearer, asVendor)
		vendorGroup.GET("/me", r.vendorHandler.Me, bearer, asVendor)
		vendorGroup.PUT("/:id", r.vendorHandler.Update, bearer, asVendor)
		vendorGroup.DELETE("/:id", r.vendorHandler.Delete, bearer, asVendor)
	}

	// Public catalog
	api.GET("/services", r.catalogHandler.ListServices)
}
