package handler

import (
	domainerrors "vendorhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterUserRequest represents the request body for user registration
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// RegisterVendorRequest represents the request body for the first onboarding step
type RegisterVendorRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
}

// BusinessDetailsRequest represents the request body for the second onboarding step
type BusinessDetailsRequest struct {
	BusinessDetailsToken string `json:"businessDetailsToken" validate:"required"`
	BusinessName         string `json:"businessName" validate:"required,max=200"`
	BusinessAddress      string `json:"businessAddress" validate:"required"`
	State                string `json:"state" validate:"required"`
	City                 string `json:"city" validate:"required"`
	PostalCode           string `json:"postalCode" validate:"required,postalcode"`
	GSTNumber            string `json:"gstNumber" validate:"omitempty,gstin"`
	Notes                string `json:"notes"`
}

// SelectServicesRequest represents the request body for the last onboarding step
type SelectServicesRequest struct {
	BusinessDetailsToken string   `json:"businessDetailsToken" validate:"required"`
	ServiceIDs           []string `json:"serviceIds" validate:"required,min=1,dive,uuid"`
}

// AddServiceRequest represents the request body for creating a catalog entry
type AddServiceRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"omitempty,numeric"`
	NextService string `json:"nextService" validate:"max=100"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request body for refresh token rotation
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest names the session to end. An empty body ends every session.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordRequest represents the request body for starting a recovery
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest represents the request body for redeeming a mailed code
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric,min=4,max=10"`
}

// ResetPasswordRequest carries the reset secret in the body or the path
type ResetPasswordRequest struct {
	Token    string `json:"token" param:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ChangePasswordRequest represents the request body for changing a known password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

// UpdateUserProfileRequest holds the optional profile fields
type UpdateUserProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// UpdateVendorRequest holds the optional vendor fields
type UpdateVendorRequest struct {
	FirstName       *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName        *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email           *string `json:"email" validate:"omitempty,email"`
	PhoneNumber     *string `json:"phoneNumber" validate:"omitempty,phone"`
	BusinessName    *string `json:"businessName" validate:"omitempty,min=1,max=200"`
	BusinessAddress *string `json:"businessAddress" validate:"omitempty,min=1"`
	State           *string `json:"state" validate:"omitempty,min=1"`
	City            *string `json:"city" validate:"omitempty,min=1"`
	PostalCode      *string `json:"postalCode" validate:"omitempty,postalcode"`
	GSTNumber       *string `json:"gstNumber" validate:"omitempty,gstin|len=0"`
	Notes           *string `json:"notes"`
}

// bindAndValidate binds the request into req and runs the struct rules.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError([]string{"request body is malformed"})
	}

	return errors.WithStack(c.Validate(req))
}

func vendorIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError([]string{"id must be a valid UUID"})
	}

	return id, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domainerrors.NewValidationError([]string{"serviceIds must contain valid UUIDs"})
		}
		ids = append(ids, id)
	}

	return ids, nil
}
