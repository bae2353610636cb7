package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterVendorInput defines the first vendor onboarding step.
type RegisterVendorInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

// UpdateBusinessDetailsInput defines the second onboarding step.
type UpdateBusinessDetailsInput struct {
	BusinessDetailsToken string
	Details              entity.BusinessDetails
}

// SelectServicesInput defines the last onboarding step.
type SelectServicesInput struct {
	BusinessDetailsToken string
	ServiceIDs           []uuid.UUID
}

// AddServiceInput creates a catalog entry owned by the calling vendor.
type AddServiceInput struct {
	Name        string
	Description string
	Price       string
	NextService string
}

// VerifyOTPInput exchanges a mailed code for a reset token.
type VerifyOTPInput struct {
	Email string
	OTP   string
}

// --- Output DTOs ---

// VendorOutput is a vendor together with its resolved services.
type VendorOutput struct {
	Vendor   *entity.Vendor
	Services []*entity.Service
}

// RegisterVendorOutput carries the secret required for the next onboarding step.
type RegisterVendorOutput struct {
	Vendor               *entity.Vendor
	BusinessDetailsToken string
}

// VendorLoginOutput is a login result with the vendor's services resolved.
type VendorLoginOutput struct {
	Session  *Session
	Vendor   *entity.Vendor
	Services []*entity.Service
}

// VendorUsecase defines vendor onboarding and account management.
type VendorUsecase interface {
	Register(ctx context.Context, input *RegisterVendorInput) (*RegisterVendorOutput, error)
	// UpdateBusinessDetails keeps the onboarding token valid for SelectServices.
	UpdateBusinessDetails(ctx context.Context, input *UpdateBusinessDetailsInput) (*RegisterVendorOutput, error)
	// SelectServices stores the whole selection or nothing, and consumes the onboarding token.
	SelectServices(ctx context.Context, input *SelectServicesInput) (*VendorOutput, error)
	AddService(ctx context.Context, principal Principal, input *AddServiceInput) (*entity.Service, error)
	Login(ctx context.Context, input *LoginInput) (*VendorLoginOutput, error)
	// ForgotPassword mails a one-time code. Unknown addresses succeed silently.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	// VerifyOTP redeems the code and returns a reset_password secret.
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (string, error)
	GetProfile(ctx context.Context, principal Principal) (*VendorOutput, error)
	Update(ctx context.Context, principal Principal, vendorID uuid.UUID, patch entity.VendorPatch) (*VendorOutput, error)
	Delete(ctx context.Context, principal Principal, vendorID uuid.UUID) error
}

// CatalogUsecase exposes the service catalog.
type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]*entity.Service, error)
}
