// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// ForgotPasswordInput starts a password recovery.
type ForgotPasswordInput struct {
	Email string
}

// UpdateUserProfileInput carries the optional profile fields.
type UpdateUserProfileInput struct {
	Username *string
	Email    *string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	// ForgotPassword mails a reset link. Unknown addresses succeed silently.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	GetProfile(ctx context.Context, principal Principal) (*entity.User, error)
	UpdateProfile(ctx context.Context, principal Principal, input *UpdateUserProfileInput) (*entity.User, error)
}
