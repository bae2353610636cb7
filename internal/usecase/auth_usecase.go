package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	AccountType entity.AccountType
	Email       string
	Password    string
}

// ChangePasswordInput defines the data required to change a known password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ResetPasswordInput defines the data required to finish a password reset.
type ResetPasswordInput struct {
	AccountType entity.AccountType
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the session together with the logged in account.
type LoginOutput struct {
	Session *Session
	Account entity.Account
}

// AuthUsecase holds the flows shared by users and vendors.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, accountType entity.AccountType, refreshToken string) (*Session, error)
	Logout(ctx context.Context, principal Principal, refreshToken string) error
	ChangePassword(ctx context.Context, principal Principal, input *ChangePasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
