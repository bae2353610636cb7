package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind is the purpose a stored token was issued for.
type TokenKind string

const (
	TokenKindResetPassword   TokenKind = "reset_password"
	TokenKindBusinessDetails TokenKind = "business_details"
	TokenKindRefresh         TokenKind = "refresh_token"
	TokenKindResetOTP        TokenKind = "reset_otp"
)

// AllTokenKinds lists every kind in a stable order.
var AllTokenKinds = []TokenKind{
	TokenKindResetPassword,
	TokenKindBusinessDetails,
	TokenKindRefresh,
	TokenKindResetOTP,
}

// PasswordResetRevokedKinds are invalidated for an account once its password is reset.
var PasswordResetRevokedKinds = []TokenKind{
	TokenKindResetPassword,
	TokenKindResetOTP,
	TokenKindRefresh,
}

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// IsValid checks if the TokenKind is a valid value.
func (k TokenKind) IsValid() bool {
	switch k {
	case TokenKindResetPassword, TokenKindBusinessDetails, TokenKindRefresh, TokenKindResetOTP:
		return true
	default:
		return false
	}
}

// Token is a persisted short-lived credential. Only the keyed digest of the
// secret is stored.
type Token struct {
	ID        uuid.UUID
	Owner     AccountRef
	Kind      TokenKind
	Digest    string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// IsValid reports whether the token can still be used at now.
func (t *Token) IsValid(now time.Time) bool {
	return t != nil && !t.Revoked && now.Before(t.ExpiresAt)
}
