package service

import (
	"errors"
	"time"

	"vendorhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Reasons an access token was rejected. Callers only ever see a single
// unauthorized error; these exist for logging.
var (
	ErrAccessTokenMalformed    = errors.New("access token malformed")
	ErrAccessTokenSignature    = errors.New("access token signature invalid")
	ErrAccessTokenExpired      = errors.New("access token expired")
	ErrAccessTokenMissingClaim = errors.New("access token missing account claim")
)

// Claims defines the custom claims for access tokens.
type Claims struct {
	AccountID   uuid.UUID          `json:"-"`
	AccountType entity.AccountType `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService signs and validates stateless access tokens.
type TokenService interface {
	// GenerateAccessToken returns a signed token for the account and its expiry.
	GenerateAccessToken(ref entity.AccountRef) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry and the subject claim. The
	// returned error wraps one of the ErrAccessToken* reasons.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured access token lifetime.
	GetAccessTokenDuration() time.Duration
}
