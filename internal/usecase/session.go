package usecase

import (
	"context"
	"time"

	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/repository"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	AccountType entity.AccountType
	AccountID   uuid.UUID
}

// Ref returns the token owner reference of the principal.
func (p Principal) Ref() entity.AccountRef {
	return entity.AccountRef{Type: p.AccountType, ID: p.AccountID}
}

// PrincipalOf builds the principal for an account.
func PrincipalOf(account entity.Account) Principal {
	return Principal{AccountType: account.Type(), AccountID: account.GetID()}
}

// Session is a fresh access token and refresh secret pair.
type Session struct {
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// SessionIssuer mints access tokens and rotates refresh tokens.
type SessionIssuer interface {
	// IssueAccessToken signs a short-lived access token for owner.
	IssueAccessToken(owner entity.AccountRef) (string, time.Time, error)

	// IssueSession signs an access token and stores a refresh token using the
	// caller's transaction.
	IssueSession(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef) (*Session, error)

	// Refresh redeems the presented refresh secret and returns a rotated session.
	// The secret must belong to an account of accountType.
	Refresh(ctx context.Context, accountType entity.AccountType, secret string) (*Session, error)

	// Logout revokes the given refresh secret, or every refresh token of the
	// principal when secret is empty.
	Logout(ctx context.Context, principal Principal, secret string) error

	// Authenticate validates a bearer access token.
	Authenticate(ctx context.Context, accessToken string) (*Principal, error)
}
