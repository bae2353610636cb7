package usecase

import (
	"context"
	"time"

	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/repository"
)

// TokenIssuer issues and checks stored tokens. Every method takes the token
// repository of the caller's transaction so issuance and consumption commit
// together with the rest of a flow.
//
// Validation failures for a kind always surface as the same error, whether
// the secret was unknown, expired or revoked.
type TokenIssuer interface {
	// Issue stores a new random secret of kind for owner and returns the raw secret.
	Issue(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kind entity.TokenKind) (string, error)

	// IssueOTP stores a numeric one-time code of kind reset_otp for owner.
	IssueOTP(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef) (string, error)

	// Validate locks and returns the matching valid token without consuming it.
	Validate(ctx context.Context, tokens repository.TokenRepository, secret string, kind entity.TokenKind, owner *entity.AccountRef) (*entity.Token, error)

	// Consume deletes the matching valid token and returns it.
	Consume(ctx context.Context, tokens repository.TokenRepository, secret string, kind entity.TokenKind, owner *entity.AccountRef) (*entity.Token, error)

	// Redeem revokes the matching valid token and returns it.
	Redeem(ctx context.Context, tokens repository.TokenRepository, secret string, kind entity.TokenKind, owner *entity.AccountRef) (*entity.Token, error)

	// RevokeSecret revokes owner's token for secret. Unknown secrets are ignored.
	RevokeSecret(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kind entity.TokenKind, secret string) error

	// RevokeAll revokes every token of kinds held by owner.
	RevokeAll(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kinds ...entity.TokenKind) error

	// DeleteAll removes every token of kinds held by owner.
	DeleteAll(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kinds ...entity.TokenKind) error

	// TTL returns the configured lifetime of kind.
	TTL(kind entity.TokenKind) time.Duration
}
