package repository

import (
	"context"
	"errors"
	"time"

	"vendorhub/internal/domain/entity"
)

// ErrTokenNotFound is returned when no valid token matches a lookup. It does
// not distinguish missing, expired and revoked rows.
var ErrTokenNotFound = errors.New("token not found")

// TokenLookup selects a single valid token. Owner narrows the match to one
// account and is required for low-entropy secrets such as OTPs.
type TokenLookup struct {
	Digest string
	Kind   entity.TokenKind
	Owner  *entity.AccountRef
	Now    time.Time
}

// TokenRepository persists issued tokens. Every method that accepts a
// TokenLookup applies the validity predicate (not revoked, not expired) in
// the same statement that reads or mutates the row.
type TokenRepository interface {
	Create(ctx context.Context, token *entity.Token) error

	// FindValidForUpdate returns the matching row and locks it until the
	// surrounding transaction ends.
	FindValidForUpdate(ctx context.Context, lookup TokenLookup) (*entity.Token, error)

	// Consume deletes the matching row and returns it.
	Consume(ctx context.Context, lookup TokenLookup) (*entity.Token, error)

	// Redeem flips revoked on the matching row and returns it.
	Redeem(ctx context.Context, lookup TokenLookup) (*entity.Token, error)

	// RevokeByDigest revokes the owner's token with the given digest and kind.
	RevokeByDigest(ctx context.Context, owner entity.AccountRef, kind entity.TokenKind, digest string) (int64, error)

	// RevokeByOwner revokes every token of the given kinds held by owner.
	RevokeByOwner(ctx context.Context, owner entity.AccountRef, kinds ...entity.TokenKind) (int64, error)

	// DeleteByOwner removes every token of the given kinds held by owner.
	DeleteByOwner(ctx context.Context, owner entity.AccountRef, kinds ...entity.TokenKind) (int64, error)

	// PurgeInvalid removes rows that expired before cutoff or are revoked.
	PurgeInvalid(ctx context.Context, cutoff time.Time) (int64, error)
}
