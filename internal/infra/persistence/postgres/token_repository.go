package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/infra/persistence/model"
)

// tokenRepository implements repository.TokenRepository. Every lookup is
// pinned to the primary so a just-issued token is always visible.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists a new token row.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	if token.ID == uuid.Nil {
		token.ID = newID()
	}

	tokenM, err := fromTokenDomain(token)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTokenIssueFailed.WrapMessage("token digest collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTokenIssueFailed.WrapMessage("token owner does not exist")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindValidForUpdate reads and row-locks the matching token.
func (repo *tokenRepository) FindValidForUpdate(ctx context.Context, lookup repository.TokenLookup) (*entity.Token, error) {
	scope, err := repo.validScope(ctx, lookup)
	if err != nil {
		return nil, err
	}

	var tokenM model.TokenModel
	if err := scope.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).Take(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find token")
	}

	return toTokenDomain(&tokenM), nil
}

// Consume deletes the matching token in a single DELETE ... RETURNING, so two
// concurrent callers can never both receive it.
func (repo *tokenRepository) Consume(ctx context.Context, lookup repository.TokenLookup) (*entity.Token, error) {
	scope, err := repo.validScope(ctx, lookup)
	if err != nil {
		return nil, err
	}

	var rows []model.TokenModel
	result := scope.Clauses(clause.Returning{}).Delete(&rows)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume token")
	}
	if result.RowsAffected == 0 || len(rows) == 0 {
		return nil, repository.ErrTokenNotFound
	}

	return toTokenDomain(&rows[0]), nil
}

// Redeem flips revoked in a single UPDATE ... RETURNING, leaving the row for audit.
func (repo *tokenRepository) Redeem(ctx context.Context, lookup repository.TokenLookup) (*entity.Token, error) {
	scope, err := repo.validScope(ctx, lookup)
	if err != nil {
		return nil, err
	}

	var tokenM model.TokenModel
	result := scope.Model(&tokenM).Clauses(clause.Returning{}).Update("revoked", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem token")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTokenNotFound
	}

	return toTokenDomain(&tokenM), nil
}

// RevokeByDigest revokes one token owned by owner. Revoking an already revoked
// or unknown token affects zero rows and is not an error.
func (repo *tokenRepository) RevokeByDigest(ctx context.Context, owner entity.AccountRef, kind entity.TokenKind, digest string) (int64, error) {
	column, err := ownerColumn(owner)
	if err != nil {
		return 0, err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where(column+" = ?", owner.ID).
		Where("kind = ? AND digest = ? AND revoked = ?", string(kind), digest, false).
		Update("revoked", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke token")
	}

	return result.RowsAffected, nil
}

// RevokeByOwner revokes every live token of the given kinds, or of all kinds
// when none are given.
func (repo *tokenRepository) RevokeByOwner(ctx context.Context, owner entity.AccountRef, kinds ...entity.TokenKind) (int64, error) {
	scope, err := repo.ownerScope(ctx, owner, kinds)
	if err != nil {
		return 0, err
	}

	result := scope.Where("revoked = ?", false).Update("revoked", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to revoke tokens")
	}

	return result.RowsAffected, nil
}

// DeleteByOwner removes every token of the given kinds, or of all kinds when
// none are given.
func (repo *tokenRepository) DeleteByOwner(ctx context.Context, owner entity.AccountRef, kinds ...entity.TokenKind) (int64, error) {
	scope, err := repo.ownerScope(ctx, owner, kinds)
	if err != nil {
		return 0, err
	}

	result := scope.Delete(&model.TokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tokens")
	}

	return result.RowsAffected, nil
}

// PurgeInvalid removes revoked rows and rows that expired before cutoff.
func (repo *tokenRepository) PurgeInvalid(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("revoked = ? OR expires_at < ?", true, cutoff).
		Delete(&model.TokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge tokens")
	}

	return result.RowsAffected, nil
}

// validScope builds the validity predicate shared by every lookup.
func (repo *tokenRepository) validScope(ctx context.Context, lookup repository.TokenLookup) (*gorm.DB, error) {
	now := lookup.Now
	if now.IsZero() {
		now = time.Now()
	}

	scope := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("kind = ? AND digest = ? AND revoked = ? AND expires_at > ?", string(lookup.Kind), lookup.Digest, false, now)

	if lookup.Owner != nil {
		column, err := ownerColumn(*lookup.Owner)
		if err != nil {
			return nil, err
		}
		scope = scope.Where(column+" = ?", lookup.Owner.ID)
	}

	return scope, nil
}

func (repo *tokenRepository) ownerScope(ctx context.Context, owner entity.AccountRef, kinds []entity.TokenKind) (*gorm.DB, error) {
	column, err := ownerColumn(owner)
	if err != nil {
		return nil, err
	}

	scope := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where(column+" = ?", owner.ID)
	if len(kinds) > 0 {
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, string(k))
		}
		scope = scope.Where("kind IN ?", names)
	}

	return scope, nil
}

func ownerColumn(owner entity.AccountRef) (string, error) {
	switch owner.Type {
	case entity.AccountTypeUser:
		return "user_id", nil
	case entity.AccountTypeVendor:
		return "vendor_id", nil
	default:
		return "", errors.Errorf("unknown token owner type %q", owner.Type)
	}
}

func toTokenDomain(data *model.TokenModel) *entity.Token {
	token := &entity.Token{
		ID:        data.ID,
		Kind:      entity.TokenKind(data.Kind),
		Digest:    data.Digest,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		CreatedAt: data.CreatedAt,
	}

	switch {
	case data.UserID != nil:
		token.Owner = entity.AccountRef{Type: entity.AccountTypeUser, ID: *data.UserID}
	case data.VendorID != nil:
		token.Owner = entity.AccountRef{Type: entity.AccountTypeVendor, ID: *data.VendorID}
	}

	return token
}

func fromTokenDomain(data *entity.Token) (*model.TokenModel, error) {
	tokenM := &model.TokenModel{
		ID:        data.ID,
		Kind:      string(data.Kind),
		Digest:    data.Digest,
		ExpiresAt: data.ExpiresAt,
		Revoked:   data.Revoked,
		CreatedAt: data.CreatedAt,
	}

	ownerID := data.Owner.ID
	switch data.Owner.Type {
	case entity.AccountTypeUser:
		tokenM.UserID = &ownerID
	case entity.AccountTypeVendor:
		tokenM.VendorID = &ownerID
	default:
		return nil, errors.Errorf("unknown token owner type %q", data.Owner.Type)
	}

	return tokenM, nil
}
