package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
)

var tokenColumns = []string{"id", "user_id", "vendor_id", "kind", "digest", "expires_at", "revoked", "created_at"}

func TestTokenRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	owner := entity.AccountRef{Type: entity.AccountTypeVendor, ID: uuid.New()}
	token := &entity.Token{
		Owner:     owner,
		Kind:      entity.TokenKindBusinessDetails,
		Digest:    "digest",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}

	mock.ExpectExec(`INSERT INTO "tokens"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), token))
	assert.NotEqual(t, uuid.Nil, token.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_CreateRejectsUnknownOwner(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewTokenRepository(db)

	err := repo.Create(context.Background(), &entity.Token{Kind: entity.TokenKindRefresh, Digest: "d"})
	assert.Error(t, err)
}

func TestTokenRepository_Consume(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	tokenID := uuid.New()
	userID := uuid.New()
	expires := time.Now().Add(time.Hour)

	mock.ExpectQuery(`DELETE FROM "tokens" WHERE .*kind = .*digest = .*revoked = .*expires_at > .*RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(tokenColumns).
			AddRow(tokenID.String(), userID.String(), nil, "reset_password", "d1", expires, false, time.Now()))

	got, err := repo.Consume(context.Background(), repository.TokenLookup{
		Digest: "d1",
		Kind:   entity.TokenKindResetPassword,
		Now:    time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, tokenID, got.ID)
	assert.Equal(t, entity.AccountRef{Type: entity.AccountTypeUser, ID: userID}, got.Owner)
	assert.Equal(t, entity.TokenKindResetPassword, got.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_ConsumeNoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectQuery(`DELETE FROM "tokens" .*RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(tokenColumns))

	_, err := repo.Consume(context.Background(), repository.TokenLookup{Digest: "nope", Kind: entity.TokenKindRefresh})
	assert.True(t, errors.Is(err, repository.ErrTokenNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_ConsumeScopesToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	vendor := entity.AccountRef{Type: entity.AccountTypeVendor, ID: uuid.New()}

	mock.ExpectQuery(`DELETE FROM "tokens" WHERE .*vendor_id = .*RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(tokenColumns).
			AddRow(uuid.NewString(), nil, vendor.ID.String(), "reset_otp", "d", time.Now().Add(time.Minute), false, time.Now()))

	got, err := repo.Consume(context.Background(), repository.TokenLookup{
		Digest: "d",
		Kind:   entity.TokenKindResetOTP,
		Owner:  &vendor,
	})
	require.NoError(t, err)
	assert.Equal(t, vendor, got.Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_Redeem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	userID := uuid.New()
	mock.ExpectQuery(`UPDATE "tokens" SET "revoked"=.* WHERE .*kind = .*RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(tokenColumns).
			AddRow(uuid.NewString(), userID.String(), nil, "refresh_token", "d", time.Now().Add(time.Hour), true, time.Now()))

	got, err := repo.Redeem(context.Background(), repository.TokenLookup{Digest: "d", Kind: entity.TokenKindRefresh})
	require.NoError(t, err)
	assert.True(t, got.Revoked)
	assert.Equal(t, userID, got.Owner.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_RedeemNoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectQuery(`UPDATE "tokens" SET "revoked"=.*RETURNING \*`).
		WillReturnRows(sqlmock.NewRows(tokenColumns))

	_, err := repo.Redeem(context.Background(), repository.TokenLookup{Digest: "d", Kind: entity.TokenKindRefresh})
	assert.True(t, errors.Is(err, repository.ErrTokenNotFound))
}

func TestTokenRepository_FindValidForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	vendorID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "tokens" WHERE .*kind = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(tokenColumns).
			AddRow(uuid.NewString(), nil, vendorID.String(), "business_details", "d", time.Now().Add(time.Hour), false, time.Now()))

	got, err := repo.FindValidForUpdate(context.Background(), repository.TokenLookup{Digest: "d", Kind: entity.TokenKindBusinessDetails})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeVendor, got.Owner.Type)
	assert.Equal(t, vendorID, got.Owner.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_FindValidForUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tokens"`).WillReturnRows(sqlmock.NewRows(tokenColumns))

	_, err := repo.FindValidForUpdate(context.Background(), repository.TokenLookup{Digest: "d", Kind: entity.TokenKindBusinessDetails})
	assert.True(t, errors.Is(err, repository.ErrTokenNotFound))
}

func TestTokenRepository_RevokeByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	owner := entity.AccountRef{Type: entity.AccountTypeUser, ID: uuid.New()}
	mock.ExpectExec(`UPDATE "tokens" SET "revoked"=.* WHERE user_id = .* AND kind IN .* AND revoked = `).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.RevokeByOwner(context.Background(), owner, entity.PasswordResetRevokedKinds...)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_RevokeByDigest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	owner := entity.AccountRef{Type: entity.AccountTypeVendor, ID: uuid.New()}
	mock.ExpectExec(`UPDATE "tokens" SET "revoked"=.* WHERE vendor_id = .*digest = `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.RevokeByDigest(context.Background(), owner, entity.TokenKindRefresh, "d")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTokenRepository_DeleteByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	owner := entity.AccountRef{Type: entity.AccountTypeVendor, ID: uuid.New()}
	mock.ExpectExec(`DELETE FROM "tokens" WHERE vendor_id = `).WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestTokenRepository_PurgeInvalid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectExec(`DELETE FROM "tokens" WHERE \(?revoked = .* OR expires_at < `).WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.PurgeInvalid(context.Background(), time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
}

func TestTokenRepository_DatabaseErrorIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTokenRepository(db)

	mock.ExpectQuery(`DELETE FROM "tokens"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Consume(context.Background(), repository.TokenLookup{Digest: "d", Kind: entity.TokenKindRefresh})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
