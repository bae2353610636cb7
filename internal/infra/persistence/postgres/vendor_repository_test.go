package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
)

var vendorColumns = []string{
	"id", "first_name", "last_name", "email", "phone_number", "password",
	"business_name", "business_address", "state", "city", "postal_code", "gst_number", "notes",
	"created_by", "updated_by", "created_at", "updated_at",
}

func TestVendorRepository_FindByIDLoadsServices(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	id := uuid.New()
	svc1, svc2 := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(vendorColumns).AddRow(
			id.String(), "Asha", "Rao", "asha@example.com", "+919876543210", "h",
			"Rao Repairs", "12 Main St", "KA", "Bengaluru", "56001", "", "",
			nil, nil, time.Now(), time.Now(),
		))
	mock.ExpectQuery(`SELECT "service_id" FROM "vendor_services" WHERE vendor_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}).AddRow(svc1.String()).AddRow(svc2.String()))

	vendor, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Rao Repairs", vendor.BusinessName)
	assert.Equal(t, []uuid.UUID{svc1, svc2}, vendor.ServiceIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVendorRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "vendors" WHERE email = \$1`).WillReturnRows(sqlmock.NewRows(vendorColumns))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.True(t, errors.Is(err, repository.ErrVendorNotFound))
}

func TestVendorRepository_CreateDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectExec(`INSERT INTO "vendors"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "vendors_email_key"})

	err := repo.Create(context.Background(), &entity.Vendor{Email: "a@b.c"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestVendorRepository_ReplaceServices(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	vendorID := uuid.New()
	mock.ExpectExec(`DELETE FROM "vendor_services" WHERE vendor_id = \$1`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "vendor_services"`).WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.ReplaceServices(context.Background(), vendorID, []uuid.UUID{uuid.New(), uuid.New()})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVendorRepository_ReplaceServicesUnknownService(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectExec(`DELETE FROM "vendor_services"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "vendor_services"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "vendor_services_service_id_fkey"})

	err := repo.ReplaceServices(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidServiceSelection))
}

func TestVendorRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectExec(`DELETE FROM "vendors" WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, repository.ErrVendorNotFound))
}

func TestVendorRepository_UpdateWritesBusinessColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVendorRepository(db)

	mock.ExpectExec(`UPDATE "vendors" SET .*"gst_number"=`).WillReturnResult(sqlmock.NewResult(0, 1))

	v := &entity.Vendor{ID: uuid.New(), BusinessName: "Rao Repairs"}
	require.NoError(t, repo.Update(context.Background(), v))
	assert.NoError(t, mock.ExpectationsWereMet())
}
