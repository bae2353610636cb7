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

var serviceColumns = []string{"id", "name", "description", "price", "next_service", "created_by", "created_at", "updated_at"}

func TestServiceRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "services" ORDER BY name`).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(uuid.NewString(), "Air Conditioner", "Split and window units", "236.00", "6 months", nil, time.Now(), time.Now()).
			AddRow(uuid.NewString(), "Microwave", "All brands", "236.00", "6 months", nil, time.Now(), time.Now()))

	services, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Air Conditioner", services[0].Name)
	assert.Equal(t, "236.00", services[0].Price)
}

func TestServiceRepository_FindByIDsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	services, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceRepository_FindByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "services" WHERE id IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows(serviceColumns).
			AddRow(id.String(), "Microwave", "", "236.00", "6 months", nil, time.Now(), time.Now()))

	services, err := repo.FindByIDs(context.Background(), []uuid.UUID{id, uuid.New()})
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, id, services[0].ID)
}

func TestServiceRepository_FindByNameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "services" WHERE name = \$1`).WillReturnRows(sqlmock.NewRows(serviceColumns))

	_, err := repo.FindByName(context.Background(), "Toaster")
	assert.True(t, errors.Is(err, repository.ErrServiceNotFound))
}

func TestServiceRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db)

	mock.ExpectExec(`INSERT INTO "services"`).WillReturnError(errors.Wrap(errDuplicate(), "insert"))

	err := repo.Create(context.Background(), &entity.Service{Name: "Microwave", Price: "236.00"})
	assert.True(t, errors.Is(err, domainerrors.ErrServiceNameTaken))
}
