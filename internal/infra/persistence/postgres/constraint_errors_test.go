package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrorClassification(t *testing.T) {
	uniqueEmail := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "insert")
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "vendor_services_service_id_fkey"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514", ConstraintName: "tokens_single_owner"}

	assert.True(t, isUniqueConstraintViolation(uniqueEmail))
	assert.True(t, isUniqueViolationOn(uniqueEmail, "email"))
	assert.False(t, isUniqueViolationOn(uniqueEmail, "username"))
	assert.Equal(t, "users_email_key", violatedConstraint(uniqueEmail))

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolationOn(gorm.ErrDuplicatedKey, "username"))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.False(t, isForeignKeyConstraintViolation(uniqueEmail))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(fk))
	assert.True(t, isNotNullConstraintViolation(errors.New("ERROR: null value in column \"email\"")))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(errors.New("boom")))
}
