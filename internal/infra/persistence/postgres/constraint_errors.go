package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgUniqueViolation
}

// violatedConstraint returns the constraint name reported by the server, or
// "" when the driver error was translated away.
func violatedConstraint(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}

	return ""
}

// isUniqueViolationOn reports a unique violation whose constraint name
// mentions column. Translated errors carry no name and match any column.
func isUniqueViolationOn(err error, column string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}
	name := violatedConstraint(err)

	return name == "" || strings.Contains(name, column)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgCheckViolation
}
