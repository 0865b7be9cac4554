package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsDuplicateKeyErr reports whether err is a unique constraint violation on
// any of the supported databases.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// ConstraintDetail extracts a human readable description of the violated
// constraint, falling back to the raw error text.
func ConstraintDetail(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Detail != "" {
			return pgErr.Detail
		}
		if pgErr.ConstraintName != "" {
			return pgErr.ConstraintName
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// TranslateError wraps unique violations in a repository.DuplicateKeyError and
// returns every other error unchanged.
func TranslateError(err error) error {
	if !IsDuplicateKeyErr(err) {
		return err
	}
	return &repository.DuplicateKeyError{Detail: ConstraintDetail(err), Err: err}
}
