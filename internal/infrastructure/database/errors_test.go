package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sangkips/hotel-billing-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	pgDup := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_invoices_invoice_number",
		Detail:         "Key (invoice_number)=(INV-1) already exists.",
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"postgres", pgDup, true},
		{"wrapped postgres", fmt.Errorf("insert invoice: %w", pgDup), true},
		{"other postgres code", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite", errors.New("UNIQUE constraint failed: invoices.invoice_number"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateKeyErr(tt.err))
		})
	}
}

func TestConstraintDetail(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505", Detail: "Key (sku)=(A1) already exists."}
	assert.Equal(t, "Key (sku)=(A1) already exists.", ConstraintDetail(pgDup))

	sqliteErr := errors.New("UNIQUE constraint failed: products.sku")
	assert.Equal(t, sqliteErr.Error(), ConstraintDetail(sqliteErr))

	assert.Equal(t, "", ConstraintDetail(nil))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "billing.db?_foreign_keys=on", SQLiteDSN("billing.db"))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", SQLiteDSN("file::memory:?cache=shared"))
}

func TestTranslateError(t *testing.T) {
	sqliteErr := errors.New("UNIQUE constraint failed: invoices.invoice_number")

	translated := TranslateError(sqliteErr)
	var dup *repository.DuplicateKeyError
	assert.True(t, errors.As(translated, &dup))
	assert.Equal(t, sqliteErr.Error(), dup.Detail)
	assert.True(t, errors.Is(translated, sqliteErr))

	other := errors.New("disk I/O error")
	assert.Same(t, other, TranslateError(other))
	assert.Nil(t, TranslateError(nil))
}
