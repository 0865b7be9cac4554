package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, cfg.ConfigFileErr)
	assert.Equal(t, "hotel-billing-api", cfg.App.Name)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, "cash", cfg.Billing.DefaultPaymentMethod)
	assert.Equal(t, "PAY-", cfg.Billing.PaymentReferencePrefix)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
	assert.Empty(t, cfg.CORS.AllowedMethods)
	assert.False(t, cfg.IsProduction())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_TYPE", "SQLite")
	t.Setenv("BILLING_DEFAULT_PAYMENT_METHOD", "card")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://pos.example.com, https://admin.example.com")

	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "card", cfg.Billing.DefaultPaymentMethod)
	assert.Equal(t, []string{"https://pos.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", Timezone: "UTC"}

	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}
