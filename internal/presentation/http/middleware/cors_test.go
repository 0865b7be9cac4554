package middleware

import (
	"testing"

	"github.com/sangkips/hotel-billing-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestCORSConfigFromDefaults(t *testing.T) {
	cfg := CORSConfigFrom(&config.CORSConfig{})

	assert.Equal(t, defaultCORSOrigins, cfg.AllowOrigins)
	assert.True(t, cfg.AllowCredentials)
	assert.Contains(t, cfg.AllowHeaders, IdempotencyKeyHeader)
	assert.Contains(t, cfg.ExposeHeaders, "X-Idempotency-Replayed")
}

func TestCORSConfigFromWildcard(t *testing.T) {
	cfg := CORSConfigFrom(&config.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"content-type"},
	})

	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)
	assert.False(t, cfg.AllowCredentials)
	assert.Equal(t, []string{"content-type", "Authorization", IdempotencyKeyHeader}, cfg.AllowHeaders)
}
