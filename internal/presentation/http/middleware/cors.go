package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/hotel-billing-api/internal/config"
)

var (
	defaultCORSOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
	}
	defaultCORSMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	defaultCORSHeaders = []string{
		"Accept",
		"Authorization",
		"Content-Type",
		"Origin",
		"X-Request-ID",
	}
	// Headers every POS client needs regardless of configuration
	requiredCORSHeaders = []string{"Authorization", "Content-Type", IdempotencyKeyHeader}
)

// CORSConfigFrom builds the gin-contrib/cors settings for the billing API.
// A single "*" origin allows any origin without credentials.
func CORSConfigFrom(cfg *config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowOrigins:  orDefault(cfg.AllowedOrigins, defaultCORSOrigins),
		AllowMethods:  orDefault(cfg.AllowedMethods, defaultCORSMethods),
		AllowHeaders:  withRequired(orDefault(cfg.AllowedHeaders, defaultCORSHeaders), requiredCORSHeaders),
		ExposeHeaders: []string{"Content-Length", "X-Request-ID", "X-Idempotency-Replayed"},
		MaxAge:        12 * time.Hour,
	}

	if len(out.AllowOrigins) == 1 && out.AllowOrigins[0] == "*" {
		out.AllowOrigins = nil
		out.AllowAllOrigins = true
		return out
	}

	out.AllowCredentials = true
	return out
}

// CORSMiddleware creates a CORS middleware with the provided configuration
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	return cors.New(CORSConfigFrom(cfg))
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return append([]string(nil), fallback...)
	}
	return values
}

func withRequired(headers, required []string) []string {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[strings.ToLower(h)] = true
	}
	for _, h := range required {
		if !seen[strings.ToLower(h)] {
			headers = append(headers, h)
		}
	}
	return headers
}
