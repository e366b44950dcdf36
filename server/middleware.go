package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, HX-Request")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// HTMX is loaded from unpkg; everything else is same-origin
	csp := []string{
		"default-src 'self'",
		"script-src 'self' https://unpkg.com",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// RequestLogMiddleware tags each request with an id and logs timing
func RequestLogMiddleware(c rweb.Context) error {
	start := time.Now()
	reqID := uuid.NewString()
	c.Set("request_id", reqID)

	err := c.Next()

	logger.Debug("Request completed",
		"request_id", reqID,
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start).String(),
		"error", err,
	)

	return err
}
