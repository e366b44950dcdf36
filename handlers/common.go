package handlers

import (
	"net/http"

	"cafefausse/models"

	"github.com/rohanthewiz/rweb"
)

// Package-level collaborators, wired once at startup.
var (
	svc *models.ServiceClient
	clk models.Clock = models.SystemClock()
)

// Init stores the reservation service client for the form handlers.
func Init(client *models.ServiceClient) {
	svc = client
}

// isHTMX reports whether the request came from an HTMX form swap, in
// which case handlers answer with a fragment instead of a full page.
func isHTMX(c rweb.Context) bool {
	return c.Request().Header("HX-Request") == "true"
}

// HealthCheck returns the health status of the application.
func HealthCheck(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "cafefausse-web",
	})
}

// NotFound handles unknown routes.
func NotFound(c rweb.Context) error {
	c.SetStatus(http.StatusNotFound)
	return c.WriteHTML("<h1>404 - Page Not Found</h1>")
}
