package server

import (
	"cafefausse/handlers"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes.
func setupRoutes(s *rweb.Server) {
	// Page routes - HTML responses
	s.Get("/", handlers.Home)
	s.Get("/menu", handlers.Menu)
	s.Get("/about", handlers.About)
	s.Get("/gallery", handlers.Gallery) // ?open=<id> opens the lightbox
	s.Get("/reservations", handlers.ReservationsPage)

	// Form posts - forwarded to the reservation service
	s.Post("/reservations", handlers.SubmitReservation)
	s.Post("/newsletter", handlers.SubmitNewsletter)

	// Health check endpoint
	s.Get("/health", handlers.HealthCheck)
}
