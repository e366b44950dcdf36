package server

import (
	"cafefausse/config"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// New creates and configures the RWeb server.
func New(cfg *config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: true,
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // CORS headers
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(RequestLogMiddleware)      // Request id + timing

	// Setup routes
	setupRoutes(s)

	// Serve static files from the embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server.
func Run(s *rweb.Server) error {
	logger.Info("Café Fausse web server starting")
	return s.Run()
}
