package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the web front-end.
// All values are loaded from environment variables to keep
// deployment configuration external to the binary.
type Config struct {
	Address    string // Listen address (CAFE_LISTEN_ADDR)
	ServiceURL string // Base URL of the reservation service (CAFE_API_URL)
	LogLevel   string // Logger level (CAFE_LOG_LEVEL)
}

// Load reads configuration from the environment, after loading a local
// .env file if one exists. Missing values fall back to development
// defaults so a bare `go run .` works against a local service.
func Load() *Config {
	// A missing .env is fine — production sets real environment variables
	_ = godotenv.Load()

	return &Config{
		Address:    getEnv("CAFE_LISTEN_ADDR", ":8000"),
		ServiceURL: getEnv("CAFE_API_URL", "http://localhost:5000"),
		LogLevel:   getEnv("CAFE_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
