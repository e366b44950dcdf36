package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CAFE_LISTEN_ADDR", "")
	t.Setenv("CAFE_API_URL", "")
	t.Setenv("CAFE_LOG_LEVEL", "")

	cfg := Load()

	if cfg.Address != ":8000" {
		t.Errorf("expected default address :8000, got %s", cfg.Address)
	}
	if cfg.ServiceURL != "http://localhost:5000" {
		t.Errorf("unexpected default service url %s", cfg.ServiceURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected default log level %s", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CAFE_LISTEN_ADDR", ":9090")
	t.Setenv("CAFE_API_URL", "https://api.cafefausse.example")

	cfg := Load()

	if cfg.Address != ":9090" {
		t.Errorf("expected :9090, got %s", cfg.Address)
	}
	if cfg.ServiceURL != "https://api.cafefausse.example" {
		t.Errorf("unexpected service url %s", cfg.ServiceURL)
	}
}
