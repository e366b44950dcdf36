package server

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	// Serve /favicon.ico as an inline SVG so no separate icon file is needed
	const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#2c3e50"/><text x="250" y="320" font-family="Georgia,serif" font-weight="700" font-size="220" fill="#e8c547" text-anchor="middle">CF</text></svg>`

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	// Serve static files at /static/ path
	s.Get("/static/*", func(c rweb.Context) error {
		// Strip /static/ prefix and serve from embedded FS
		path := c.Request().Path()[8:]

		file, err := staticFS.Open(path)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}
		defer file.Close()

		stat, err := file.Stat()
		if err != nil {
			c.SetStatus(http.StatusInternalServerError)
			return nil
		}
		if stat.IsDir() {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		if contentType := getContentType(path); contentType != "" {
			c.Response().SetHeader("Content-Type", contentType)
		}
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")

		content, err := io.ReadAll(file)
		if err != nil {
			c.SetStatus(http.StatusInternalServerError)
			return nil
		}
		return c.Bytes(content)
	})
}

// getContentType returns the content type based on file extension
func getContentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".css"):
		return "text/css"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return "image/jpeg"
	default:
		return ""
	}
}
