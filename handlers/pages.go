package handlers

import (
	"strconv"

	"cafefausse/models"
	"cafefausse/views/components"
	"cafefausse/views/pages"

	"github.com/rohanthewiz/rweb"
)

// Home renders the landing page.
func Home(c rweb.Context) error {
	return c.WriteHTML(pages.RenderHome(components.NewsletterState{}))
}

// About renders the story page.
func About(c rweb.Context) error {
	return c.WriteHTML(pages.RenderAbout(components.NewsletterState{}))
}

// Menu renders the menu page from the content registry.
func Menu(c rweb.Context) error {
	return c.WriteHTML(pages.RenderMenu(components.NewsletterState{}))
}

// Gallery renders the gallery page. The `open` query parameter opens the
// lightbox on one item; unknown or absent IDs leave it closed.
func Gallery(c rweb.Context) error {
	var lb models.Lightbox
	if openStr := c.Request().QueryParam("open"); openStr != "" {
		if id, err := strconv.Atoi(openStr); err == nil {
			if item, ok := models.GalleryItemByID(id); ok {
				lb.Open(item)
			}
		}
	}
	return c.WriteHTML(pages.RenderGallery(lb, components.NewsletterState{}))
}
