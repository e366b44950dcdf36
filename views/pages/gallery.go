package pages

import (
	"fmt"

	"cafefausse/models"
	"cafefausse/views"
	"cafefausse/views/components"

	"github.com/rohanthewiz/element"
)

// RenderGallery renders the gallery page. When the lightbox holds an
// opened item the overlay is rendered on top of the grid; clicking the
// backdrop or the close control navigates back to the bare page.
func RenderGallery(lb models.Lightbox, newsletter components.NewsletterState) string {
	return views.BaseLayout(views.PageData{
		Title:      "Gallery",
		ActivePath: "/gallery",
		Newsletter: newsletter,
	}, GalleryContent{
		Items:    models.GalleryItems(),
		Awards:   models.Awards(),
		Reviews:  models.Reviews(),
		Lightbox: lb,
	})
}

// GalleryContent is the gallery page body: awards, reviews, the image
// grid, and the lightbox overlay.
type GalleryContent struct {
	Items    []models.GalleryItem
	Awards   []models.Award
	Reviews  []models.Review
	Lightbox models.Lightbox
}

func (g GalleryContent) Render(b *element.Builder) (x any) {
	b.DivClass("gallery-page").R(
		b.H2().T("Gallery"),

		b.DivClass("awards-section").R(
			b.H3().T("Our Awards & Recognition"),
			b.DivClass("awards-grid").R(
				b.Wrap(func() {
					element.ForEach(g.Awards, func(a models.Award) {
						b.DivClass("award-card").R(
							b.DivClass("trophy").T(a.Icon),
							b.H3().T(a.Title),
							b.P().T(a.Year),
						)
					})
				}),
			),
		),

		b.DivClass("reviews-section").R(
			b.H3().T("What Our Guests Say"),
			b.DivClass("reviews-grid").R(
				b.Wrap(func() {
					element.ForEach(g.Reviews, func(r models.Review) {
						b.DivClass("review-card").R(
							b.P().T("\""+r.Quote+"\""),
							b.PClass("review-source").T("– "+r.Source),
						)
					})
				}),
			),
		),

		b.DivClass("image-gallery").R(
			b.H3().T("Visual Journey"),
			b.DivClass("gallery-grid").R(
				b.Wrap(func() {
					element.ForEach(g.Items, func(item models.GalleryItem) {
						b.A("href", fmt.Sprintf("/gallery?open=%d", item.ID),
							"class", "gallery-item",
							"data-category", string(item.Category)).R(
							b.DivClass("image-placeholder").R(
								b.Span().T(item.Title),
							),
							b.DivClass("image-info").R(
								b.H3().T(item.Title),
								b.P().T(item.Description),
							),
						)
					})
				}),
			),
		),

		g.renderLightbox(b),
	)
	return
}

func (g GalleryContent) renderLightbox(b *element.Builder) (x any) {
	item, open := g.Lightbox.Current()
	if !open {
		return
	}

	// The backdrop link closes the overlay; the inner content does not
	// carry the link, so clicks on it keep the overlay open.
	b.DivClass("lightbox").R(
		b.A("href", "/gallery", "class", "lightbox-backdrop", "aria-label", "Close").R(),
		b.DivClass("lightbox-content").R(
			b.A("href", "/gallery", "class", "close-button").T("×"),
			b.DivClass("lightbox-image-placeholder").R(
				b.Span().T(item.Title),
			),
			b.DivClass("lightbox-info").R(
				b.H3().T(item.Title),
				b.P().T(item.Description),
			),
		),
	)
	return
}
