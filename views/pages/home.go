package pages

import (
	"cafefausse/models"
	"cafefausse/views"
	"cafefausse/views/components"

	"github.com/rohanthewiz/element"
)

// RenderHome renders the landing page. The newsletter state feeds the
// footer form when a signup was just submitted without HTMX.
func RenderHome(newsletter components.NewsletterState) string {
	return views.BaseLayout(views.PageData{
		ActivePath: "/",
		Newsletter: newsletter,
	}, HomeContent{})
}

// HomeContent is the landing page body: hero plus info cards.
type HomeContent struct{}

func (h HomeContent) Render(b *element.Builder) (x any) {
	b.DivClass("homepage").R(
		b.DivClass("hero-section").R(
			b.DivClass("hero-content").R(
				b.PClass("hero-subtitle").T("Fine Dining Experience"),
				b.H1Class("hero-title").T("Where Culinary Art Meets Elegance"),
				b.PClass("hero-description").T(
					"Experience the perfect blend of traditional Italian flavors and modern culinary innovation in an intimate, sophisticated setting."),
				b.A("href", "/reservations", "class", "cta-button").T("Reserve Your Table"),
			),
		),
		b.DivClass("info-cards").R(
			b.DivClass("info-card").R(
				b.H3().T("Visit Us"),
				b.P().R(
					b.SpanClass("strong").T("Address:"),
					b.Br(),
					b.T(models.CafeAddress),
					b.Br(),
					b.T(models.CafeCity),
				),
				b.P().R(
					b.SpanClass("strong").T("Phone:"),
					b.Br(),
					b.T(models.CafePhone),
				),
			),
			b.DivClass("info-card").R(
				b.H3().T("Hours"),
				b.P().T(models.HoursWeekdays),
				b.P().T(models.HoursSunday),
			),
			b.DivClass("info-card").R(
				b.H3().T("Awards"),
				b.Wrap(func() {
					element.ForEach(models.Awards(), func(a models.Award) {
						b.P().T(a.Icon + " " + a.Title + " " + a.Year)
					})
				}),
			),
		),
	)
	return
}
