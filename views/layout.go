package views

import (
	"cafefausse/models"
	"cafefausse/views/components"

	"github.com/rohanthewiz/element"
)

// PageData carries what every page render needs besides its own content:
// the title, which nav link is active, and the footer newsletter state.
type PageData struct {
	Title      string
	ActivePath string
	Newsletter components.NewsletterState
}

// BaseLayout wraps page content in the full HTML document: head, fixed
// header, main area, and the footer with its newsletter form.
func BaseLayout(d PageData, content element.Component) string {
	title := d.Title
	if title == "" {
		title = models.CafeName
	}

	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			b.Link("rel", "stylesheet", "href", "/static/css/main.css"),

			// HTMX swaps the form outcome messages in place
			b.Script("src", "https://unpkg.com/htmx.org@1.9.12", "defer").R(),
		),
		b.Body().R(
			element.RenderComponents(b, components.Header{ActivePath: d.ActivePath}),

			b.Main("id", "main-content").R(
				element.RenderComponents(b, content),
			),

			element.RenderComponents(b, components.Footer{Newsletter: d.Newsletter}),

			// Scroll-state toggle and double-submit guard
			b.Script("src", "/static/js/app.js").R(),
		),
	)

	return b.String()
}
