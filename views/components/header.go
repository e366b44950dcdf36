package components

import (
	"cafefausse/models"

	"github.com/rohanthewiz/element"
)

// NavLink is one entry in the site navigation.
type NavLink struct {
	Path  string
	Label string
}

// navLinks is the fixed route set, in display order.
var navLinks = []NavLink{
	{Path: "/", Label: "Home"},
	{Path: "/menu", Label: "Menu"},
	{Path: "/reservations", Label: "Reservations"},
	{Path: "/about", Label: "About"},
	{Path: "/gallery", Label: "Gallery"},
}

// Header renders the fixed navigation bar. The link whose path matches
// ActivePath gets the "active" class; app.js adds "scrolled" to the
// header element once the page scrolls past 50px.
type Header struct {
	ActivePath string
}

func (h Header) Render(b *element.Builder) (x any) {
	b.Header("id", "site-header", "class", "header").R(
		b.DivClass("header-content").R(
			b.A("href", "/", "class", "logo").T(models.CafeName),
			b.Nav().R(
				b.UlClass("nav-links").R(
					b.Wrap(func() {
						element.ForEach(navLinks, func(link NavLink) {
							cls := "nav-link"
							if link.Path == h.ActivePath {
								cls = "nav-link active"
							}
							b.Li().R(
								b.A("href", link.Path, "class", cls).T(link.Label),
							)
						})
					}),
				),
			),
		),
	)
	return
}
