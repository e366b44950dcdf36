package pages

import (
	"cafefausse/views"
	"cafefausse/views/components"

	"github.com/rohanthewiz/element"
)

// RenderAbout renders the story page.
func RenderAbout(newsletter components.NewsletterState) string {
	return views.BaseLayout(views.PageData{
		Title:      "Our Story",
		ActivePath: "/about",
		Newsletter: newsletter,
	}, AboutContent{})
}

type founder struct {
	Name string
	Bio  string
}

var founders = []founder{
	{
		Name: "Chef Antonio Rossi",
		Bio: "With over 20 years of culinary experience trained in Milan, " +
			"Chef Rossi brings authentic Italian techniques combined with " +
			"innovative flavor combinations that surprise and delight our guests.",
	},
	{
		Name: "Maria Lopez",
		Bio: "A visionary restaurateur with a passion for creating memorable " +
			"experiences. Maria ensures every aspect of Café Fausse, from " +
			"ambiance to service, exceeds expectations.",
	},
}

type commitment struct {
	Heading string
	Text    string
}

var commitments = []commitment{
	{Heading: "🌱 Locally Sourced", Text: "We partner with local farms and producers to bring you the freshest ingredients."},
	{Heading: "✨ Unforgettable Dining", Text: "Every dish is crafted to create lasting memories and exceptional flavors."},
	{Heading: "🍝 Traditional Excellence", Text: "Honoring Italian culinary traditions while embracing modern techniques."},
}

// AboutContent is the story page body.
type AboutContent struct{}

func (a AboutContent) Render(b *element.Builder) (x any) {
	b.DivClass("about-page").R(
		b.DivClass("about-hero").R(
			b.H2().T("Our Story"),
			b.P().T("Where tradition meets innovation"),
		),
		b.DivClass("about-content").R(
			b.DivClass("about-history").R(
				b.H3().T("About Café Fausse"),
				b.P().T("Founded in 2010 by Chef Antonio Rossi and restaurateur Maria Lopez, "+
					"Café Fausse blends traditional Italian flavors with modern culinary innovation. "+
					"Our mission is to provide an unforgettable dining experience that reflects "+
					"both quality and creativity."),
			),
			b.DivClass("founders-grid").R(
				b.Wrap(func() {
					element.ForEach(founders, func(f founder) {
						b.DivClass("founder-card").R(
							b.DivClass("founder-image-placeholder").R(
								b.Span().T(f.Name),
							),
							b.H3().T(f.Name),
							b.P().T(f.Bio),
						)
					})
				}),
			),
			b.DivClass("mission-section").R(
				b.H3().T("Our Commitment"),
				b.DivClass("commitment-points").R(
					b.Wrap(func() {
						element.ForEach(commitments, func(c commitment) {
							b.DivClass("point").R(
								b.H3().T(c.Heading),
								b.P().T(c.Text),
							)
						})
					}),
				),
			),
		),
	)
	return
}
