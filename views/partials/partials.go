package partials

import "github.com/rohanthewiz/element"

// RenderNewsletterMessage renders the newsletter outcome fragment that
// HTMX swaps into the footer in place of #newsletter-message.
func RenderNewsletterMessage(msg string) string {
	b := element.NewBuilder()

	b.Div("id", "newsletter-message").R(
		b.PClass("newsletter-message").T(msg),
	)

	return b.String()
}
