package components

import (
	"cafefausse/models"

	"github.com/rohanthewiz/element"
)

// NewsletterState is the footer signup form's current state: the email
// still in the input (cleared after a successful signup) and the outcome
// message from the last submit, if any.
type NewsletterState struct {
	Email   string
	Message string
}

// Footer renders the site footer: contact info, hours, and the
// newsletter signup form.
type Footer struct {
	Newsletter NewsletterState
}

func (f Footer) Render(b *element.Builder) (x any) {
	b.Footer("class", "footer").R(
		b.DivClass("footer-content").R(
			b.DivClass("footer-section").R(
				b.H3().T("Contact Info"),
				b.P().T(models.CafeAddress),
				b.P().T(models.CafeCity),
				b.P().T(models.CafePhone),
			),
			b.DivClass("footer-section").R(
				b.H3().T("Hours"),
				b.P().T(models.HoursWeekdays),
				b.P().T(models.HoursSunday),
			),
			b.DivClass("footer-section").R(
				b.H3().T("Newsletter"),
				b.P().T("Subscribe for updates and special offers"),
				b.Form("method", "post", "action", "/newsletter",
					"class", "newsletter-form",
					"hx-post", "/newsletter",
					"hx-target", "#newsletter-message",
					"hx-swap", "outerHTML").R(
					b.Input("type", "email",
						"name", "email",
						"placeholder", "Enter your email",
						"value", f.Newsletter.Email,
						"required"),
					b.Button("type", "submit").T("Subscribe"),
				),
				f.renderMessage(b),
			),
		),
		b.DivClass("footer-bottom").R(
			b.P().T("&copy; 2025 "+models.CafeName+". All rights reserved."),
		),
	)
	return
}

func (f Footer) renderMessage(b *element.Builder) (x any) {
	// The empty div keeps a stable HTMX swap target on every page
	if f.Newsletter.Message == "" {
		b.Div("id", "newsletter-message").R()
		return
	}
	b.Div("id", "newsletter-message").R(
		b.PClass("newsletter-message").T(f.Newsletter.Message),
	)
	return
}
