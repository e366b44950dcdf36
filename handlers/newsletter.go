package handlers

import (
	"context"
	"strings"

	"cafefausse/models"
	"cafefausse/views/components"
	"cafefausse/views/pages"
	"cafefausse/views/partials"

	"github.com/rohanthewiz/rweb"
)

// SubmitNewsletter handles the footer signup post. The form controller
// validates, calls the service, and maps the outcome; HTMX requests get
// just the message fragment, plain posts a full home page render.
func SubmitNewsletter(c rweb.Context) error {
	form := models.NewsletterForm{Email: strings.TrimSpace(c.Request().FormValue("email"))}
	msg := form.Submit(context.Background(), svc)

	if isHTMX(c) {
		return c.WriteHTML(partials.RenderNewsletterMessage(msg))
	}
	return c.WriteHTML(pages.RenderHome(components.NewsletterState{Email: form.Email, Message: msg}))
}
