package models

import (
	"context"
	"errors"
	"strings"

	"github.com/rohanthewiz/logger"
)

// Messages surfaced by the newsletter signup flow.
const (
	MsgNewsletterEmpty   = "Please enter your email address."
	MsgNewsletterInvalid = "Please enter a valid email address."
	MsgNewsletterThanks  = "🎉 Thank you for subscribing!"

	// MsgNewsletterDemo is shown when the service is unreachable. The
	// signup is treated as a soft success — see DESIGN.md for why this
	// differs from the reservation fallback.
	MsgNewsletterDemo = "Thank you for subscribing! (Demo mode)"
)

// NewsletterForm holds the single email field of the footer signup.
type NewsletterForm struct {
	Email string
}

// Validate returns a user-facing message, or "" when the email is
// acceptable. Only the shape is checked — no DNS or mailbox lookup.
func (f *NewsletterForm) Validate() string {
	if strings.TrimSpace(f.Email) == "" {
		return MsgNewsletterEmpty
	}
	if !emailPattern.MatchString(f.Email) {
		return MsgNewsletterInvalid
	}
	return ""
}

// Submit validates the email and, when it is clean, signs it up with the
// service. Success and the unreachable-service soft success both clear
// the field; a structured rejection keeps it so the guest can correct.
func (f *NewsletterForm) Submit(ctx context.Context, sc *ServiceClient) string {
	if msg := f.Validate(); msg != "" {
		return msg
	}

	if err := sc.SubscribeNewsletter(ctx, f.Email); err != nil {
		var se *ServiceError
		if errors.As(err, &se) {
			logger.Info("Newsletter signup rejected by service", "status", se.Status, "error", se.Message)
			return "Error: " + se.Message
		}
		logger.LogErr(err, "newsletter service unreachable, treating as soft success")
		f.Email = ""
		return MsgNewsletterDemo
	}

	f.Email = ""
	return MsgNewsletterThanks
}
