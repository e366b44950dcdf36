package handlers

import (
	"context"
	"slices"

	"cafefausse/models"
	"cafefausse/views/components"
	"cafefausse/views/pages"

	"github.com/rohanthewiz/rweb"
)

// ReservationsPage renders the booking form at its defaults.
func ReservationsPage(c rweb.Context) error {
	form := models.NewReservationForm(clk)
	return c.WriteHTML(pages.RenderReservations(form, "",
		slices.Collect(models.UpcomingDates(clk)),
		slices.Collect(models.DiningTimes()),
		components.NewsletterState{}))
}

// SubmitReservation handles the booking form post: rebuild the form from
// the posted values, then let the form controller validate, call the
// service, and map the outcome to a guest-facing message.
func SubmitReservation(c rweb.Context) error {
	form := reservationFormFromRequest(c)
	msg := form.Submit(context.Background(), svc)

	dates := slices.Collect(models.UpcomingDates(clk))
	times := slices.Collect(models.DiningTimes())

	if isHTMX(c) {
		return c.WriteHTML(pages.RenderReservationSection(form, msg, dates, times))
	}
	return c.WriteHTML(pages.RenderReservations(form, msg, dates, times, components.NewsletterState{}))
}

// reservationFormFromRequest rebuilds form state from the posted values.
// The hidden time_slot carries the previously composed value; the date
// and time selectors then each overwrite only their own half, so a
// partial edit preserves the other sub-part.
func reservationFormFromRequest(c rweb.Context) *models.ReservationForm {
	form := models.NewReservationForm(clk)

	for _, field := range []string{"name", "email", "phone", "guests", "special_requests", "time_slot"} {
		if v := c.Request().FormValue(field); v != "" {
			form.SetField(field, v)
		}
	}
	if d := c.Request().FormValue("date"); d != "" {
		form.SetDate(d)
	}
	if t := c.Request().FormValue("time"); t != "" {
		form.SetTime(t)
	}

	return form
}
