package pages

import (
	"strconv"
	"strings"

	"cafefausse/models"
	"cafefausse/views"
	"cafefausse/views/components"

	"github.com/rohanthewiz/element"
)

// RenderReservations renders the full reservations page: sidebar cards
// plus the booking form.
func RenderReservations(form *models.ReservationForm, message string, dates, times []string, newsletter components.NewsletterState) string {
	return views.BaseLayout(views.PageData{
		Title:      "Make a Reservation",
		ActivePath: "/reservations",
		Newsletter: newsletter,
	}, ReservationsContent{
		Section: ReservationSection{Form: form, Message: message, Dates: dates, Times: times},
	})
}

// RenderReservationSection renders just the form section, for HTMX swaps
// after a submit.
func RenderReservationSection(form *models.ReservationForm, message string, dates, times []string) string {
	b := element.NewBuilder()
	element.RenderComponents(b, ReservationSection{Form: form, Message: message, Dates: dates, Times: times})
	return b.String()
}

// ReservationsContent is the page body around the form section.
type ReservationsContent struct {
	Section ReservationSection
}

type sidebarCard struct {
	Icon    string
	Heading string
	Lines   []string
}

var sidebarCards = []sidebarCard{
	{Icon: "📞", Heading: "Need Immediate Assistance?", Lines: []string{"Call us directly at", models.CafePhone}},
	{Icon: "⏰", Heading: "Dining Hours", Lines: []string{models.HoursWeekdays, models.HoursSunday}},
	{Icon: "🎉", Heading: "Special Occasions?", Lines: []string{"Mention any celebrations in the special requests field for a complimentary surprise."}},
}

func (r ReservationsContent) Render(b *element.Builder) (x any) {
	b.DivClass("reservations-page").R(
		b.DivClass("page-header").R(
			b.H1Class("page-title").T("Make a Reservation"),
			b.PClass("page-subtitle").T("Secure your table for an unforgettable dining experience"),
		),
		b.DivClass("reservation-layout").R(
			b.DivClass("reservation-sidebar").R(
				b.Wrap(func() {
					element.ForEach(sidebarCards, func(card sidebarCard) {
						b.DivClass("sidebar-card").R(
							b.DivClass("card-icon").T(card.Icon),
							b.H3().T(card.Heading),
							b.Wrap(func() {
								element.ForEach(card.Lines, func(line string) {
									b.P().T(line)
								})
							}),
						)
					})
				}),
			),
			b.DivClass("reservation-main").R(
				element.RenderComponents(b, r.Section),
			),
		),
	)
	return
}

// ReservationSection is the booking form and its outcome message. It is
// rendered both inside the full page and alone as an HTMX fragment, so it
// carries its own wrapper id for the swap target.
type ReservationSection struct {
	Form    *models.ReservationForm
	Message string
	Dates   []string
	Times   []string
}

func (s ReservationSection) Render(b *element.Builder) (x any) {
	f := s.Form

	b.Div("id", "reservation-form-section").R(
		b.Form("method", "post", "action", "/reservations",
			"class", "reservation-form",
			"hx-post", "/reservations",
			"hx-target", "#reservation-form-section",
			"hx-swap", "outerHTML").R(

			// The previously composed slot rides along so a partial edit
			// of date or time keeps the other half
			b.Input("type", "hidden", "name", "time_slot", "value", f.TimeSlot),

			b.DivClass("form-section").R(
				b.H3Class("section-title").T("Personal Information"),
				b.DivClass("form-grid").R(
					b.DivClass("form-group full-width").R(
						b.Label("for", "name").T("Full Name *"),
						b.Input("type", "text", "id", "name", "name", "name",
							"value", f.Name,
							"class", "form-control",
							"placeholder", "Enter your full name"),
					),
					b.DivClass("form-group").R(
						b.Label("for", "email").T("Email Address *"),
						b.Input("type", "email", "id", "email", "name", "email",
							"value", f.Email,
							"class", "form-control",
							"placeholder", "your.email@example.com"),
					),
					b.DivClass("form-group").R(
						b.Label("for", "phone").T("Phone Number"),
						b.Input("type", "tel", "id", "phone", "name", "phone",
							"value", f.Phone,
							"class", "form-control",
							"placeholder", "(555) 123-4567"),
					),
				),
			),

			b.DivClass("form-section").R(
				b.H3Class("section-title").T("Reservation Details"),
				b.DivClass("form-grid").R(
					b.DivClass("form-group").R(
						b.Label("for", "guests").T("Number of Guests *"),
						s.renderGuestSelect(b),
					),
					b.DivClass("form-group").R(
						b.Label("for", "date").T("Date *"),
						s.renderDateSelect(b),
					),
					b.DivClass("form-group").R(
						b.Label("for", "time").T("Time *"),
						s.renderTimeSelect(b),
					),
				),
			),

			b.DivClass("form-section").R(
				b.H3Class("section-title").T("Additional Information"),
				b.DivClass("form-group full-width").R(
					b.Label("for", "special_requests").T("Special Requests"),
					b.TextArea("id", "special_requests", "name", "special_requests",
						"class", "form-control",
						"rows", "4",
						"placeholder", "Any dietary restrictions, allergies, or special occasion notes...").T(f.SpecialRequests),
				),
			),

			b.Button("type", "submit", "class", "submit-button").T("Reserve Your Table"),

			s.renderMessage(b),
		),
	)
	return
}

func (s ReservationSection) renderGuestSelect(b *element.Builder) (x any) {
	b.Select("id", "guests", "name", "guests", "class", "form-control").R(
		b.Wrap(func() {
			for n := 1; n <= 8; n++ {
				value := strconv.Itoa(n)
				label := value + " People"
				if n == 1 {
					label = "1 Person"
				}
				s.option(b, value, label, s.Form.Guests == value)
			}
			s.option(b, models.LargePartyGuests, "10+ People (Large Party)", s.Form.Guests == models.LargePartyGuests)
		}),
	)
	return
}

func (s ReservationSection) renderDateSelect(b *element.Builder) (x any) {
	b.Select("id", "date", "name", "date", "class", "form-control").R(
		s.option(b, "", "Select a date", s.Form.Date() == ""),
		b.Wrap(func() {
			element.ForEach(s.Dates, func(d string) {
				s.option(b, d, dateLabel(d), s.Form.Date() == d)
			})
		}),
	)
	return
}

func (s ReservationSection) renderTimeSelect(b *element.Builder) (x any) {
	b.Select("id", "time", "name", "time", "class", "form-control").R(
		s.option(b, "", "Select a time", s.Form.Time() == ""),
		b.Wrap(func() {
			element.ForEach(s.Times, func(t string) {
				s.option(b, t, timeLabel(t), s.Form.Time() == t)
			})
		}),
	)
	return
}

func (s ReservationSection) option(b *element.Builder, value, label string, selected bool) (x any) {
	if selected {
		b.Option("value", value, "selected", "selected").T(label)
	} else {
		b.Option("value", value).T(label)
	}
	return
}

func (s ReservationSection) renderMessage(b *element.Builder) (x any) {
	if s.Message == "" {
		return
	}

	cls := "message success"
	if strings.HasPrefix(s.Message, "Error:") ||
		s.Message == models.MsgMissingFields ||
		s.Message == "Please enter a valid email address." {
		cls = "message error"
	}
	b.Div("class", cls).T(s.Message)
	return
}
