package models

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/rohanthewiz/logger"
)

// emailPattern is deliberately loose: non-whitespace local part, "@",
// non-whitespace domain, ".", non-whitespace TLD. No mailbox verification.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultGuestCount preselects the most common party size.
const DefaultGuestCount = "2"

// LargePartyGuests is the sentinel for parties too big for the form's
// numeric range; the service receives it as the literal string "10+".
const LargePartyGuests = "10+"

// MsgMissingFields is shown when a required reservation field is empty.
const MsgMissingFields = "Please fill in all required fields."

// MsgReservationUnavailable is the degrade-gracefully fallback when the
// reservation service cannot be reached. No automatic retry happens —
// the guest is asked to try again or call.
const MsgReservationUnavailable = "Unable to process reservation. Please try again or call us directly."

// ReservationForm holds the reservation fields as the guest edits them.
// TimeSlot is a single combined "YYYY-MM-DDTHH:MM" string even though the
// date and time are chosen through two independent selectors — SetDate and
// SetTime each rewrite only their half and preserve the other.
type ReservationForm struct {
	Name            string
	Email           string
	Phone           string
	TimeSlot        string
	Guests          string
	SpecialRequests string

	clock Clock
}

// NewReservationForm returns a form at its initial defaults.
func NewReservationForm(clk Clock) *ReservationForm {
	return &ReservationForm{Guests: DefaultGuestCount, clock: clk}
}

// SetField overwrites a single named field. No validation happens here;
// Validate runs once at submit time.
func (f *ReservationForm) SetField(name, value string) {
	switch name {
	case "name":
		f.Name = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "time_slot":
		f.TimeSlot = value
	case "guests":
		f.Guests = value
	case "special_requests":
		f.SpecialRequests = value
	}
}

// SetDate replaces the date half of the time slot, keeping whatever time
// the guest already picked (or 18:00 if none yet).
func (f *ReservationForm) SetDate(date string) {
	timePart := defaultDiningTime
	if _, t, found := strings.Cut(f.TimeSlot, "T"); found && t != "" {
		timePart = t
	}
	f.TimeSlot = date + "T" + timePart
}

// SetTime replaces the time half of the time slot, keeping whatever date
// the guest already picked (or the first bookable date if none yet).
func (f *ReservationForm) SetTime(tm string) {
	datePart, _, _ := strings.Cut(f.TimeSlot, "T")
	if datePart == "" {
		datePart = FirstUpcomingDate(f.clock)
	}
	f.TimeSlot = datePart + "T" + tm
}

// Date returns the date half of the time slot, or "" if none chosen.
func (f *ReservationForm) Date() string {
	d, _, _ := strings.Cut(f.TimeSlot, "T")
	return d
}

// Time returns the time half of the time slot, or "" if none chosen.
func (f *ReservationForm) Time() string {
	_, t, _ := strings.Cut(f.TimeSlot, "T")
	return t
}

// Validate checks the required fields. It returns a user-facing message,
// or "" when the form is ready to submit. Nothing is sent to the service
// until this returns clean.
func (f *ReservationForm) Validate() string {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || f.TimeSlot == "" {
		return MsgMissingFields
	}
	if !emailPattern.MatchString(f.Email) {
		return "Please enter a valid email address."
	}
	return ""
}

// Reset returns every field to its initial default after a confirmed
// reservation.
func (f *ReservationForm) Reset() {
	*f = *NewReservationForm(f.clock)
}

// Submit validates the form and, only when it is clean, sends the
// reservation to the service. The returned message is what the guest
// sees: the validation message (no network call made), the service's
// confirmation verbatim (and the form resets to defaults), the service's
// rejection prefixed with "Error:" (fields kept for correction), or the
// unavailable fallback on a transport failure.
func (f *ReservationForm) Submit(ctx context.Context, sc *ServiceClient) string {
	if msg := f.Validate(); msg != "" {
		return msg
	}

	confirmation, err := sc.CreateReservation(ctx, f.Request())
	if err != nil {
		var se *ServiceError
		if errors.As(err, &se) {
			logger.Info("Reservation rejected by service", "status", se.Status, "error", se.Message)
			return "Error: " + se.Message
		}
		logger.LogErr(err, "reservation service unreachable")
		return MsgReservationUnavailable
	}

	f.Reset()
	return confirmation
}

// Request builds the payload for the reservation service.
func (f *ReservationForm) Request() ReservationRequest {
	return ReservationRequest{
		Name:            f.Name,
		Email:           f.Email,
		Phone:           f.Phone,
		TimeSlot:        f.TimeSlot,
		Guests:          GuestCount(f.Guests),
		SpecialRequests: f.SpecialRequests,
	}
}

// GuestCount marshals as a JSON number for ordinary party sizes and as the
// literal string "10+" for large parties, matching the service contract.
type GuestCount string

func (g GuestCount) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(g)); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(g))
}

// ReservationRequest is the JSON body for POST /api/reservations.
type ReservationRequest struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	TimeSlot        string     `json:"time_slot"`
	Guests          GuestCount `json:"guests"`
	SpecialRequests string     `json:"special_requests"`
}
