package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testClock() Clock {
	return FixedClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC))
}

func TestNewReservationFormDefaults(t *testing.T) {
	f := NewReservationForm(testClock())

	if f.Guests != "2" {
		t.Errorf("default guests should be 2, got %s", f.Guests)
	}
	if f.Name != "" || f.Email != "" || f.Phone != "" || f.TimeSlot != "" || f.SpecialRequests != "" {
		t.Error("all other fields should start empty")
	}
}

func TestSetDateThenTimeComposesSlot(t *testing.T) {
	f := NewReservationForm(testClock())
	f.SetDate("2025-06-01")
	f.SetTime("19:30")

	if f.TimeSlot != "2025-06-01T19:30" {
		t.Errorf("expected 2025-06-01T19:30, got %s", f.TimeSlot)
	}
}

func TestSetTimeThenDateComposesSlot(t *testing.T) {
	f := NewReservationForm(testClock())
	f.SetTime("19:30")
	f.SetDate("2025-06-01")

	if f.TimeSlot != "2025-06-01T19:30" {
		t.Errorf("composition should not depend on edit order, got %s", f.TimeSlot)
	}
}

func TestSetDateDefaultsTime(t *testing.T) {
	f := NewReservationForm(testClock())
	f.SetDate("2025-06-01")

	if f.TimeSlot != "2025-06-01T18:00" {
		t.Errorf("date-only edit should assume 18:00, got %s", f.TimeSlot)
	}
}

func TestSetTimeDefaultsDate(t *testing.T) {
	f := NewReservationForm(testClock())
	f.SetTime("20:00")

	// First bookable date for the fixed clock is tomorrow
	if f.TimeSlot != "2025-05-21T20:00" {
		t.Errorf("time-only edit should assume the first bookable date, got %s", f.TimeSlot)
	}
}

func TestSetDatePreservesChosenTime(t *testing.T) {
	f := NewReservationForm(testClock())
	f.SetDate("2025-06-01")
	f.SetTime("21:30")
	f.SetDate("2025-06-05")

	if f.TimeSlot != "2025-06-05T21:30" {
		t.Errorf("re-picking the date must keep the chosen time, got %s", f.TimeSlot)
	}
}

func TestDateAndTimeAccessors(t *testing.T) {
	f := NewReservationForm(testClock())
	if f.Date() != "" || f.Time() != "" {
		t.Error("empty slot should split into empty halves")
	}

	f.SetField("time_slot", "2025-06-01T18:30")
	if f.Date() != "2025-06-01" {
		t.Errorf("unexpected date part: %s", f.Date())
	}
	if f.Time() != "18:30" {
		t.Errorf("unexpected time part: %s", f.Time())
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		label string
		name  string
		email string
		slot  string
	}{
		{"missing name", "", "jane@example.com", "2025-06-01T18:00"},
		{"missing email", "Jane Doe", "", "2025-06-01T18:00"},
		{"missing slot", "Jane Doe", "jane@example.com", ""},
	}

	for _, tc := range cases {
		f := NewReservationForm(testClock())
		f.Name = tc.name
		f.Email = tc.email
		f.TimeSlot = tc.slot

		if msg := f.Validate(); msg != MsgMissingFields {
			t.Errorf("%s: expected %q, got %q", tc.label, MsgMissingFields, msg)
		}
	}
}

func TestValidateEmailShape(t *testing.T) {
	f := NewReservationForm(testClock())
	f.Name = "Jane Doe"
	f.Email = "not-an-email"
	f.SetDate("2025-06-01")

	if msg := f.Validate(); msg == "" {
		t.Error("malformed email should fail validation")
	}

	f.Email = "jane@example.com"
	if msg := f.Validate(); msg != "" {
		t.Errorf("valid form should pass, got %q", msg)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	f := NewReservationForm(testClock())
	f.SetField("name", "Jane Doe")
	f.SetField("email", "jane@example.com")
	f.SetField("guests", "6")
	f.SetField("special_requests", "window seat")
	f.SetDate("2025-06-01")

	f.Reset()

	if f.Name != "" || f.Email != "" || f.TimeSlot != "" || f.SpecialRequests != "" {
		t.Error("reset should clear text fields and the time slot")
	}
	if f.Guests != "2" {
		t.Errorf("reset should restore guests to 2, got %s", f.Guests)
	}

	// The clock survives the reset — time-only edits still work
	f.SetTime("19:00")
	if f.TimeSlot != "2025-05-21T19:00" {
		t.Errorf("clock should survive reset, got %s", f.TimeSlot)
	}
}

func TestRequestMarshalsGuestsAsNumber(t *testing.T) {
	f := NewReservationForm(testClock())
	f.Name = "Jane Doe"
	f.Email = "jane@example.com"
	f.SetField("time_slot", "2025-06-01T18:00")

	body, err := json.Marshal(f.Request())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"guests":2`) {
		t.Errorf("guests should marshal as a number: %s", body)
	}
	if !strings.Contains(string(body), `"time_slot":"2025-06-01T18:00"`) {
		t.Errorf("time slot missing from payload: %s", body)
	}
}

func TestRequestMarshalsLargePartySentinel(t *testing.T) {
	f := NewReservationForm(testClock())
	f.SetField("guests", LargePartyGuests)

	body, err := json.Marshal(f.Request())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"guests":"10+"`) {
		t.Errorf("large party should marshal as the string sentinel: %s", body)
	}
}
