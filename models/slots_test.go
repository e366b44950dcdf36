package models

import (
	"slices"
	"testing"
	"time"
)

func TestUpcomingDatesWindow(t *testing.T) {
	clk := FixedClock(time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC))

	dates := slices.Collect(UpcomingDates(clk))

	if len(dates) != 14 {
		t.Fatalf("expected 14 dates, got %d", len(dates))
	}
	if dates[0] != "2025-05-21" {
		t.Errorf("first date should be tomorrow, got %s", dates[0])
	}
	if dates[13] != "2025-06-03" {
		t.Errorf("last date should be 2025-06-03, got %s", dates[13])
	}

	for i, d := range dates {
		if d == "2025-05-20" {
			t.Error("window must not include today")
		}
		if i > 0 && dates[i-1] >= d {
			t.Errorf("dates out of order: %s before %s", dates[i-1], d)
		}
	}
}

func TestUpcomingDatesRestartable(t *testing.T) {
	clk := FixedClock(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
	seq := UpcomingDates(clk)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Error("ranging twice over the same sequence should yield the same dates")
	}
}

func TestUpcomingDatesCrossesMonthBoundary(t *testing.T) {
	clk := FixedClock(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	dates := slices.Collect(UpcomingDates(clk))

	if dates[0] != "2025-02-01" {
		t.Errorf("expected 2025-02-01, got %s", dates[0])
	}
}

func TestFirstUpcomingDate(t *testing.T) {
	clk := FixedClock(time.Date(2025, 5, 20, 23, 59, 0, 0, time.UTC))
	if got := FirstUpcomingDate(clk); got != "2025-05-21" {
		t.Errorf("expected 2025-05-21, got %s", got)
	}
}

func TestDiningTimes(t *testing.T) {
	times := slices.Collect(DiningTimes())

	if len(times) != 11 {
		t.Fatalf("expected 11 seatings, got %d", len(times))
	}
	if times[0] != "17:00" {
		t.Errorf("first seating should be 17:00, got %s", times[0])
	}
	if times[10] != "22:00" {
		t.Errorf("last seating should be 22:00, got %s", times[10])
	}

	for i := 1; i < len(times); i++ {
		if times[i-1] >= times[i] {
			t.Errorf("seatings out of order: %s before %s", times[i-1], times[i])
		}
	}
}
