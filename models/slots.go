package models

import (
	"fmt"
	"iter"
)

const (
	// bookingWindowDays is how far ahead a table may be reserved.
	bookingWindowDays = 14

	// Dining runs from the first to the last seating, in half-hour steps.
	firstSeatingMinute = 17 * 60 // 5:00 PM
	lastSeatingMinute  = 22 * 60 // 10:00 PM

	// defaultDiningTime is assumed when a guest picks a date before a time.
	defaultDiningTime = "18:00"

	dateLayout = "2006-01-02"
)

// UpcomingDates yields the next bookingWindowDays calendar dates strictly
// after today, ascending, as ISO dates (2006-01-02). The sequence is
// restartable — each range re-reads the clock.
func UpcomingDates(clk Clock) iter.Seq[string] {
	return func(yield func(string) bool) {
		today := clk.Now()
		for i := 1; i <= bookingWindowDays; i++ {
			if !yield(today.AddDate(0, 0, i).Format(dateLayout)) {
				return
			}
		}
	}
}

// FirstUpcomingDate returns tomorrow's date — the earliest bookable day.
func FirstUpcomingDate(clk Clock) string {
	return clk.Now().AddDate(0, 0, 1).Format(dateLayout)
}

// DiningTimes yields the bookable seatings as HH:MM strings,
// 17:00 through 22:00 inclusive in 30-minute increments.
func DiningTimes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for m := firstSeatingMinute; m <= lastSeatingMinute; m += 30 {
			if !yield(fmt.Sprintf("%02d:%02d", m/60, m%60)) {
				return
			}
		}
	}
}
