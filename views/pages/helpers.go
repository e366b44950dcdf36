package pages

import (
	"fmt"
	"time"
)

// dateLabel turns an ISO date into the label shown in the date selector,
// e.g. "2025-06-01" -> "Sun, Jun 1". The ISO form stays in the option value.
func dateLabel(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Mon, Jan 2")
}

// timeLabel turns a 24-hour seating into its 12-hour label,
// e.g. "17:00" -> "5:00 PM".
func timeLabel(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// price formats a menu price for display.
func price(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
