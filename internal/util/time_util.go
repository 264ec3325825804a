package util

import (
	"time"
)

// DateLayout is the wire format for every date in the system - round
// dates, report filters, index lookups.
const DateLayout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t in DateLayout, UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
