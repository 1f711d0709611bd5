package utils

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD string into midnight of that day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ParseClock parses an HH:MM (24-hour) string into hour and minute.
func ParseClock(s string) (int, int, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q (want HH:MM): %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// FormatDate renders a timestamp as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatClock renders a timestamp as a 12-hour clock, e.g. "02:30 PM".
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

// FormatDayHeading renders a timestamp as "Monday, January 2".
func FormatDayHeading(t time.Time) string {
	return t.Format("Monday, January 2")
}

// FormatFullDate renders a timestamp as "Monday, January 2, 2006".
func FormatFullDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
