package schedule

import (
	"regexp"
	"strconv"
	"time"

	"aide/models"
)

// The two accepted descriptor shapes. Ordinal suffixes are accepted without
// grammatical checking ("2th" parses as 2), matching the tolerance needed
// for free-text user input.
var (
	fixedDatePattern    = regexp.MustCompile(`^(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
	floatingDatePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-([1-5])(?:st|nd|rd|th)-(sun|mon|tue|wed|thu|fri|sat)$`)
)

var weekdayAbbrevs = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseRecurrence parses the compact descriptor form: "MM-DD" for a fixed
// yearly date, "MM-{ordinal}{suffix}-{weekday}" (e.g. "05-2nd-sun") for the
// Nth weekday of a month. Returns ok=false for anything else.
func ParseRecurrence(s string) (models.RecurrenceDescriptor, bool) {
	if m := fixedDatePattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return models.RecurrenceDescriptor{Month: time.Month(month), Day: day}, true
	}
	if m := floatingDatePattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		ordinal, _ := strconv.Atoi(m[2])
		return models.RecurrenceDescriptor{
			Month:    time.Month(month),
			Ordinal:  ordinal,
			Weekday:  weekdayAbbrevs[m[3]],
			Floating: true,
		}, true
	}
	return models.RecurrenceDescriptor{}, false
}

// ResolveDate computes the concrete date a descriptor denotes in the given
// year, in loc. Returns ok=false when the date does not exist that year
// (Feb 30, Feb 29 off leap years, a 5th Sunday the month doesn't have).
// It never clamps or rolls into an adjacent month: a missing anniversary
// date must surface as absent, not silently shift.
func ResolveDate(desc models.RecurrenceDescriptor, year int, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	if desc.Floating {
		first := time.Date(year, desc.Month, 1, 0, 0, 0, 0, loc)
		offset := (int(desc.Weekday) - int(first.Weekday()) + 7) % 7
		day := 1 + offset + 7*(desc.Ordinal-1)
		if day > daysInMonth(year, desc.Month) {
			return time.Time{}, false
		}
		return time.Date(year, desc.Month, day, 0, 0, 0, 0, loc), true
	}

	if desc.Day > daysInMonth(year, desc.Month) {
		return time.Time{}, false
	}
	return time.Date(year, desc.Month, desc.Day, 0, 0, 0, 0, loc), true
}

// ResolveRecurrenceDate parses a descriptor string and resolves it for the
// given year. ok=false means either an unparseable string or a date that
// does not exist that year; callers treat both as "ask the user".
func ResolveRecurrenceDate(s string, year int, loc *time.Location) (time.Time, bool) {
	desc, ok := ParseRecurrence(s)
	if !ok {
		return time.Time{}, false
	}
	return ResolveDate(desc, year, loc)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
