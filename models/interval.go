package models

import (
	"fmt"
	"time"
)

// TimeInterval is a half-open time range [Start, End).
// Busy intervals come from the calendar layer; free intervals are produced
// by the slot finder. A well-formed interval always has Start before End.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the interval length.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsEmpty reports whether the interval contains no time at all.
func (iv TimeInterval) IsEmpty() bool {
	return !iv.Start.Before(iv.End)
}

// Label renders the interval as a human-readable clock range, e.g.
// "09:00 AM - 10:30 AM".
func (iv TimeInterval) Label() string {
	return fmt.Sprintf("%s - %s", iv.Start.Format("03:04 PM"), iv.End.Format("03:04 PM"))
}

// WorkingWindow bounds a single day's slot search: the day itself plus the
// working hours within it. StartHour must be strictly before EndHour.
type WorkingWindow struct {
	Day       time.Time      `json:"day"`
	StartHour int            `json:"startHour"` // 0-23
	EndHour   int            `json:"endHour"`   // 0-23
	Location  *time.Location `json:"-"`
}

// Bounds returns the concrete start and end timestamps of the window.
func (w WorkingWindow) Bounds() (time.Time, time.Time) {
	loc := w.Location
	if loc == nil {
		loc = time.Local
	}
	y, m, d := w.Day.In(loc).Date()
	start := time.Date(y, m, d, w.StartHour, 0, 0, 0, loc)
	end := time.Date(y, m, d, w.EndHour, 0, 0, 0, loc)
	return start, end
}
