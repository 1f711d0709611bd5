package models

import "time"

// RecurrenceDescriptor is a parsed symbolic date that recurs every year.
// Either a fixed calendar day ("01-21") or a floating "Nth weekday of month"
// ("05-2nd-sun"). Floating is true for the latter form, in which case
// Ordinal and Weekday are meaningful and Day is zero.
type RecurrenceDescriptor struct {
	Month    time.Month   `json:"month"`
	Day      int          `json:"day,omitempty"`
	Ordinal  int          `json:"ordinal,omitempty"` // 1-5
	Weekday  time.Weekday `json:"weekday,omitempty"`
	Floating bool         `json:"floating"`
}
