package schedule

import (
	"testing"
	"time"

	"aide/models"
)

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.RecurrenceDescriptor
		ok    bool
	}{
		{
			name:  "fixed date",
			input: "01-21",
			want:  models.RecurrenceDescriptor{Month: time.January, Day: 21},
			ok:    true,
		},
		{
			name:  "fixed date end of month",
			input: "12-31",
			want:  models.RecurrenceDescriptor{Month: time.December, Day: 31},
			ok:    true,
		},
		{
			name:  "floating second sunday",
			input: "05-2nd-sun",
			want:  models.RecurrenceDescriptor{Month: time.May, Ordinal: 2, Weekday: time.Sunday, Floating: true},
			ok:    true,
		},
		{
			name:  "floating first monday",
			input: "09-1st-mon",
			want:  models.RecurrenceDescriptor{Month: time.September, Ordinal: 1, Weekday: time.Monday, Floating: true},
			ok:    true,
		},
		{
			name:  "ordinal suffix not grammar checked",
			input: "06-2th-fri",
			want:  models.RecurrenceDescriptor{Month: time.June, Ordinal: 2, Weekday: time.Friday, Floating: true},
			ok:    true,
		},
		{name: "month out of range", input: "13-01"},
		{name: "month zero", input: "00-15"},
		{name: "day out of range", input: "01-32"},
		{name: "ordinal out of range", input: "05-6th-sun"},
		{name: "unknown weekday", input: "05-2nd-xyz"},
		{name: "missing ordinal suffix", input: "05-2-sun"},
		{name: "single digit month", input: "5-21"},
		{name: "full date", input: "2025-01-21"},
		{name: "empty", input: ""},
		{name: "garbage", input: "next tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRecurrence(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseRecurrence(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseRecurrence(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveRecurrenceDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		year  int
		want  string // YYYY-MM-DD, empty means absent
	}{
		{name: "fixed january date", input: "01-21", year: 2025, want: "2025-01-21"},
		{name: "feb 30 does not exist", input: "02-30", year: 2025, want: ""},
		{name: "feb 29 non-leap year", input: "02-29", year: 2025, want: ""},
		{name: "feb 29 leap year", input: "02-29", year: 2024, want: "2024-02-29"},
		{name: "mothers day 2025", input: "05-2nd-sun", year: 2025, want: "2025-05-11"},
		{name: "fathers day 2025", input: "06-3rd-sun", year: 2025, want: "2025-06-15"},
		{name: "thanksgiving 2025", input: "11-4th-thu", year: 2025, want: "2025-11-27"},
		{name: "fifth sunday exists", input: "06-5th-mon", year: 2025, want: "2025-06-30"},
		{name: "fifth sunday exists in june", input: "06-5th-sun", year: 2025, want: "2025-06-29"},
		{name: "fifth sunday missing in may", input: "05-5th-sun", year: 2025, want: ""},
		{name: "first of month matches weekday", input: "06-1st-sun", year: 2025, want: "2025-06-01"},
		{name: "april 31 does not exist", input: "04-31", year: 2025, want: ""},
		{name: "unparseable string", input: "someday", year: 2025, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveRecurrenceDate(tt.input, tt.year, time.UTC)
			if tt.want == "" {
				if ok {
					t.Fatalf("ResolveRecurrenceDate(%q, %d) = %v, want absent", tt.input, tt.year, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ResolveRecurrenceDate(%q, %d) absent, want %s", tt.input, tt.year, tt.want)
			}
			if gotStr := got.Format("2006-01-02"); gotStr != tt.want {
				t.Errorf("ResolveRecurrenceDate(%q, %d) = %s, want %s", tt.input, tt.year, gotStr, tt.want)
			}
		})
	}
}

// Resolved floating dates must land on the requested weekday in the
// requested month, never rolling into the next one.
func TestResolveDateFloatingStaysInMonth(t *testing.T) {
	for year := 2024; year <= 2027; year++ {
		for month := time.January; month <= time.December; month++ {
			for ordinal := 1; ordinal <= 5; ordinal++ {
				desc := models.RecurrenceDescriptor{
					Month:    month,
					Ordinal:  ordinal,
					Weekday:  time.Wednesday,
					Floating: true,
				}
				got, ok := ResolveDate(desc, year, time.UTC)
				if !ok {
					continue
				}
				if got.Month() != month || got.Year() != year {
					t.Errorf("ResolveDate(%v %d) landed on %v", month, year, got)
				}
				if got.Weekday() != time.Wednesday {
					t.Errorf("ResolveDate(%v %d ordinal %d) weekday = %v", month, year, ordinal, got.Weekday())
				}
			}
		}
	}
}
