package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	got, err := ParseDate("2025-06-10", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 0 || got.Location() != loc {
		t.Errorf("ParseDate = %v, want midnight in %v", got, loc)
	}

	for _, bad := range []string{"", "06-10", "2025/06/10", "2025-13-01"} {
		if _, err := ParseDate(bad, loc); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 14 || m != 30 {
		t.Errorf("ParseClock = %d:%d, want 14:30", h, m)
	}

	for _, bad := range []string{"", "2:30 PM", "25:00", "14:65"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) should fail", bad)
		}
	}
}

func TestFormatting(t *testing.T) {
	ts := time.Date(2025, time.June, 10, 14, 5, 0, 0, time.UTC)

	if got := FormatDate(ts); got != "2025-06-10" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatClock(ts); got != "02:05 PM" {
		t.Errorf("FormatClock = %q", got)
	}
	if got := FormatDayHeading(ts); got != "Tuesday, June 10" {
		t.Errorf("FormatDayHeading = %q", got)
	}
	if got := FormatFullDate(ts); got != "Tuesday, June 10, 2025" {
		t.Errorf("FormatFullDate = %q", got)
	}
}
