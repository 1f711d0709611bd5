package knowledge

import (
	"testing"
	"time"

	"aide/services/schedule"
)

func TestNextOccurrence(t *testing.T) {
	utc := time.UTC
	now := time.Date(2025, time.June, 10, 15, 0, 0, 0, utc)

	tests := []struct {
		name string
		desc string
		want string
		none bool
	}{
		{name: "later this year", desc: "11-27", want: "2025-11-27"},
		{name: "today counts", desc: "06-10", want: "2025-06-10"},
		{name: "already passed rolls to next year", desc: "01-21", want: "2026-01-21"},
		{name: "floating later this year", desc: "11-4th-thu", want: "2025-11-27"},
		{name: "floating passed rolls over", desc: "05-2nd-sun", want: "2026-05-10"},
		{name: "leap day skips to next leap year or none", desc: "02-29", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := schedule.ParseRecurrence(tt.desc)
			if !ok {
				t.Fatalf("ParseRecurrence(%q) failed to parse", tt.desc)
			}
			got, ok := nextOccurrence(desc, now, utc)
			if tt.none {
				// 2025 and 2026 are not leap years, so Feb 29 has no
				// occurrence within the lookahead.
				if ok {
					t.Fatalf("expected no occurrence, got %s", got.Format("2006-01-02"))
				}
				return
			}
			if !ok {
				t.Fatalf("expected an occurrence, got none")
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("nextOccurrence(%q) = %s, want %s", tt.desc, got.Format("2006-01-02"), tt.want)
			}
		})
	}
}
