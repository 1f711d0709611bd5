package schedule

import (
	"errors"
	"testing"
	"time"

	"aide/models"
)

var testDay = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

func window(startHour, endHour int) models.WorkingWindow {
	return models.WorkingWindow{
		Day:       testDay,
		StartHour: startHour,
		EndHour:   endHour,
		Location:  time.UTC,
	}
}

func at(hour, min int) time.Time {
	return time.Date(2025, time.June, 10, hour, min, 0, 0, time.UTC)
}

func iv(startHour, startMin, endHour, endMin int) models.TimeInterval {
	return models.TimeInterval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestFindFreeSlots(t *testing.T) {
	tests := []struct {
		name     string
		window   models.WorkingWindow
		busy     []models.TimeInterval
		duration int
		now      time.Time
		want     []models.TimeInterval
	}{
		{
			name:     "empty calendar yields whole window",
			window:   window(9, 17),
			duration: 60,
			want:     []models.TimeInterval{iv(9, 0, 17, 0)},
		},
		{
			name:     "gaps between meetings",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(9, 0, 10, 0), iv(12, 0, 13, 0)},
			duration: 60,
			want:     []models.TimeInterval{iv(10, 0, 12, 0), iv(13, 0, 17, 0)},
		},
		{
			name:     "remaining gap too small for duration",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(9, 0, 16, 30)},
			duration: 60,
			want:     nil,
		},
		{
			name:     "overlapping meetings merge without spurious gap",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(9, 0, 11, 0), iv(10, 0, 12, 0)},
			duration: 30,
			want:     []models.TimeInterval{iv(12, 0, 17, 0)},
		},
		{
			name:     "contained meeting does not pull the cursor back",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(10, 0, 14, 0), iv(11, 0, 12, 0)},
			duration: 60,
			want:     []models.TimeInterval{iv(9, 0, 10, 0), iv(14, 0, 17, 0)},
		},
		{
			name:     "unsorted input",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(14, 0, 15, 0), iv(9, 30, 10, 30)},
			duration: 60,
			want:     []models.TimeInterval{iv(10, 30, 14, 0), iv(15, 0, 17, 0)},
		},
		{
			name:     "zero-length entries are no-ops",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(10, 0, 10, 0), iv(12, 0, 12, 0)},
			duration: 60,
			want:     []models.TimeInterval{iv(9, 0, 17, 0)},
		},
		{
			name:     "events outside the window are ignored",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(6, 0, 7, 0), iv(18, 0, 19, 0)},
			duration: 60,
			want:     []models.TimeInterval{iv(9, 0, 17, 0)},
		},
		{
			name:     "events straddling the window edges are clipped",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(8, 0, 9, 30), iv(16, 30, 18, 0)},
			duration: 60,
			want:     []models.TimeInterval{iv(9, 30, 16, 30)},
		},
		{
			name:     "now clamps the search start",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(13, 0, 14, 0)},
			duration: 60,
			now:      at(11, 15),
			want:     []models.TimeInterval{iv(11, 15, 13, 0), iv(14, 0, 17, 0)},
		},
		{
			name:     "now before the window has no effect",
			window:   window(9, 17),
			duration: 60,
			now:      at(6, 0),
			want:     []models.TimeInterval{iv(9, 0, 17, 0)},
		},
		{
			name:     "now past the window end yields nothing",
			window:   window(9, 17),
			duration: 30,
			now:      at(18, 0),
			want:     nil,
		},
		{
			name:     "fully booked day",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(9, 0, 17, 0)},
			duration: 30,
			want:     nil,
		},
		{
			name:     "duration longer than the window",
			window:   window(9, 17),
			duration: 9 * 60,
			want:     nil,
		},
		{
			name:     "back to back meetings leave no gap",
			window:   window(9, 12),
			busy:     []models.TimeInterval{iv(9, 0, 10, 0), iv(10, 0, 11, 0)},
			duration: 60,
			want:     []models.TimeInterval{iv(11, 0, 12, 0)},
		},
		{
			name:     "gap exactly the requested duration",
			window:   window(9, 17),
			busy:     []models.TimeInterval{iv(9, 0, 10, 0), iv(11, 0, 17, 0)},
			duration: 60,
			want:     []models.TimeInterval{iv(10, 0, 11, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindFreeSlots(tt.window, tt.busy, tt.duration, tt.now)
			if err != nil {
				t.Fatalf("FindFreeSlots returned error: %v", err)
			}
			assertIntervals(t, got, tt.want)
		})
	}
}

func TestFindFreeSlotsInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		window   models.WorkingWindow
		duration int
	}{
		{name: "zero duration", window: window(9, 17), duration: 0},
		{name: "negative duration", window: window(9, 17), duration: -15},
		{name: "start hour equals end hour", window: window(9, 9), duration: 30},
		{name: "start hour after end hour", window: window(17, 9), duration: 30},
		{name: "negative start hour", window: window(-1, 17), duration: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindFreeSlots(tt.window, nil, tt.duration, time.Time{})
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("FindFreeSlots error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

// Every returned slot must fit the requested duration, never overlap a busy
// interval, and the call must be a pure function of its inputs.
func TestFindFreeSlotsProperties(t *testing.T) {
	busy := []models.TimeInterval{
		iv(9, 45, 10, 15),
		iv(10, 0, 11, 30),
		iv(13, 0, 13, 0),
		iv(15, 50, 16, 20),
	}
	w := window(9, 17)

	first, err := FindFreeSlots(w, busy, 45, time.Time{})
	if err != nil {
		t.Fatalf("FindFreeSlots returned error: %v", err)
	}
	second, err := FindFreeSlots(w, busy, 45, time.Time{})
	if err != nil {
		t.Fatalf("FindFreeSlots returned error: %v", err)
	}
	assertIntervals(t, second, first)

	for _, slot := range first {
		if slot.Duration() < 45*time.Minute {
			t.Errorf("slot %v shorter than requested duration", slot)
		}
		for _, b := range busy {
			if b.IsEmpty() {
				continue
			}
			if slot.Start.Before(b.End) && b.Start.Before(slot.End) {
				t.Errorf("slot %v overlaps busy interval %v", slot, b)
			}
		}
	}
}

// With disjoint sorted busy intervals and a 1-minute duration, the free slots
// and busy intervals together tile the window exactly.
func TestFindFreeSlotsTilesWindow(t *testing.T) {
	busy := []models.TimeInterval{
		iv(9, 30, 10, 0),
		iv(11, 0, 12, 15),
		iv(14, 0, 16, 0),
	}
	w := window(9, 17)

	free, err := FindFreeSlots(w, busy, 1, time.Time{})
	if err != nil {
		t.Fatalf("FindFreeSlots returned error: %v", err)
	}

	var total time.Duration
	for _, slot := range free {
		total += slot.Duration()
	}
	for _, b := range busy {
		total += b.Duration()
	}
	windowStart, windowEnd := w.Bounds()
	if want := windowEnd.Sub(windowStart); total != want {
		t.Errorf("free+busy durations sum to %v, want %v", total, want)
	}
}

func assertIntervals(t *testing.T, got, want []models.TimeInterval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d slots %v", len(got), got, len(want), want)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("slot %d = [%v, %v), want [%v, %v)", i,
				got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}
