// Package schedule holds the pure scheduling computations: free-slot search
// within a day's working hours and yearly recurrence date resolution.
// Everything here is side-effect free and safe for concurrent use.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"aide/models"
)

// ErrInvalidArgument marks a contract violation by the caller: a malformed
// working window or a non-positive duration. It is never returned for bad
// user data, only for bugs in the calling layer.
var ErrInvalidArgument = errors.New("invalid argument")

// FindFreeSlots computes the maximal free intervals within the working window
// that can fit the requested duration.
//
// Busy intervals may arrive unsorted, overlapping, or zero-length; they are
// clipped to the window and merged by the sweep. If now is non-zero and falls
// inside the window (the "today" case), the search starts at now instead of
// the window start, so no returned slot begins in the past. A fully booked
// day yields an empty slice, not an error.
func FindFreeSlots(window models.WorkingWindow, busy []models.TimeInterval, durationMinutes int, now time.Time) ([]models.TimeInterval, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d: %w", durationMinutes, ErrInvalidArgument)
	}
	if window.StartHour < 0 || window.EndHour > 23 || window.StartHour >= window.EndHour {
		return nil, fmt.Errorf("working hours %d-%d: %w", window.StartHour, window.EndHour, ErrInvalidArgument)
	}

	windowStart, windowEnd := window.Bounds()
	duration := time.Duration(durationMinutes) * time.Minute

	cursor := windowStart
	if !now.IsZero() && now.After(cursor) {
		cursor = now
	}

	// Clip to [cursor, windowEnd) and drop intervals that cannot affect the
	// sweep. Zero-length entries vanish here.
	clipped := make([]models.TimeInterval, 0, len(busy))
	for _, iv := range busy {
		start, end := iv.Start, iv.End
		if start.Before(cursor) {
			start = cursor
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		if start.Before(end) {
			clipped = append(clipped, models.TimeInterval{Start: start, End: end})
		}
	}

	// Sort by start ascending, earlier end first on ties. The tie-break only
	// stabilizes output order; the sweep result is the same either way.
	sort.Slice(clipped, func(i, j int) bool {
		if clipped[i].Start.Equal(clipped[j].Start) {
			return clipped[i].End.Before(clipped[j].End)
		}
		return clipped[i].Start.Before(clipped[j].Start)
	})

	var free []models.TimeInterval
	for _, iv := range clipped {
		if !cursor.Add(duration).After(iv.Start) {
			free = append(free, models.TimeInterval{Start: cursor, End: iv.Start})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}

	if !cursor.Add(duration).After(windowEnd) {
		free = append(free, models.TimeInterval{Start: cursor, End: windowEnd})
	}

	return free, nil
}
