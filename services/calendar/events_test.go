package calendar

import (
	"strings"
	"testing"
	"time"

	"aide/models"

	gcal "google.golang.org/api/calendar/v3"
)

func at(h, m int) time.Time {
	return time.Date(2025, time.June, 10, h, m, 0, 0, time.UTC)
}

func TestBusyIntervals(t *testing.T) {
	events := []models.CalendarEvent{
		{Summary: "standup", Start: at(12, 0), End: at(12, 30)},
		{Summary: "holiday", Start: at(0, 0), End: at(0, 0).AddDate(0, 0, 1), AllDay: true},
		{Summary: "1:1", Start: at(9, 0), End: at(10, 0)},
		{Summary: "ooo marker", Start: at(14, 0), End: at(14, 0)},
	}

	busy := BusyIntervals(events)
	if len(busy) != 2 {
		t.Fatalf("expected 2 busy intervals, got %d: %+v", len(busy), busy)
	}
	// Sorted by start, all-day and zero-length dropped.
	if !busy[0].Start.Equal(at(9, 0)) || !busy[0].End.Equal(at(10, 0)) {
		t.Errorf("first interval = %v, want 09:00-10:00", busy[0])
	}
	if !busy[1].Start.Equal(at(12, 0)) || !busy[1].End.Equal(at(12, 30)) {
		t.Errorf("second interval = %v, want 12:00-12:30", busy[1])
	}
}

func TestBusyIntervalsEmpty(t *testing.T) {
	if got := BusyIntervals(nil); got != nil {
		t.Errorf("expected nil for no events, got %+v", got)
	}
	allDayOnly := []models.CalendarEvent{{Summary: "conf", AllDay: true, Start: at(0, 0), End: at(0, 0).AddDate(0, 0, 2)}}
	if got := BusyIntervals(allDayOnly); got != nil {
		t.Errorf("all-day events should never be busy, got %+v", got)
	}
}

func TestFromGoogleEvent(t *testing.T) {
	loc := time.UTC

	timed := &gcal.Event{
		Id:      "ev1",
		Summary: "Design review",
		Start:   &gcal.EventDateTime{DateTime: "2025-06-10T14:00:00Z"},
		End:     &gcal.EventDateTime{DateTime: "2025-06-10T15:00:00Z"},
		Attendees: []*gcal.EventAttendee{
			{Email: "a@example.com"},
			{Email: ""},
		},
	}
	got, err := fromGoogleEvent(timed, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AllDay {
		t.Errorf("timed event marked all-day")
	}
	if !got.Start.Equal(at(14, 0)) || !got.End.Equal(at(15, 0)) {
		t.Errorf("times = %v-%v, want 14:00-15:00", got.Start, got.End)
	}
	if len(got.Attendees) != 1 || got.Attendees[0] != "a@example.com" {
		t.Errorf("attendees = %v, want only the non-empty email", got.Attendees)
	}

	allDay := &gcal.Event{
		Id:      "ev2",
		Summary: "Maya's Birthday",
		Start:   &gcal.EventDateTime{Date: "2025-06-10"},
		End:     &gcal.EventDateTime{Date: "2025-06-11"},
	}
	got, err = fromGoogleEvent(allDay, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.AllDay {
		t.Errorf("date-only event should be all-day")
	}
	if !got.Start.Equal(at(0, 0)) {
		t.Errorf("all-day start = %v, want midnight", got.Start)
	}

	bad := &gcal.Event{Id: "ev3", Start: &gcal.EventDateTime{DateTime: "not-a-time"}}
	if _, err := fromGoogleEvent(bad, loc); err == nil {
		t.Errorf("expected error for malformed start time")
	}
}

func TestFormatEvents(t *testing.T) {
	if got := FormatEvents(nil); got != "No events scheduled." {
		t.Errorf("empty listing = %q", got)
	}

	events := []models.CalendarEvent{
		{Summary: "Standup", Start: at(9, 30), End: at(9, 45)},
		{Summary: "Offsite", Start: at(0, 0), End: at(0, 0).AddDate(0, 0, 1), AllDay: true},
		{Summary: "1:1", Start: at(13, 0).AddDate(0, 0, 1), End: at(13, 30).AddDate(0, 0, 1)},
	}
	got := FormatEvents(events)

	for _, want := range []string{
		"Tuesday, June 10",
		"09:30 AM to 09:45 AM: Standup",
		"Offsite (all day)",
		"Wednesday, June 11",
		"01:00 PM to 01:30 PM: 1:1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}
	// Day heading should appear once per day, not per event.
	if strings.Count(got, "Tuesday, June 10") != 1 {
		t.Errorf("duplicate day heading:\n%s", got)
	}
}
