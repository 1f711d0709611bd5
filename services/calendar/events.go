package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"aide/models"
	"aide/utils"

	gcal "google.golang.org/api/calendar/v3"
)

// fromGoogleEvent converts an API event into the app's view of it.
func fromGoogleEvent(ev *gcal.Event, loc *time.Location) (models.CalendarEvent, error) {
	out := models.CalendarEvent{
		ID:       ev.Id,
		Summary:  ev.Summary,
		Details:  ev.Description,
		Location: ev.Location,
		HTMLLink: ev.HtmlLink,
	}
	for _, att := range ev.Attendees {
		if att.Email != "" {
			out.Attendees = append(out.Attendees, att.Email)
		}
	}

	start, allDay, err := parseEventTime(ev.Start, loc)
	if err != nil {
		return out, fmt.Errorf("event %s start: %w", ev.Id, err)
	}
	end, _, err := parseEventTime(ev.End, loc)
	if err != nil {
		return out, fmt.Errorf("event %s end: %w", ev.Id, err)
	}
	out.Start = start
	out.End = end
	out.AllDay = allDay
	return out, nil
}

func parseEventTime(t *gcal.EventDateTime, loc *time.Location) (time.Time, bool, error) {
	if t == nil {
		return time.Time{}, false, nil
	}
	if t.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", t.Date, loc)
		return d, true, err
	}
	ts, err := time.Parse(time.RFC3339, t.DateTime)
	if err != nil {
		return time.Time{}, false, err
	}
	return ts.In(loc), false, nil
}

// BusyIntervals reduces events to the intervals that actually block time.
// All-day events (birthdays, crucial dates) are informational and never
// count as busy. Events the user declined are skipped by the caller's
// query, not here.
func BusyIntervals(events []models.CalendarEvent) []models.TimeInterval {
	var busy []models.TimeInterval
	for _, ev := range events {
		if ev.AllDay {
			continue
		}
		if !ev.End.After(ev.Start) {
			continue
		}
		busy = append(busy, models.TimeInterval{Start: ev.Start, End: ev.End})
	}
	sort.Slice(busy, func(i, j int) bool {
		if busy[i].Start.Equal(busy[j].Start) {
			return busy[i].End.Before(busy[j].End)
		}
		return busy[i].Start.Before(busy[j].Start)
	})
	return busy
}

// FormatEvents renders events as a short readable listing, grouped the way
// the daily brief and chat context expect.
func FormatEvents(events []models.CalendarEvent) string {
	if len(events) == 0 {
		return "No events scheduled."
	}
	var b strings.Builder
	var lastDay string
	for _, ev := range events {
		day := utils.FormatDayHeading(ev.Start)
		if day != lastDay {
			if lastDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(day + "\n")
			lastDay = day
		}
		if ev.AllDay {
			b.WriteString(fmt.Sprintf("  - %s (all day)\n", ev.Summary))
			continue
		}
		b.WriteString(fmt.Sprintf("  - %s to %s: %s\n",
			utils.FormatClock(ev.Start), utils.FormatClock(ev.End), ev.Summary))
		if ev.Location != "" {
			b.WriteString(fmt.Sprintf("    at %s\n", ev.Location))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
