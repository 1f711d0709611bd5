package calendar

import (
	"context"
	"fmt"
	"time"

	"aide/config"
	"aide/models"
	"aide/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultDurationMinutes = 30

// clientFor builds a Calendar API client from the user's stored tokens.
func (s *DefaultCalendarService) clientFor(ctx context.Context, email string) (*gcal.Service, error) {
	ts, err := s.Auth.TokenSource(ctx, email)
	if err != nil {
		return nil, err
	}
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}
	return svc, nil
}

// EventsForDay lists events between midnight and midnight of the given day.
func (s *DefaultCalendarService) EventsForDay(ctx context.Context, email string, day time.Time) ([]models.CalendarEvent, error) {
	loc := Location(config.AppConfig.Timezone)
	y, m, d := day.In(loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return s.EventsRange(ctx, email, from, from.AddDate(0, 0, 1))
}

// UpcomingEvents lists events for the next n days starting today.
func (s *DefaultCalendarService) UpcomingEvents(ctx context.Context, email string, days int) ([]models.CalendarEvent, error) {
	if days <= 0 {
		days = 1
	}
	loc := Location(config.AppConfig.Timezone)
	now := time.Now().In(loc)
	y, m, d := now.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return s.EventsRange(ctx, email, from, from.AddDate(0, 0, days))
}

// EventsRange lists single events between from and to, expanded from any
// recurring series, ordered by start time.
func (s *DefaultCalendarService) EventsRange(ctx context.Context, email string, from, to time.Time) ([]models.CalendarEvent, error) {
	client, err := s.clientFor(ctx, email)
	if err != nil {
		return nil, err
	}
	loc := Location(config.AppConfig.Timezone)

	call := client.Events.List("primary").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(250).
		Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Status == "cancelled" {
			continue
		}
		ev, err := fromGoogleEvent(item, loc)
		if err != nil {
			utils.GetLogger().Warn("Skipping unparseable event",
				zap.String("eventId", item.Id), zap.Error(err))
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// CreateEvent inserts a timed event on the user's primary calendar.
func (s *DefaultCalendarService) CreateEvent(ctx context.Context, email string, input models.EventInput) (*models.CalendarEvent, error) {
	loc := Location(config.AppConfig.Timezone)
	day, err := utils.ParseDate(input.Date, loc)
	if err != nil {
		return nil, err
	}
	hour, minute, err := utils.ParseClock(input.StartTime)
	if err != nil {
		return nil, err
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	end := start.Add(time.Duration(duration) * time.Minute)

	ev := &gcal.Event{
		Summary:     input.Summary,
		Description: input.Details,
		Location:    input.Location,
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: loc.String()},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: loc.String()},
	}
	for _, attendee := range input.Attendees {
		ev.Attendees = append(ev.Attendees, &gcal.EventAttendee{Email: attendee})
	}
	return s.insert(ctx, email, ev, loc)
}

// CreateBirthday inserts a yearly recurring all-day event named after the
// person. The year in the input date only fixes the first occurrence.
func (s *DefaultCalendarService) CreateBirthday(ctx context.Context, email string, input models.BirthdayInput) (*models.CalendarEvent, error) {
	loc := Location(config.AppConfig.Timezone)
	day, err := utils.ParseDate(input.Date, loc)
	if err != nil {
		return nil, err
	}
	// If the date already passed this year, anchor on next year so the
	// first reminder is not in the past.
	now := time.Now().In(loc)
	first := time.Date(now.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	if first.Before(now.Truncate(24 * time.Hour)) {
		first = first.AddDate(1, 0, 0)
	}
	return s.CreateYearlyAllDay(ctx, email, fmt.Sprintf("%s's Birthday 🎂", input.Name), first)
}

// CreateYearlyAllDay inserts a yearly recurring all-day event starting at
// the given first occurrence.
func (s *DefaultCalendarService) CreateYearlyAllDay(ctx context.Context, email, name string, first time.Time) (*models.CalendarEvent, error) {
	loc := Location(config.AppConfig.Timezone)
	ev := &gcal.Event{
		Summary:    name,
		Start:      &gcal.EventDateTime{Date: utils.FormatDate(first)},
		End:        &gcal.EventDateTime{Date: utils.FormatDate(first.AddDate(0, 0, 1))},
		Recurrence: []string{"RRULE:FREQ=YEARLY"},
	}
	return s.insert(ctx, email, ev, loc)
}

// CreateInterview inserts an interview event with the candidate in the title
// and the interviewers as attendees.
func (s *DefaultCalendarService) CreateInterview(ctx context.Context, email string, input models.InterviewInput) (*models.CalendarEvent, error) {
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 60
	}
	details := fmt.Sprintf("Interview with %s.", input.CandidateName)
	if input.Notes != "" {
		details += "\n\n" + input.Notes
	}
	return s.CreateEvent(ctx, email, models.EventInput{
		Summary:         fmt.Sprintf("Interview: %s", input.CandidateName),
		Details:         details,
		Date:            input.Date,
		StartTime:       input.StartTime,
		DurationMinutes: duration,
		Attendees:       input.Interviewers,
	})
}

// DeleteEvent removes an event from the primary calendar.
func (s *DefaultCalendarService) DeleteEvent(ctx context.Context, email, eventID string) error {
	client, err := s.clientFor(ctx, email)
	if err != nil {
		return err
	}
	if err := client.Events.Delete("primary", eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}
	return nil
}

func (s *DefaultCalendarService) insert(ctx context.Context, email string, ev *gcal.Event, loc *time.Location) (*models.CalendarEvent, error) {
	client, err := s.clientFor(ctx, email)
	if err != nil {
		return nil, err
	}
	created, err := client.Events.Insert("primary", ev).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	out, err := fromGoogleEvent(created, loc)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Created calendar event",
		zap.String("email", email), zap.String("eventId", out.ID), zap.String("summary", out.Summary))
	return &out, nil
}
