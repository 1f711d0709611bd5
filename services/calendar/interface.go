package calendar

import (
	"context"
	"time"

	"aide/models"
	"aide/services/auth"
)

type CalendarService interface {
	// EventsForDay lists a user's events for one calendar day.
	EventsForDay(ctx context.Context, email string, day time.Time) ([]models.CalendarEvent, error)
	// EventsRange lists events between two instants.
	EventsRange(ctx context.Context, email string, from, to time.Time) ([]models.CalendarEvent, error)
	// UpcomingEvents lists events for the next n days starting today.
	UpcomingEvents(ctx context.Context, email string, days int) ([]models.CalendarEvent, error)

	// CreateEvent inserts a timed event.
	CreateEvent(ctx context.Context, email string, input models.EventInput) (*models.CalendarEvent, error)
	// CreateBirthday inserts a yearly recurring all-day birthday event.
	CreateBirthday(ctx context.Context, email string, input models.BirthdayInput) (*models.CalendarEvent, error)
	// CreateInterview inserts an interview event with attendees and notes.
	CreateInterview(ctx context.Context, email string, input models.InterviewInput) (*models.CalendarEvent, error)
	// CreateYearlyAllDay inserts a yearly recurring all-day event whose first
	// occurrence is the given date. Used for crucial dates.
	CreateYearlyAllDay(ctx context.Context, email, name string, first time.Time) (*models.CalendarEvent, error)
	// DeleteEvent removes an event by ID.
	DeleteEvent(ctx context.Context, email, eventID string) error

	// FreeSlots computes open meeting slots for a day within working hours.
	FreeSlots(ctx context.Context, email string, query models.FreeSlotsQuery) ([]models.TimeInterval, error)
}

// DefaultCalendarService talks to the user's primary Google calendar.
type DefaultCalendarService struct {
	Auth auth.AuthService
}

// Location returns the configured home timezone, falling back to UTC when
// the name does not resolve.
func Location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
