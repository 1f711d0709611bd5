package calendar

import (
	"context"
	"time"

	"aide/config"
	"aide/models"
	"aide/services/schedule"
	"aide/utils"
)

// FreeSlots computes open meeting slots for the requested day within the
// working hours, using the day's timed events as busy intervals. When the
// requested day is today, slots already in the past are excluded.
func (s *DefaultCalendarService) FreeSlots(ctx context.Context, email string, query models.FreeSlotsQuery) ([]models.TimeInterval, error) {
	loc := Location(config.AppConfig.Timezone)
	day, err := utils.ParseDate(query.Date, loc)
	if err != nil {
		return nil, err
	}

	startHour := query.StartHour
	endHour := query.EndHour
	if startHour == 0 && endHour == 0 {
		startHour = config.AppConfig.WorkingStartHour
		endHour = config.AppConfig.WorkingEndHour
	}
	duration := query.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	events, err := s.EventsForDay(ctx, email, day)
	if err != nil {
		return nil, err
	}

	window := models.WorkingWindow{
		Day:       day,
		StartHour: startHour,
		EndHour:   endHour,
		Location:  loc,
	}
	var now time.Time
	today := time.Now().In(loc)
	if day.Year() == today.Year() && day.YearDay() == today.YearDay() {
		now = today
	}
	return schedule.FindFreeSlots(window, BusyIntervals(events), duration, now)
}
