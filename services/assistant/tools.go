package assistant

import (
	"context"
	"fmt"
	"strings"

	"aide/config"
	"aide/models"
	"aide/services/calendar"
	"aide/utils"
)

// ExecuteCalendarRequest carries out a parsed calendar request and returns a
// human-readable outcome. Requests needing clarification are echoed back as
// the question; unsupported combinations come back as a polite refusal, not
// an error, so chat flows can always show something.
func (s *DefaultAssistantService) ExecuteCalendarRequest(ctx context.Context, email string, req *models.CalendarRequest) (string, error) {
	if req.NeedsClarification {
		if req.ClarificationQuestion != "" {
			return req.ClarificationQuestion, nil
		}
		return "Could you give me a bit more detail?", nil
	}

	switch req.Action {
	case "create":
		return s.executeCreate(ctx, email, req)
	case "query":
		return s.executeQuery(ctx, email, req)
	case "delete", "update":
		return "I can't change existing events from chat yet. Open the calendar page to edit or remove events.", nil
	default:
		return "I wasn't sure what to do with that request. Try rephrasing it?", nil
	}
}

func (s *DefaultAssistantService) executeCreate(ctx context.Context, email string, req *models.CalendarRequest) (string, error) {
	switch req.EventType {
	case "birthday":
		name := strings.TrimSuffix(req.Summary, "'s Birthday")
		if name == "" {
			name = req.Summary
		}
		ev, err := s.Calendar.CreateBirthday(ctx, email, models.BirthdayInput{Name: name, Date: req.Date})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %s as a yearly event starting %s.", ev.Summary, utils.FormatFullDate(ev.Start)), nil

	case "interview":
		ev, err := s.Calendar.CreateInterview(ctx, email, models.InterviewInput{
			CandidateName:   req.Summary,
			Interviewers:    req.Attendees,
			Date:            req.Date,
			StartTime:       req.Time,
			DurationMinutes: req.DurationMinutes,
			Notes:           req.Description,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Scheduled %q on %s at %s.", ev.Summary, utils.FormatFullDate(ev.Start), utils.FormatClock(ev.Start)), nil

	default:
		if req.Date == "" || req.Time == "" {
			return "I need a date and a time to create that event.", nil
		}
		ev, err := s.Calendar.CreateEvent(ctx, email, models.EventInput{
			Summary:         req.Summary,
			Details:         req.Description,
			Location:        req.Location,
			Date:            req.Date,
			StartTime:       req.Time,
			DurationMinutes: req.DurationMinutes,
			Attendees:       req.Attendees,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created %q on %s at %s.", ev.Summary, utils.FormatFullDate(ev.Start), utils.FormatClock(ev.Start)), nil
	}
}

func (s *DefaultAssistantService) executeQuery(ctx context.Context, email string, req *models.CalendarRequest) (string, error) {
	loc := calendar.Location(config.AppConfig.Timezone)
	if req.Date != "" {
		day, err := utils.ParseDate(req.Date, loc)
		if err != nil {
			return "", err
		}
		events, err := s.Calendar.EventsForDay(ctx, email, day)
		if err != nil {
			return "", err
		}
		return calendar.FormatEvents(events), nil
	}
	events, err := s.Calendar.UpcomingEvents(ctx, email, 7)
	if err != nil {
		return "", err
	}
	return calendar.FormatEvents(events), nil
}
