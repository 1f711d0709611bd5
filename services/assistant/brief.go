package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aide/config"
	"aide/models"
	"aide/services/calendar"
	"aide/services/schedule"
	"aide/utils"
)

const crucialLookaheadDays = 30

// GenerateBrief builds the daily brief text for a user from today's events,
// their reminders and the knowledge base.
func (s *DefaultAssistantService) GenerateBrief(ctx context.Context, email string) (string, error) {
	loc := calendar.Location(config.AppConfig.Timezone)
	now := time.Now().In(loc)

	events, err := s.Calendar.EventsForDay(ctx, email, now)
	if err != nil {
		return "", fmt.Errorf("today's events: %w", err)
	}
	eventsText := "No calendar events today.\n"
	if len(events) > 0 {
		var b strings.Builder
		b.WriteString("Today's Calendar Events:\n")
		for _, ev := range events {
			if ev.AllDay {
				fmt.Fprintf(&b, "- All day: %s\n", ev.Summary)
			} else {
				fmt.Fprintf(&b, "- %s: %s\n", utils.FormatClock(ev.Start), ev.Summary)
			}
		}
		eventsText = b.String()
	}

	reminderContext, err := s.briefContext(ctx, email, now, loc)
	if err != nil {
		return "", err
	}

	reply, err := s.LLM.Chat(ctx, "", []models.ChatMessage{
		{Role: "user", Content: briefPrompt(now, eventsText, reminderContext)},
	})
	if err != nil {
		return "", fmt.Errorf("generate brief: %w", err)
	}
	return reply, nil
}

// briefContext collects the knowledge base, standing reminders, and any
// crucial dates falling within the next month.
func (s *DefaultAssistantService) briefContext(ctx context.Context, email string, now time.Time, loc *time.Location) (string, error) {
	var b strings.Builder

	entry, err := s.Knowledge.Get(ctx, email, "")
	if err != nil {
		return "", err
	}
	b.WriteString(entry.Content)

	reminders, err := s.Knowledge.ListReminders(ctx, email, "")
	if err != nil {
		return "", fmt.Errorf("list reminders: %w", err)
	}
	if len(reminders) > 0 {
		b.WriteString("\n\nStanding reminders:\n")
		for _, r := range reminders {
			fmt.Fprintf(&b, "- [%s] %s\n", r.Category, r.Text)
		}
	}

	crucial, err := s.Knowledge.ListCrucialEvents(ctx, email)
	if err != nil {
		return "", fmt.Errorf("list crucial events: %w", err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	horizon := today.AddDate(0, 0, crucialLookaheadDays)
	var upcoming []string
	for _, ev := range crucial {
		for year := now.Year(); year <= now.Year()+1; year++ {
			d, ok := schedule.ResolveRecurrenceDate(ev.Date, year, loc)
			if !ok {
				continue
			}
			if !d.Before(today) && d.Before(horizon) {
				upcoming = append(upcoming, fmt.Sprintf("- %s: %s", utils.FormatFullDate(d), ev.Name))
				break
			}
		}
	}
	if len(upcoming) > 0 {
		b.WriteString("\nUpcoming important dates:\n")
		b.WriteString(strings.Join(upcoming, "\n"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// DeliverBrief generates the brief and emails it to the user.
func (s *DefaultAssistantService) DeliverBrief(ctx context.Context, email string) error {
	brief, err := s.GenerateBrief(ctx, email)
	if err != nil {
		return err
	}
	loc := calendar.Location(config.AppConfig.Timezone)
	subject := fmt.Sprintf("Your Daily Brief - %s", utils.FormatFullDate(time.Now().In(loc)))
	return s.Email.Send(email, subject, brief)
}
