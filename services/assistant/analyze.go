package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aide/config"
	"aide/models"
	"aide/services/calendar"
	"aide/utils"
)

// AnalyzeCalendar reviews the next days of the calendar against the
// knowledge base and suggests what might be missing.
func (s *DefaultAssistantService) AnalyzeCalendar(ctx context.Context, email string, days int) (string, error) {
	if days <= 0 {
		days = 7
	}
	events, err := s.Calendar.UpcomingEvents(ctx, email, days)
	if err != nil {
		return "", fmt.Errorf("upcoming events: %w", err)
	}
	var b strings.Builder
	for _, ev := range events {
		if ev.AllDay {
			fmt.Fprintf(&b, "- %s: %s\n", utils.FormatDate(ev.Start), ev.Summary)
			continue
		}
		fmt.Fprintf(&b, "- %s at %s: %s\n",
			ev.Start.Format("January 2"), utils.FormatClock(ev.Start), ev.Summary)
	}

	entry, err := s.Knowledge.Get(ctx, email, "")
	if err != nil {
		return "", err
	}

	reply, err := s.LLM.Chat(ctx, "", []models.ChatMessage{
		{Role: "user", Content: analyzePrompt(days, b.String(), entry.Content)},
	})
	if err != nil {
		return "", fmt.Errorf("analyze calendar: %w", err)
	}
	return reply, nil
}

// ParseCalendarRequest extracts a structured calendar request from natural
// language. Parsing failures come back as a clarification request rather
// than an error so the conversation can continue.
func (s *DefaultAssistantService) ParseCalendarRequest(ctx context.Context, email, text string) (*models.CalendarRequest, error) {
	loc := calendar.Location(config.AppConfig.Timezone)
	now := time.Now().In(loc)

	calendarContext := ""
	if events, err := s.Calendar.UpcomingEvents(ctx, email, chatCalendarDays); err == nil {
		calendarContext = calendar.FormatEvents(events)
	}

	var parsed models.CalendarRequest
	if err := chatJSON(ctx, s.LLM, "", parseCalendarPrompt(now, text, calendarContext), &parsed); err != nil {
		return &models.CalendarRequest{
			Action:                "query",
			NeedsClarification:    true,
			ClarificationQuestion: "I couldn't understand that request. Could you please rephrase?",
		}, nil
	}
	return &parsed, nil
}
