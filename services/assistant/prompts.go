package assistant

import (
	"fmt"
	"strings"
	"time"

	"aide/utils"
)

const systemPrompt = `You are a helpful personal AI assistant. You help the user manage their calendar,
remember important things, and stay organized.

You have access to:
1. The user's Google Calendar - you can view events and help add new ones
2. The user's Knowledge Base - personal information, preferences, and custom reminders
3. The ability to set reminders and provide daily briefs

When helping with calendar tasks:
- Be specific about dates and times
- Confirm details before creating events
- Suggest optimal times when scheduling meetings

When generating daily briefs:
- Summarize today's calendar events
- Include relevant reminders from the knowledge base
- Be concise but comprehensive
- Use a friendly, personal tone

When the user wants to add something to their knowledge base:
- Help them organize the information
- Suggest which section it belongs in
- Confirm the addition

Always be helpful, proactive, and personable. Remember context from the conversation.`

// contextBlock assembles the per-request context the chat prompt leads with.
func contextBlock(now time.Time, knowledgeBase, calendarSummary string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current date/time: %s at %s\n\n", utils.FormatFullDate(now), utils.FormatClock(now))
	b.WriteString("User's Knowledge Base:\n")
	b.WriteString(knowledgeBase)
	if calendarSummary != "" {
		b.WriteString("\n\nUser's Calendar Context:\n")
		b.WriteString(calendarSummary)
	}
	return b.String()
}

func briefPrompt(now time.Time, eventsText, reminderContext string) string {
	return fmt.Sprintf(`Generate a concise, friendly daily brief for %s.

%s

Knowledge Base and Reminders:
%s

Instructions:
1. Start with a brief greeting appropriate for the time of day
2. Summarize today's calendar events
3. Include any relevant reminders from the knowledge base
4. Mention any birthdays, anniversaries, or important dates coming up
5. End with a motivational or helpful note
6. Keep it concise but personal

Generate the daily brief:`, utils.FormatFullDate(now), eventsText, reminderContext)
}

func analyzePrompt(days int, eventsText, knowledgeBase string) string {
	if eventsText == "" {
		eventsText = "No events scheduled"
	}
	return fmt.Sprintf(`Analyze this calendar for the next %d days and suggest what might be missing or could be improved.

Calendar Events:
%s

User's Knowledge Base (context about their life, important people, work):
%s

Based on the knowledge base and calendar, please:
1. Identify any important dates/events that might be missing (birthdays, anniversaries, etc.)
2. Suggest any recurring events that should be scheduled
3. Point out any potential scheduling conflicts or overly busy days
4. Recommend time blocks for important activities mentioned in the knowledge base
5. Highlight anything that seems like it might be forgotten

Be specific and actionable in your suggestions.`, days, eventsText, knowledgeBase)
}

func parseCalendarPrompt(now time.Time, request, calendarContext string) string {
	ctxPart := ""
	if calendarContext != "" {
		ctxPart = "Current calendar context:\n" + calendarContext + "\n\n"
	}
	return fmt.Sprintf(`Parse this calendar request and extract the relevant information.

Current date/time: %s at %s

User's request: %q

%sExtract the following information (if present) and return as JSON:
{
    "action": "create" | "update" | "delete" | "query",
    "event_type": "meeting" | "birthday" | "interview" | "reminder" | "other",
    "summary": "event title",
    "date": "YYYY-MM-DD",
    "time": "HH:MM" (24-hour format),
    "duration_minutes": number,
    "is_recurring": boolean,
    "recurrence_type": "daily" | "weekly" | "monthly" | "yearly" | null,
    "attendees": ["email1", "email2"] or null,
    "location": "location" or null,
    "description": "description" or null,
    "needs_clarification": boolean,
    "clarification_question": "question to ask user" or null
}

Return ONLY the JSON, no other text.`, utils.FormatFullDate(now), utils.FormatClock(now), request, ctxPart)
}

func knowledgeUpdatePrompt(message string) string {
	return fmt.Sprintf(`Analyze this message and determine if the user wants to add or update their knowledge base/memory.

User's message: %q

If the user wants to remember something or update their profile/preferences, extract:
1. What section it belongs to (About Me, Important People, Work Context, Preferences, Custom Reminders, Notes)
2. The information to add

Return as JSON:
{
    "should_update": boolean,
    "section": "section name" or null,
    "content": "formatted content to add" or null,
    "response": "confirmation message to user"
}

Return ONLY the JSON, no other text.`, message)
}
