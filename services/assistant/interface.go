package assistant

import (
	"context"

	"aide/models"
	"aide/services/calendar"
	"aide/services/knowledge"
	"aide/services/notify"
)

type AssistantService interface {
	// Chat processes one user message: a knowledge-update pre-pass, then a
	// context-aware model reply. Conversation history lives in Redis.
	Chat(ctx context.Context, email, name, text string) (*models.ChatResponse, error)
	// ClearConversation drops the stored history for a user.
	ClearConversation(ctx context.Context, email string) error

	// GenerateBrief builds the daily brief text for a user.
	GenerateBrief(ctx context.Context, email string) (string, error)
	// DeliverBrief generates the brief and emails it to the user.
	DeliverBrief(ctx context.Context, email string) error

	// AnalyzeCalendar reviews the next days of the calendar against the
	// knowledge base and suggests what is missing.
	AnalyzeCalendar(ctx context.Context, email string, days int) (string, error)
	// ParseCalendarRequest extracts a structured calendar request from
	// natural language.
	ParseCalendarRequest(ctx context.Context, email, text string) (*models.CalendarRequest, error)
	// ExecuteCalendarRequest carries out a parsed request against the
	// user's calendar and returns a human-readable outcome.
	ExecuteCalendarRequest(ctx context.Context, email string, req *models.CalendarRequest) (string, error)
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	LLM       LLMClient
	Knowledge knowledge.KnowledgeService
	Calendar  calendar.CalendarService
	CtxStore  *RedisContextStore
	Email     notify.EmailService
}
