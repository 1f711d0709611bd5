package models

// ChatMessage is a single turn in a conversation with the assistant.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Reply           string `json:"reply"`
	KnowledgeUpdate string `json:"knowledgeUpdate,omitempty"` // confirmation when the message updated the KB
}

// ChatContext is the per-user conversation state kept in Redis between
// requests. Concurrent requests for different users never share one.
type ChatContext struct {
	History []ChatMessage `json:"history"`
}

// CalendarRequest is the structured form the LLM extracts from a natural
// language calendar request.
type CalendarRequest struct {
	Action                string   `json:"action"`     // "create", "update", "delete", "query"
	EventType             string   `json:"event_type"` // "meeting", "birthday", "interview", "reminder", "other"
	Summary               string   `json:"summary"`
	Date                  string   `json:"date"` // YYYY-MM-DD
	Time                  string   `json:"time"` // HH:MM, 24h
	DurationMinutes       int      `json:"duration_minutes"`
	IsRecurring           bool     `json:"is_recurring"`
	RecurrenceType        string   `json:"recurrence_type"`
	Attendees             []string `json:"attendees"`
	Location              string   `json:"location"`
	Description           string   `json:"description"`
	NeedsClarification    bool     `json:"needs_clarification"`
	ClarificationQuestion string   `json:"clarification_question"`
}

// KnowledgeUpdate is the structured form the LLM extracts when a chat
// message should be remembered in the knowledge base.
type KnowledgeUpdate struct {
	ShouldUpdate bool   `json:"should_update"`
	Section      string `json:"section"`
	Content      string `json:"content"`
	Response     string `json:"response"`
}

// BriefPayload is the task payload for a queued daily-brief delivery.
type BriefPayload struct {
	UserEmail string `json:"userEmail"`
}
