package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints.
	LoginHandler    gin.HandlerFunc
	CallbackHandler gin.HandlerFunc
	MeHandler       gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc

	// Chat endpoints.
	ChatMessageHandler          gin.HandlerFunc
	ClearConversationHandler    gin.HandlerFunc
	ParseCalendarRequestHandler gin.HandlerFunc
	CalendarCommandHandler      gin.HandlerFunc

	// Calendar endpoints.
	TodayEventsHandler     gin.HandlerFunc
	UpcomingEventsHandler  gin.HandlerFunc
	CreateEventHandler     gin.HandlerFunc
	CreateBirthdayHandler  gin.HandlerFunc
	CreateInterviewHandler gin.HandlerFunc
	DeleteEventHandler     gin.HandlerFunc
	FreeSlotsHandler       gin.HandlerFunc

	// Knowledge base endpoints.
	GetKnowledgeHandler    gin.HandlerFunc
	UpdateKnowledgeHandler gin.HandlerFunc
	AppendKnowledgeHandler gin.HandlerFunc
	SearchKnowledgeHandler gin.HandlerFunc

	// Reminder endpoints.
	AddReminderHandler    gin.HandlerFunc
	ListRemindersHandler  gin.HandlerFunc
	RemoveReminderHandler gin.HandlerFunc

	// Crucial date endpoints.
	AddCrucialEventHandler    gin.HandlerFunc
	ListCrucialEventsHandler  gin.HandlerFunc
	RemoveCrucialEventHandler gin.HandlerFunc

	// Brief endpoints.
	GetBriefHandler        gin.HandlerFunc
	SendBriefHandler       gin.HandlerFunc
	AnalyzeCalendarHandler gin.HandlerFunc
}
