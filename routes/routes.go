package routes

import (
	"net/http"
	"time"

	"aide/handlers"
	"aide/middleware"
	"aide/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.GET("/login", hb.LoginHandler)
		api.GET("/callback", hb.CallbackHandler)

		// Protected routes (require authentication).
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("/me", hb.MeHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterChatRoutes registers assistant chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.POST("", hb.ChatMessageHandler)
		api.DELETE("", hb.ClearConversationHandler)
		api.POST("/parse", hb.ParseCalendarRequestHandler)
		api.POST("/command", hb.CalendarCommandHandler)
	}
}

// RegisterCalendarRoutes registers calendar endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("/today", hb.TodayEventsHandler)
		api.GET("/upcoming", hb.UpcomingEventsHandler)
		api.POST("/events", hb.CreateEventHandler)
		api.POST("/birthdays", hb.CreateBirthdayHandler)
		api.POST("/interviews", hb.CreateInterviewHandler)
		api.DELETE("/events/:id", hb.DeleteEventHandler)
		api.POST("/free-slots", hb.FreeSlotsHandler)
	}
}

// RegisterKnowledgeRoutes registers knowledge base, reminder and crucial
// date endpoints.
func RegisterKnowledgeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/knowledge")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("", hb.GetKnowledgeHandler)
		api.PUT("", hb.UpdateKnowledgeHandler)
		api.POST("/append", hb.AppendKnowledgeHandler)
		api.GET("/search", hb.SearchKnowledgeHandler)

		api.POST("/reminders", hb.AddReminderHandler)
		api.GET("/reminders", hb.ListRemindersHandler)
		api.DELETE("/reminders", hb.RemoveReminderHandler)

		api.POST("/crucial", hb.AddCrucialEventHandler)
		api.GET("/crucial", hb.ListCrucialEventsHandler)
		api.DELETE("/crucial/:name", hb.RemoveCrucialEventHandler)
	}
}

// RegisterBriefRoutes registers daily brief endpoints.
func RegisterBriefRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/brief")
	{
		api.Use(middleware.SessionAuthMiddleware())
		api.GET("", hb.GetBriefHandler)
		api.POST("/send", hb.SendBriefHandler)
		api.GET("/analyze", hb.AnalyzeCalendarHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": "ok", "message": "Hi, I'm Aide", "deps": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterKnowledgeRoutes(r, hb)
	RegisterBriefRoutes(r, hb)
	RegisterHealthRoute(r)
}
