package handlers

import (
	"net/http"

	"aide/middleware"
	"aide/models"
	"aide/services/assistant"
	"aide/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the conversational assistant endpoints.
type ChatHandler struct {
	Svc assistant.AssistantService
}

func NewChatHandler(svc assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// ChatMessageHandler relays one message to the assistant.
func (h *ChatHandler) ChatMessageHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	resp, err := h.Svc.Chat(c.Request.Context(), middleware.UserEmail(c), middleware.UserName(c), req.Text)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Chat failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearConversationHandler drops the stored conversation history.
func (h *ChatHandler) ClearConversationHandler(c *gin.Context) {
	if err := h.Svc.ClearConversation(c.Request.Context(), middleware.UserEmail(c)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// ParseCalendarRequestHandler extracts a structured calendar request from
// free text, for the frontend's "smart add" box.
func (h *ChatHandler) ParseCalendarRequestHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	parsed, err := h.Svc.ParseCalendarRequest(c.Request.Context(), middleware.UserEmail(c), req.Text)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to parse request", err.Error())
		return
	}
	c.JSON(http.StatusOK, parsed)
}

// CalendarCommandHandler parses a free-text calendar request and executes
// it in one round trip: "schedule lunch with Sam tomorrow at noon".
func (h *ChatHandler) CalendarCommandHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	email := middleware.UserEmail(c)
	parsed, err := h.Svc.ParseCalendarRequest(c.Request.Context(), email, req.Text)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to parse request", err.Error())
		return
	}

	outcome, err := h.Svc.ExecuteCalendarRequest(c.Request.Context(), email, parsed)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to execute request", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": outcome, "request": parsed})
}
