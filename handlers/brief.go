package handlers

import (
	"net/http"
	"strconv"

	"aide/middleware"
	"aide/services/assistant"
	"aide/utils"

	"github.com/gin-gonic/gin"
)

// BriefHandler serves daily brief and calendar analysis endpoints.
type BriefHandler struct {
	Svc assistant.AssistantService
}

func NewBriefHandler(svc assistant.AssistantService) *BriefHandler {
	return &BriefHandler{Svc: svc}
}

// GetBriefHandler generates the brief on demand.
func (h *BriefHandler) GetBriefHandler(c *gin.Context) {
	brief, err := h.Svc.GenerateBrief(c.Request.Context(), middleware.UserEmail(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate brief", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"brief": brief})
}

// SendBriefHandler generates the brief and emails it to the user.
func (h *BriefHandler) SendBriefHandler(c *gin.Context) {
	if err := h.Svc.DeliverBrief(c.Request.Context(), middleware.UserEmail(c)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send brief", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// AnalyzeCalendarHandler reviews the next ?days=N days of the calendar.
func (h *BriefHandler) AnalyzeCalendarHandler(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 60 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid days parameter", "want an integer between 1 and 60")
		return
	}
	analysis, err := h.Svc.AnalyzeCalendar(c.Request.Context(), middleware.UserEmail(c), days)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to analyze calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
