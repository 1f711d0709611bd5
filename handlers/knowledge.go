package handlers

import (
	"net/http"

	"aide/middleware"
	"aide/services/knowledge"
	"aide/utils"

	"github.com/gin-gonic/gin"
)

// KnowledgeHandler serves knowledge base, reminder and crucial-date endpoints.
type KnowledgeHandler struct {
	Svc knowledge.KnowledgeService
}

func NewKnowledgeHandler(svc knowledge.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{Svc: svc}
}

// GetHandler returns the user's knowledge base document.
func (h *KnowledgeHandler) GetHandler(c *gin.Context) {
	entry, err := h.Svc.Get(c.Request.Context(), middleware.UserEmail(c), middleware.UserName(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load knowledge base", err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateHandler replaces the document wholesale.
func (h *KnowledgeHandler) UpdateHandler(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid update payload", err.Error())
		return
	}
	if err := h.Svc.Update(c.Request.Context(), middleware.UserEmail(c), req.Content); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update knowledge base", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// AppendHandler adds content to one section.
func (h *KnowledgeHandler) AppendHandler(c *gin.Context) {
	var req struct {
		Section string `json:"section" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid append payload", err.Error())
		return
	}
	if err := h.Svc.Append(c.Request.Context(), middleware.UserEmail(c), req.Section, req.Content); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to append to knowledge base", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "appended"})
}

// SearchHandler finds matches with surrounding context.
func (h *KnowledgeHandler) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing search query", "pass ?q=...")
		return
	}
	hits, err := h.Svc.SearchEntries(c.Request.Context(), middleware.UserEmail(c), query)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"hits": hits})
}

// AddReminderHandler stores a standing reminder.
func (h *KnowledgeHandler) AddReminderHandler(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Text     string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reminder payload", err.Error())
		return
	}
	id, err := h.Svc.AddReminder(c.Request.Context(), middleware.UserEmail(c), req.Category, req.Text)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to add reminder", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListRemindersHandler lists reminders, optionally by ?category=.
func (h *KnowledgeHandler) ListRemindersHandler(c *gin.Context) {
	reminders, err := h.Svc.ListReminders(c.Request.Context(), middleware.UserEmail(c), c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// RemoveReminderHandler deletes a reminder by category and exact text.
func (h *KnowledgeHandler) RemoveReminderHandler(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Text     string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reminder payload", err.Error())
		return
	}
	if err := h.Svc.RemoveReminder(c.Request.Context(), middleware.UserEmail(c), req.Category, req.Text); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to remove reminder", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// AddCrucialEventHandler stores a crucial date and puts it on the calendar.
func (h *KnowledgeHandler) AddCrucialEventHandler(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid crucial event payload", err.Error())
		return
	}
	id, err := h.Svc.AddCrucialEvent(c.Request.Context(), middleware.UserEmail(c), req.Name, req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to add crucial event", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListCrucialEventsHandler lists the user's crucial dates.
func (h *KnowledgeHandler) ListCrucialEventsHandler(c *gin.Context) {
	events, err := h.Svc.ListCrucialEvents(c.Request.Context(), middleware.UserEmail(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list crucial events", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// RemoveCrucialEventHandler deletes a crucial date by name.
func (h *KnowledgeHandler) RemoveCrucialEventHandler(c *gin.Context) {
	name := c.Param("name")
	if err := h.Svc.RemoveCrucialEvent(c.Request.Context(), middleware.UserEmail(c), name); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to remove crucial event", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
