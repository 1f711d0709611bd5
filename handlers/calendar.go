package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"aide/config"
	"aide/middleware"
	"aide/models"
	"aide/services/calendar"
	"aide/services/schedule"
	"aide/utils"

	"github.com/gin-gonic/gin"
)

// CalendarHandler serves calendar endpoints.
type CalendarHandler struct {
	Svc calendar.CalendarService
}

func NewCalendarHandler(svc calendar.CalendarService) *CalendarHandler {
	return &CalendarHandler{Svc: svc}
}

// TodayEventsHandler lists today's events.
func (h *CalendarHandler) TodayEventsHandler(c *gin.Context) {
	loc := calendar.Location(config.AppConfig.Timezone)
	events, err := h.Svc.EventsForDay(c.Request.Context(), middleware.UserEmail(c), time.Now().In(loc))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to list events", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// UpcomingEventsHandler lists events for the next ?days=N days (default 7).
func (h *CalendarHandler) UpcomingEventsHandler(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 60 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid days parameter", "want an integer between 1 and 60")
		return
	}
	events, err := h.Svc.UpcomingEvents(c.Request.Context(), middleware.UserEmail(c), days)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to list events", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEventHandler inserts a timed event.
func (h *CalendarHandler) CreateEventHandler(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event payload", err.Error())
		return
	}
	event, err := h.Svc.CreateEvent(c.Request.Context(), middleware.UserEmail(c), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to create event", err.Error())
		return
	}
	c.JSON(http.StatusCreated, event)
}

// CreateBirthdayHandler inserts a yearly recurring all-day birthday.
func (h *CalendarHandler) CreateBirthdayHandler(c *gin.Context) {
	var input models.BirthdayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid birthday payload", err.Error())
		return
	}
	event, err := h.Svc.CreateBirthday(c.Request.Context(), middleware.UserEmail(c), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to create birthday", err.Error())
		return
	}
	c.JSON(http.StatusCreated, event)
}

// CreateInterviewHandler inserts an interview event.
func (h *CalendarHandler) CreateInterviewHandler(c *gin.Context) {
	var input models.InterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid interview payload", err.Error())
		return
	}
	event, err := h.Svc.CreateInterview(c.Request.Context(), middleware.UserEmail(c), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to schedule interview", err.Error())
		return
	}
	c.JSON(http.StatusCreated, event)
}

// DeleteEventHandler removes an event by ID.
func (h *CalendarHandler) DeleteEventHandler(c *gin.Context) {
	eventID := c.Param("id")
	if err := h.Svc.DeleteEvent(c.Request.Context(), middleware.UserEmail(c), eventID); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to delete event", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// FreeSlotsHandler computes open slots for a day.
func (h *CalendarHandler) FreeSlotsHandler(c *gin.Context) {
	var query models.FreeSlotsQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid free-slots query", err.Error())
		return
	}
	slots, err := h.Svc.FreeSlots(c.Request.Context(), middleware.UserEmail(c), query)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidArgument) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid free-slots query", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Failed to compute free slots", err.Error())
		return
	}

	labels := make([]string, 0, len(slots))
	for _, slot := range slots {
		labels = append(labels, slot.Label())
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "labels": labels})
}
