package models

import "time"

// CalendarEvent is the cleaned-up view of a Google Calendar event used
// throughout the app. AllDay events carry date-only Start/End values.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details,omitempty"`
	Location  string    `json:"location,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	AllDay    bool      `json:"allDay"`
	Attendees []string  `json:"attendees,omitempty"`
	HTMLLink  string    `json:"htmlLink,omitempty"`
}

// EventInput is the payload for creating a timed calendar event.
type EventInput struct {
	Summary         string   `json:"summary" binding:"required"`
	Details         string   `json:"details"`
	Location        string   `json:"location"`
	Date            string   `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime       string   `json:"startTime" binding:"required"` // HH:MM, 24h
	DurationMinutes int      `json:"durationMinutes"`
	Attendees       []string `json:"attendees"`
}

// InterviewInput is the payload for scheduling an interview event.
type InterviewInput struct {
	CandidateName   string   `json:"candidateName" binding:"required"`
	Interviewers    []string `json:"interviewers" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	StartTime       string   `json:"startTime" binding:"required"`
	DurationMinutes int      `json:"durationMinutes"`
	Notes           string   `json:"notes"`
}

// BirthdayInput is the payload for adding a yearly recurring birthday.
type BirthdayInput struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"` // YYYY-MM-DD, year ignored
}

// FreeSlotsQuery is the payload for the free-slot endpoint and agent tool.
type FreeSlotsQuery struct {
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	DurationMinutes int    `json:"durationMinutes"`
	StartHour       int    `json:"startHour"`
	EndHour         int    `json:"endHour"`
}
