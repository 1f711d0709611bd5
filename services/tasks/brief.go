package tasks

import (
	"encoding/json"

	"aide/models"

	"github.com/hibiken/asynq"
)

// TypeBriefSend is the task type for one user's daily brief delivery.
const TypeBriefSend = "brief:send"

// NewBriefTask builds a queue task carrying the brief payload.
func NewBriefTask(payload models.BriefPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBriefSend, b), nil
}
