package remindersRepo

import (
	"aide/database"
	"aide/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReminderRepository interface {
	Add(ctx context.Context, reminder models.Reminder) (string, error)
	GetByEmail(ctx context.Context, email string) ([]models.Reminder, error)
	GetByCategory(ctx context.Context, email, category string) ([]models.Reminder, error)
	Remove(ctx context.Context, email, category, text string) error
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo returns a new ReminderRepository instance using MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	db := database.DB()
	return &mongoReminderRepo{
		coll: db.Collection("reminders"),
	}
}
