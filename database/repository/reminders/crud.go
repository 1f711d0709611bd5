package remindersRepo

import (
	"aide/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Add inserts a reminder and returns its ID. Duplicate (user, category, text)
// triples are rejected.
func (r *mongoReminderRepo) Add(ctx context.Context, reminder models.Reminder) (string, error) {
	filter := bson.M{
		"userEmail": reminder.UserEmail,
		"category":  reminder.Category,
		"text":      reminder.Text,
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", errors.New("reminder already exists")
	}

	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, reminder); err != nil {
		return "", err
	}
	return reminder.ID, nil
}

// GetByEmail returns all reminders for a user.
func (r *mongoReminderRepo) GetByEmail(ctx context.Context, email string) ([]models.Reminder, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

// GetByCategory returns a user's reminders in one category.
func (r *mongoReminderRepo) GetByCategory(ctx context.Context, email, category string) ([]models.Reminder, error) {
	return r.find(ctx, bson.M{"userEmail": email, "category": category})
}

func (r *mongoReminderRepo) find(ctx context.Context, filter bson.M) ([]models.Reminder, error) {
	opts := options.Find().SetSort(bson.M{"text": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// Remove deletes a reminder matched by category and exact text.
func (r *mongoReminderRepo) Remove(ctx context.Context, email, category, text string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{
		"userEmail": email,
		"category":  category,
		"text":      text,
	})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("reminder not found")
	}
	return nil
}
