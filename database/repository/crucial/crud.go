package crucialRepo

import (
	"aide/models"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Add inserts a crucial event and returns its ID. Event names are unique
// per user.
func (r *mongoCrucialRepo) Add(ctx context.Context, event models.CrucialEvent) (string, error) {
	filter := bson.M{"userEmail": event.UserEmail, "name": event.Name}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", errors.New("crucial event already exists")
	}

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// GetByEmail returns all crucial events for a user, sorted by date descriptor.
func (r *mongoCrucialRepo) GetByEmail(ctx context.Context, email string) ([]models.CrucialEvent, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.CrucialEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Remove deletes a crucial event by name.
func (r *mongoCrucialRepo) Remove(ctx context.Context, email, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"userEmail": email, "name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("crucial event not found")
	}
	return nil
}
