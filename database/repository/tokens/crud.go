package tokensRepo

import (
	"aide/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert stores or replaces the token record keyed by user email.
func (r *mongoTokenRepo) Upsert(ctx context.Context, record models.TokenRecord) error {
	record.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"userEmail": record.UserEmail}, record, opts)
	return err
}

// GetByEmail returns the token record for a user.
func (r *mongoTokenRepo) GetByEmail(ctx context.Context, email string) (*models.TokenRecord, error) {
	var record models.TokenRecord
	err := r.coll.FindOne(ctx, bson.M{"userEmail": email}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListEmails returns the email of every user with stored tokens.
func (r *mongoTokenRepo) ListEmails(ctx context.Context) ([]string, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"userEmail": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var emails []string
	for cursor.Next(ctx) {
		var record models.TokenRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		emails = append(emails, record.UserEmail)
	}
	return emails, cursor.Err()
}

// DeleteByEmail removes a user's token record.
func (r *mongoTokenRepo) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"userEmail": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
