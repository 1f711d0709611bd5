package knowledgeRepo

import (
	"aide/models"
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Get returns the knowledge entry for a user.
func (r *mongoKnowledgeRepo) Get(ctx context.Context, email string) (*models.KnowledgeEntry, error) {
	var entry models.KnowledgeEntry
	err := r.coll.FindOne(ctx, bson.M{"userEmail": email}).Decode(&entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Save stores or replaces the knowledge entry keyed by user email.
func (r *mongoKnowledgeRepo) Save(ctx context.Context, entry models.KnowledgeEntry) error {
	entry.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"userEmail": entry.UserEmail}, entry, opts)
	return err
}

// Backup snapshots the given entry content and returns the backup ID.
func (r *mongoKnowledgeRepo) Backup(ctx context.Context, entry models.KnowledgeEntry) (string, error) {
	backup := models.KnowledgeBackup{
		ID:        uuid.New().String(),
		UserEmail: entry.UserEmail,
		Content:   entry.Content,
		CreatedAt: time.Now(),
	}
	if _, err := r.backups.InsertOne(ctx, backup); err != nil {
		return "", err
	}
	return backup.ID, nil
}

// ListBackups returns the most recent backups for a user, newest first.
func (r *mongoKnowledgeRepo) ListBackups(ctx context.Context, email string, limit int64) ([]models.KnowledgeBackup, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.backups.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var backups []models.KnowledgeBackup
	if err := cursor.All(ctx, &backups); err != nil {
		return nil, err
	}
	return backups, nil
}
