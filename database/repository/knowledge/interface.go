package knowledgeRepo

import (
	"aide/database"
	"aide/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type KnowledgeRepository interface {
	Get(ctx context.Context, email string) (*models.KnowledgeEntry, error)
	Save(ctx context.Context, entry models.KnowledgeEntry) error
	Backup(ctx context.Context, entry models.KnowledgeEntry) (string, error)
	ListBackups(ctx context.Context, email string, limit int64) ([]models.KnowledgeBackup, error)
}

type mongoKnowledgeRepo struct {
	coll    *mongo.Collection
	backups *mongo.Collection
}

// NewMongoKnowledgeRepo returns a new KnowledgeRepository instance using MongoDB.
func NewMongoKnowledgeRepo() KnowledgeRepository {
	db := database.DB()
	return &mongoKnowledgeRepo{
		coll:    db.Collection("knowledge_entries"),
		backups: db.Collection("knowledge_backups"),
	}
}
