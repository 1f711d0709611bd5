package tokensRepo

import (
	"aide/database"
	"aide/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type TokenRepository interface {
	Upsert(ctx context.Context, record models.TokenRecord) error
	GetByEmail(ctx context.Context, email string) (*models.TokenRecord, error)
	ListEmails(ctx context.Context) ([]string, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type mongoTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoTokenRepo returns a new TokenRepository instance using MongoDB.
func NewMongoTokenRepo() TokenRepository {
	db := database.DB()
	return &mongoTokenRepo{
		coll: db.Collection("user_tokens"),
	}
}
