package crucialRepo

import (
	"aide/database"
	"aide/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type CrucialEventRepository interface {
	Add(ctx context.Context, event models.CrucialEvent) (string, error)
	GetByEmail(ctx context.Context, email string) ([]models.CrucialEvent, error)
	Remove(ctx context.Context, email, name string) error
}

type mongoCrucialRepo struct {
	coll *mongo.Collection
}

// NewMongoCrucialRepo returns a new CrucialEventRepository instance using MongoDB.
func NewMongoCrucialRepo() CrucialEventRepository {
	db := database.DB()
	return &mongoCrucialRepo{
		coll: db.Collection("crucial_events"),
	}
}
