package telegramLinkRepo

import (
	"aide/database"
	"aide/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type TelegramLinkRepository interface {
	Link(ctx context.Context, link models.TelegramLink) error
	GetByChatID(ctx context.Context, chatID int64) (*models.TelegramLink, error)
	GetByEmail(ctx context.Context, email string) (*models.TelegramLink, error)
	Unlink(ctx context.Context, chatID int64) error
}

type mongoTelegramLinkRepo struct {
	coll *mongo.Collection
}

// NewMongoTelegramLinkRepo returns a new TelegramLinkRepository instance using MongoDB.
func NewMongoTelegramLinkRepo() TelegramLinkRepository {
	db := database.DB()
	return &mongoTelegramLinkRepo{
		coll: db.Collection("telegram_links"),
	}
}
