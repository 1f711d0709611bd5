package telegramLinkRepo

import (
	"aide/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Link stores or replaces the mapping for a Telegram chat. Re-linking a chat
// to a different email overwrites the previous mapping.
func (r *mongoTelegramLinkRepo) Link(ctx context.Context, link models.TelegramLink) error {
	link.CreatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"chatId": link.ChatID}, link, opts)
	return err
}

// GetByChatID returns the link for a Telegram chat.
func (r *mongoTelegramLinkRepo) GetByChatID(ctx context.Context, chatID int64) (*models.TelegramLink, error) {
	var link models.TelegramLink
	err := r.coll.FindOne(ctx, bson.M{"chatId": chatID}).Decode(&link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByEmail returns the link for an app user, if any.
func (r *mongoTelegramLinkRepo) GetByEmail(ctx context.Context, email string) (*models.TelegramLink, error) {
	var link models.TelegramLink
	err := r.coll.FindOne(ctx, bson.M{"userEmail": email}).Decode(&link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Unlink removes the mapping for a Telegram chat.
func (r *mongoTelegramLinkRepo) Unlink(ctx context.Context, chatID int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"chatId": chatID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
