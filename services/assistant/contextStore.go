package assistant

import (
	"context"
	"encoding/json"
	"time"

	"aide/models"

	"github.com/go-redis/redis/v8"
)

const (
	chatContextPrefix = "chat:ctx:"
	maxHistoryTurns   = 20
)

// RedisContextStore keeps per-user conversation history between requests.
// Keys are scoped by email, so concurrent users never share state.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, email string) (*models.ChatContext, error) {
	key := chatContextPrefix + email
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ChatContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chatCtx models.ChatContext
	if err := json.Unmarshal([]byte(data), &chatCtx); err != nil {
		return nil, err
	}
	return &chatCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, email string, chatCtx *models.ChatContext) error {
	if len(chatCtx.History) > maxHistoryTurns {
		chatCtx.History = chatCtx.History[len(chatCtx.History)-maxHistoryTurns:]
	}
	key := chatContextPrefix + email
	b, err := json.Marshal(chatCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, email string) error {
	key := chatContextPrefix + email
	return s.client.Del(ctx, key).Err()
}
