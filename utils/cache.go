// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"aide/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for session/auth caching.
	AuthCacheClient *redis.Client
	// ChatContextCacheClient holds per-user conversation state for the assistant.
	ChatContextCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	ChatContextCacheClient = newRedisClient(config.AppConfig.RedisChatContextDB)
}

// GetAuthCacheClient returns the Redis client for auth/session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetChatContextCacheClient returns the Redis client for conversation context.
func GetChatContextCacheClient() *redis.Client {
	if ChatContextCacheClient == nil {
		ChatContextCacheClient = newRedisClient(config.AppConfig.RedisChatContextDB)
	}
	return ChatContextCacheClient
}
