package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and Redis periodically and keeps a
// snapshot for the /health endpoint.
func StartHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client, interval time.Duration) {
	go func() {
		for {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			status := HealthStatus{CheckedAt: time.Now()}
			status.Mongo = mongoClient.Ping(ctx, nil) == nil
			status.Redis = redisClient.Ping(ctx).Err() == nil
			cancel()

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()

			time.Sleep(interval)
		}
	}()
}
