// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tablebot/config"

	"github.com/go-redis/redis/v8"
)

var (
	// MemoryCacheClient is the dedicated client for returning-user memory.
	MemoryCacheClient *redis.Client
)

// InitMemoryCache initializes the Redis client backing the user-memory store.
func InitMemoryCache() {
	MemoryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMemoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := MemoryCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Memory): %v", err)
	}
}

// GetMemoryCacheClient returns the Redis client for user memory.
func GetMemoryCacheClient() *redis.Client {
	if MemoryCacheClient == nil {
		InitMemoryCache()
	}
	return MemoryCacheClient
}
