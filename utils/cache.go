// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"savora/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (zone snapshots, catalog reads).
	CacheClient *redis.Client
	// QuoteCacheClient is the dedicated client for delivery-quote sessions.
	QuoteCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitQuoteCache initializes the Redis client for delivery-quote sessions.
func InitQuoteCache() {
	QuoteCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQuoteDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := QuoteCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Quote Cache): %v", err)
	}
}

// GetQuoteCacheClient returns the Redis client for delivery-quote sessions.
func GetQuoteCacheClient() *redis.Client {
	if QuoteCacheClient == nil {
		InitQuoteCache()
	}
	return QuoteCacheClient
}
