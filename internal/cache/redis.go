package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var Client *redis.Client

// InitRedis initializes Redis connection
func InitRedis(addr, password string, db int) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx := context.Background()
	if err := Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Println("✓ Redis connected successfully")
	return nil
}

// Close closes the Redis connection
func Close() error {
	if Client != nil {
		return Client.Close()
	}
	return nil
}

// GetJSON loads a cached JSON value into dest. Returns false on miss or
// decode failure; a broken cache entry is treated as a miss.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	raw, err := Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		Client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores value as JSON under key with the given TTL. Cache write
// failures are ignored; callers always have the source data.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	Client.Set(ctx, key, raw, ttl)
}

// Invalidate removes keys matching the given pattern
func Invalidate(ctx context.Context, pattern string) {
	if Client == nil {
		return
	}
	keys, err := Client.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	Client.Del(ctx, keys...)
}
