// Package redis wraps the Redis connection and the rate limiter built
// on it. Redis is optional: when no address is configured the API runs
// without rate limiting.
package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client for the given config.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Ping verifies the connection is usable.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
