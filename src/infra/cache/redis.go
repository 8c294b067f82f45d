// Package cache provides the Redis client used for session revocation.
package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"remixjokes/src/infra/config"
)

// New creates a Redis client and verifies the connection.
func New(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("redis connection established", "addr", cfg.Addr, "db", cfg.DB)
	return client, nil
}
