// Package limits implements rate limiting, leases, and the global limit
// controller that pauses the build pipeline when upstream capacity runs out.
//
// Redis backs the short-lived coordination state (counters, leases,
// idempotency markers); the pause itself is durable in the database so every
// replica observes it.
package limits

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/appforge/forge/pkg/config"
)

// NewRedisClient creates the shared redis client for the limits subsystem
// and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg *config.LimitsConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
