package limits

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter over redis. Each key gets an
// atomically incremented counter whose TTL starts on the first hit of the
// window; when the counter exceeds the limit the call is rejected with the
// remaining window as retry-after.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter creates a rate limiter with the given per-window limit.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow consumes one slot for key. Returns (false, retryAfter, nil) when the
// limit is exhausted.
//
// Redis failures FAIL OPEN: throttling is a protective convenience, and a
// broken redis must not take user-facing build initiation down with it.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := "ratelimit:" + key

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// NX: only set the TTL when the key has none, i.e. on the first hit of
	// a fresh window. Subsequent hits keep the original window deadline.
	pipe.ExpireNX(ctx, redisKey, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Rate limiter unavailable, failing open", "key", key, "error", err)
		return true, 0, nil
	}

	if incr.Val() <= int64(rl.limit) {
		return true, 0, nil
	}

	ttl, err := rl.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = rl.window
	}
	return false, ttl, nil
}

// Reset clears the counter for key. Used by tests and admin tooling.
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	if err := rl.client.Del(ctx, "ratelimit:"+key).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}
