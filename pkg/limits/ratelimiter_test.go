package limits

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRateLimiterAllowWithinLimit(t *testing.T) {
	_, client := setupRedis(t)
	rl := NewRateLimiter(client, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := rl.Allow(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, allowed, "call %d should be allowed", i+1)
	}
}

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	_, client := setupRedis(t)
	rl := NewRateLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _, err := rl.Allow(ctx, "user-1")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, retryAfter, err := rl.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)
}

func TestRateLimiterKeysIsolated(t *testing.T) {
	_, client := setupRedis(t)
	rl := NewRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	allowed, _, err := rl.Allow(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, allowed)

	// user-1 is exhausted, user-2 is not
	allowed, _, _ = rl.Allow(ctx, "user-1")
	assert.False(t, allowed)
	allowed, _, err = rl.Allow(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	mr, client := setupRedis(t)
	rl := NewRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	allowed, _, err := rl.Allow(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, allowed)
	allowed, _, _ = rl.Allow(ctx, "user-1")
	require.False(t, allowed)

	// Window passes — counter expires and a fresh one starts
	mr.FastForward(61 * time.Second)

	allowed, _, err = rl.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimiterFailsOpen(t *testing.T) {
	mr, client := setupRedis(t)
	rl := NewRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	mr.Close()

	allowed, _, err := rl.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, allowed, "redis outage must not block initiation")
}

func TestRateLimiterReset(t *testing.T) {
	_, client := setupRedis(t)
	rl := NewRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	_, _, _ = rl.Allow(ctx, "user-1")
	allowed, _, _ := rl.Allow(ctx, "user-1")
	require.False(t, allowed)

	require.NoError(t, rl.Reset(ctx, "user-1"))

	allowed, _, err := rl.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, allowed)
}
