package limits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyFirstTime(t *testing.T) {
	_, client := setupRedis(t)
	s := NewIdempotencyStore(client, time.Hour)
	ctx := context.Background()

	first, err := s.FirstTime(ctx, "delivered:evt-1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := s.FirstTime(ctx, "delivered:evt-1")
	require.NoError(t, err)
	assert.False(t, second)
}

func TestIdempotencyTTLExpiry(t *testing.T) {
	mr, client := setupRedis(t)
	s := NewIdempotencyStore(client, time.Minute)
	ctx := context.Background()

	first, err := s.FirstTime(ctx, "delivered:evt-1")
	require.NoError(t, err)
	require.True(t, first)

	mr.FastForward(61 * time.Second)

	again, err := s.FirstTime(ctx, "delivered:evt-1")
	require.NoError(t, err)
	assert.True(t, again, "marker re-arms after TTL")
}

func TestIdempotencyForget(t *testing.T) {
	_, client := setupRedis(t)
	s := NewIdempotencyStore(client, time.Hour)
	ctx := context.Background()

	_, err := s.FirstTime(ctx, "delivered:evt-1")
	require.NoError(t, err)

	require.NoError(t, s.Forget(ctx, "delivered:evt-1"))

	first, err := s.FirstTime(ctx, "delivered:evt-1")
	require.NoError(t, err)
	assert.True(t, first)
}
