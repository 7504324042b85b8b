package limits

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore records that a side effect already happened, keyed by a
// caller-chosen marker. Used for delivery acknowledgements where performing
// the effect twice is harmless but noisy (e.g. MarkDelivered on the event
// timeline).
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates an idempotency store with the given marker TTL.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// FirstTime atomically records key and reports whether this call was the
// first to do so within the TTL window.
func (s *IdempotencyStore) FirstTime(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, "idem:"+key, "1", s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency check failed for %s: %w", key, err)
	}
	return ok, nil
}

// Forget removes the marker, re-arming the key.
func (s *IdempotencyStore) Forget(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, "idem:"+key).Err(); err != nil {
		return fmt.Errorf("failed to forget idempotency key %s: %w", key, err)
	}
	return nil
}
