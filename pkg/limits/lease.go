package limits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLeaseHeld indicates another holder owns the lease.
var ErrLeaseHeld = errors.New("lease held by another owner")

// releaseScript deletes the lease key only if the caller still owns it.
// Compare-and-delete must be atomic: between GET and DEL the lease could
// expire and be re-acquired by someone else.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// renewScript extends the TTL only for the current owner.
var renewScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0
`)

// Lease is a TTL-based mutual exclusion primitive over redis, used to
// serialize rollbacks per project. A held lease auto-renews at half TTL
// until released, so a healthy holder never loses it mid-operation, while a
// crashed holder frees it within one TTL.
type Lease struct {
	client *redis.Client
	key    string
	owner  string
	ttl    time.Duration

	stopRenew context.CancelFunc
	renewWG   sync.WaitGroup
}

// LeaseManager acquires leases against a shared redis client.
type LeaseManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaseManager creates a lease manager with the given default TTL.
func NewLeaseManager(client *redis.Client, ttl time.Duration) *LeaseManager {
	return &LeaseManager{client: client, ttl: ttl}
}

// Acquire takes the named lease, or returns ErrLeaseHeld.
// The returned lease renews itself until Release is called.
func (m *LeaseManager) Acquire(ctx context.Context, name string) (*Lease, error) {
	owner := uuid.NewString()
	key := "lease:" + name

	ok, err := m.client.SetNX(ctx, key, owner, m.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lease %s: %w", name, err)
	}
	if !ok {
		return nil, ErrLeaseHeld
	}

	lease := &Lease{
		client: m.client,
		key:    key,
		owner:  owner,
		ttl:    m.ttl,
	}

	renewCtx, cancel := context.WithCancel(context.Background())
	lease.stopRenew = cancel
	lease.renewWG.Add(1)
	go lease.renewLoop(renewCtx)

	return lease, nil
}

// renewLoop extends the lease at half-TTL intervals until Release.
func (l *Lease) renewLoop(ctx context.Context) {
	defer l.renewWG.Done()

	ticker := time.NewTicker(l.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := renewScript.Run(ctx, l.client, []string{l.key}, l.owner, l.ttl.Milliseconds()).Int()
			if err != nil {
				slog.Warn("Lease renewal failed", "key", l.key, "error", err)
				continue
			}
			if res == 0 {
				// Lost ownership — expired and taken by someone else.
				slog.Warn("Lease lost during renewal", "key", l.key)
				return
			}
		}
	}
}

// Release stops renewal and frees the lease if still owned.
func (l *Lease) Release(ctx context.Context) error {
	l.stopRenew()
	l.renewWG.Wait()

	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.owner).Err(); err != nil {
		return fmt.Errorf("failed to release lease %s: %w", l.key, err)
	}
	return nil
}
