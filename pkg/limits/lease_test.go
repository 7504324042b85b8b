package limits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaseAcquireRelease(t *testing.T) {
	_, client := setupRedis(t)
	m := NewLeaseManager(client, time.Minute)
	ctx := context.Background()

	lease, err := m.Acquire(ctx, "rollback:proj-1")
	require.NoError(t, err)

	// Second acquire while held fails
	_, err = m.Acquire(ctx, "rollback:proj-1")
	assert.ErrorIs(t, err, ErrLeaseHeld)

	require.NoError(t, lease.Release(ctx))

	// Released lease can be re-acquired
	lease2, err := m.Acquire(ctx, "rollback:proj-1")
	require.NoError(t, err)
	require.NoError(t, lease2.Release(ctx))
}

func TestLeaseIsolatedByName(t *testing.T) {
	_, client := setupRedis(t)
	m := NewLeaseManager(client, time.Minute)
	ctx := context.Background()

	l1, err := m.Acquire(ctx, "rollback:proj-1")
	require.NoError(t, err)
	defer func() { _ = l1.Release(ctx) }()

	l2, err := m.Acquire(ctx, "rollback:proj-2")
	require.NoError(t, err)
	require.NoError(t, l2.Release(ctx))
}

func TestLeaseExpiresWithoutRenewal(t *testing.T) {
	mr, client := setupRedis(t)
	m := NewLeaseManager(client, time.Minute)
	ctx := context.Background()

	lease, err := m.Acquire(ctx, "rollback:proj-1")
	require.NoError(t, err)
	// Stop the renewal loop without deleting the key, simulating a crashed
	// holder; the TTL then frees the lease on its own.
	lease.stopRenew()
	lease.renewWG.Wait()

	mr.FastForward(61 * time.Second)

	lease2, err := m.Acquire(ctx, "rollback:proj-1")
	require.NoError(t, err)
	require.NoError(t, lease2.Release(ctx))
}

func TestLeaseReleaseOnlyOwn(t *testing.T) {
	mr, client := setupRedis(t)
	m := NewLeaseManager(client, time.Minute)
	ctx := context.Background()

	lease, err := m.Acquire(ctx, "rollback:proj-1")
	require.NoError(t, err)
	lease.stopRenew()
	lease.renewWG.Wait()

	// Lease expires and someone else takes it
	mr.FastForward(61 * time.Second)
	other, err := m.Acquire(ctx, "rollback:proj-1")
	require.NoError(t, err)
	defer func() { _ = other.Release(ctx) }()

	// Stale holder's release must not free the new holder's lease
	require.NoError(t, lease.Release(ctx))
	_, err = m.Acquire(ctx, "rollback:proj-1")
	assert.ErrorIs(t, err, ErrLeaseHeld)
}
