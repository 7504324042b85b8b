package accounting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/pkg/config"
)

func TestDisabledAccountingIsNoOp(t *testing.T) {
	// nil ent client: disabled mode must short-circuit before touching it
	s := NewService(nil, &config.AccountingConfig{Enabled: false})
	ctx := context.Background()

	assert.False(t, s.Enabled())
	require.NoError(t, s.Preflight(ctx, "user-1"))
	require.NoError(t, s.Start(ctx, "build-1", "user-1"))

	seconds, err := s.End(ctx, "build-1")
	require.NoError(t, err)
	assert.Zero(t, seconds)

	require.NoError(t, s.Refund(ctx, "build-1"))
}
