package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/appforge/forge/test/database"
)

func TestCreateForBuildAllocatesCounters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewVersionService(client.Client)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-v", "user-1")
	b1 := createTestBuild(t, client.Client, "proj-v", "user-1")
	b2 := createTestBuild(t, client.Client, "proj-v", "user-1")

	v1, err := svc.CreateForBuild(ctx, "", "proj-v", b1.ID, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.DisplayCounter)
	assert.Equal(t, "v1", v1.DisplayName)
	assert.Len(t, v1.ID, 26)

	v2, err := svc.CreateForBuild(ctx, "", "proj-v", b2.ID, "sess-2")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.DisplayCounter)
	assert.Equal(t, "v2", v2.DisplayName)
}

func TestCreateForBuildIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewVersionService(client.Client)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-i", "user-1")
	b := createTestBuild(t, client.Client, "proj-i", "user-1")

	first, err := svc.CreateForBuild(ctx, "", "proj-i", b.ID, "sess-1")
	require.NoError(t, err)

	// Retried stage converges on the existing row.
	second, err := svc.CreateForBuild(ctx, "", "proj-i", b.ID, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.DisplayCounter, second.DisplayCounter)
}

func TestSetSemanticsKeepsDisplayName(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewVersionService(client.Client)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-s", "user-1")
	b := createTestBuild(t, client.Client, "proj-s", "user-1")

	v, err := svc.CreateForBuild(ctx, "", "proj-s", b.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.SetSemantics(ctx, v.ID, 1, 2, 3, "minor"))

	updated, err := svc.GetByBuild(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Major)
	assert.Equal(t, 2, updated.Minor)
	assert.Equal(t, 3, updated.Patch)
	assert.Equal(t, "v1", updated.DisplayName)
}
