package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	testdb "github.com/appforge/forge/test/database"
)

func createTestEvent(t *testing.T, client *ent.Client, channel string, createdAt time.Time) *ent.Event {
	t.Helper()
	evt, err := client.Event.Create().
		SetProjectID("proj-e").
		SetChannel(channel).
		SetPayload(map[string]interface{}{"type": "message.new"}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return evt
}

func TestGetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	now := time.Now()
	e1 := createTestEvent(t, client.Client, "chat:proj-e", now)
	e2 := createTestEvent(t, client.Client, "chat:proj-e", now)
	createTestEvent(t, client.Client, "chat:other", now)

	events, err := svc.GetEventsSince(ctx, "chat:proj-e", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, e1.ID, events[0].ID)
	assert.Equal(t, e2.ID, events[1].ID)

	events, err = svc.GetEventsSince(ctx, "chat:proj-e", e1.ID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, e2.ID, events[0].ID)
}

func TestCleanupExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	createTestEvent(t, client.Client, "chat:proj-e", time.Now().Add(-48*time.Hour))
	fresh := createTestEvent(t, client.Client, "chat:proj-e", time.Now())

	removed, err := svc.CleanupExpiredEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	remaining, err := svc.GetEventsSince(ctx, "chat:proj-e", 0, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}
