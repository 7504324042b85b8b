package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/job"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/services"
	testdb "github.com/appforge/forge/test/database"
)

func setupHousekeeping(t *testing.T) (*HousekeepingWorker, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	w := NewHousekeepingWorker(client.Client,
		services.NewEventService(client.Client), config.DefaultSystemConfig())
	return w, client.Client
}

func seedTerminalJob(t *testing.T, client *ent.Client, status job.Status, finishedAt time.Time) {
	t.Helper()
	_, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobID(uuid.New().String()).
		SetQueue(config.QueueDeploy).
		SetName("deploy").
		SetStatus(status).
		SetFinishedAt(finishedAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestHousekeepingPrunesJobsBeyondRetention(t *testing.T) {
	w, client := setupHousekeeping(t)
	w.keepCompleted = 2
	w.keepFailed = 3
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedTerminalJob(t, client, job.StatusCompleted, base.Add(time.Duration(i)*time.Minute))
		seedTerminalJob(t, client, job.StatusFailed, base.Add(time.Duration(i)*time.Minute))
	}
	// Unrecoverable and canceled rows share the failure bucket.
	seedTerminalJob(t, client, job.StatusUnrecoverable, base.Add(10*time.Minute))

	require.NoError(t, w.Handle(ctx, nil))

	completed, err := client.Job.Query().Where(job.StatusEQ(job.StatusCompleted)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, completed)

	failures, err := client.Job.Query().
		Where(job.StatusIn(job.StatusFailed, job.StatusUnrecoverable, job.StatusCanceled)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, failures)

	// The newest failure rows are the ones that survive.
	unrecoverable, err := client.Job.Query().Where(job.StatusEQ(job.StatusUnrecoverable)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unrecoverable)
}

func TestHousekeepingKeepsJobsUnderRetention(t *testing.T) {
	w, client := setupHousekeeping(t)
	w.keepCompleted = 2
	w.keepFailed = 2
	ctx := context.Background()

	seedTerminalJob(t, client, job.StatusCompleted, time.Now().Add(-time.Hour))

	// A live job must never be touched regardless of age.
	_, err := client.Job.Create().
		SetID(uuid.New().String()).
		SetJobID(uuid.New().String()).
		SetQueue(config.QueueStageOne).
		SetName("build").
		SetStatus(job.StatusWaiting).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, w.Handle(ctx, nil))

	total, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
