package build

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/buildoperation"
	entbuild "github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
	testdb "github.com/appforge/forge/test/database"
)

// fakeEnqueuer records enqueue calls and can be told to fail.
type fakeEnqueuer struct {
	requests []queue.JobRequest
	fail     error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, req queue.JobRequest) (*queue.EnqueueResult, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.requests = append(f.requests, req)
	return &queue.EnqueueResult{Job: &ent.Job{JobID: req.JobID}}, nil
}

type fakeThrottle struct {
	allow      bool
	retryAfter time.Duration
}

func (f *fakeThrottle) Allow(context.Context, string) (bool, time.Duration, error) {
	return f.allow, f.retryAfter, nil
}

type fakeLimit struct {
	status limits.Status
}

func (f *fakeLimit) Status(context.Context) limits.Status { return f.status }

func setupInitiator(t *testing.T, enq Enqueuer) (*Initiator, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	projects := services.NewProjectService(client.Client, nil)
	timeline := services.NewTimelineService(client.Client, client.DB(), nil)
	init := NewInitiator(client.Client, projects, timeline, enq, nil, nil, config.DefaultWorkspaceConfig())
	return init, client.Client
}

func TestInitiateHappyPath(t *testing.T) {
	enq := &fakeEnqueuer{}
	init, client := setupInitiator(t, enq)
	ctx := context.Background()

	_, err := client.Project.Create().SetID("p1").SetOwnerID("u1").Save(ctx)
	require.NoError(t, err)

	res, err := init.Initiate(ctx, InitiateRequest{
		UserID:         "u1",
		ProjectID:      "p1",
		Prompt:         "hello world",
		IsInitialBuild: true,
		OperationID:    "op-1",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusQueued, res.Status)
	assert.Len(t, res.BuildID, 26)
	assert.Len(t, res.VersionID, 26)
	assert.Equal(t, "build:p1:op-1", res.JobID)
	assert.Equal(t, filepath.Join(config.DefaultWorkspaceConfig().BaseDir, "u1", "p1"), res.ProjectPath)

	// Build row exists before the project points at it.
	b, err := client.Build.Get(ctx, res.BuildID)
	require.NoError(t, err)
	assert.Equal(t, entbuild.StatusStarted, b.Status)
	assert.True(t, b.IsInitialBuild)

	p, err := client.Project.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusQueued, p.BuildStatus)
	require.NotNil(t, p.CurrentBuildID)
	assert.Equal(t, res.BuildID, *p.CurrentBuildID)

	// The operation row carries the patched job id.
	op, err := client.BuildOperation.Query().
		Where(buildoperation.ProjectIDEQ("p1"), buildoperation.OperationIDEQ("op-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.JobID, op.JobID)
	assert.Equal(t, buildoperation.StatusQueued, op.Status)

	require.Len(t, enq.requests, 1)
	assert.Equal(t, config.QueueStageOne, enq.requests[0].Queue)
	assert.Equal(t, res.BuildID, enq.requests[0].Payload["build_id"])
}

func TestInitiateIdempotentByOperationID(t *testing.T) {
	enq := &fakeEnqueuer{}
	init, client := setupInitiator(t, enq)
	ctx := context.Background()

	_, err := client.Project.Create().SetID("p2").SetOwnerID("u1").Save(ctx)
	require.NoError(t, err)

	req := InitiateRequest{UserID: "u1", ProjectID: "p2", Prompt: "again", OperationID: "op-42"}

	first, err := init.Initiate(ctx, req)
	require.NoError(t, err)

	second, err := init.Initiate(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.BuildID, second.BuildID)
	assert.Equal(t, first.VersionID, second.VersionID)
	assert.Equal(t, first.JobID, second.JobID)

	// Exactly one operation row, one build, one enqueue.
	opCount, err := client.BuildOperation.Query().
		Where(buildoperation.ProjectIDEQ("p2")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, opCount)

	buildCount, err := client.Build.Query().
		Where(entbuild.ProjectIDEQ("p2")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, buildCount)

	assert.Len(t, enq.requests, 1)
}

func TestInitiateWithoutOperationID(t *testing.T) {
	enq := &fakeEnqueuer{}
	init, client := setupInitiator(t, enq)
	ctx := context.Background()

	_, err := client.Project.Create().SetID("p3").SetOwnerID("u1").Save(ctx)
	require.NoError(t, err)

	res, err := init.Initiate(ctx, InitiateRequest{UserID: "u1", ProjectID: "p3", Prompt: "x"})
	require.NoError(t, err)

	// Job id falls back to the build id.
	assert.Equal(t, "build:p3:"+res.BuildID, res.JobID)

	opCount, err := client.BuildOperation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, opCount)
}

func TestInitiateAuthorization(t *testing.T) {
	init, client := setupInitiator(t, &fakeEnqueuer{})
	ctx := context.Background()

	_, err := client.Project.Create().SetID("p4").SetOwnerID("owner").Save(ctx)
	require.NoError(t, err)

	_, err = init.Initiate(ctx, InitiateRequest{UserID: "intruder", ProjectID: "p4", Prompt: "x"})
	assert.ErrorIs(t, err, services.ErrAccessDenied)

	_, err = init.Initiate(ctx, InitiateRequest{UserID: "owner", ProjectID: "missing", Prompt: "x"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestInitiateEnqueueFailure(t *testing.T) {
	enq := &fakeEnqueuer{fail: errors.New("queue storage down")}
	init, client := setupInitiator(t, enq)
	ctx := context.Background()

	_, err := client.Project.Create().SetID("p5").SetOwnerID("u1").Save(ctx)
	require.NoError(t, err)

	res, err := init.Initiate(ctx, InitiateRequest{UserID: "u1", ProjectID: "p5", Prompt: "x", OperationID: "op-f"})
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, StatusQueueFailed, res.Status)
	assert.Contains(t, res.Error, "queue storage down")

	p, err := client.Project.Get(ctx, "p5")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusFailed, p.BuildStatus)

	op, err := client.BuildOperation.Query().
		Where(buildoperation.OperationIDEQ("op-f")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, buildoperation.StatusFailed, op.Status)
}

func TestInitiateThrottled(t *testing.T) {
	init := NewInitiator(nil, nil, nil, nil,
		&fakeThrottle{allow: false, retryAfter: 30 * time.Second}, nil,
		config.DefaultWorkspaceConfig())

	_, err := init.Initiate(context.Background(), InitiateRequest{UserID: "u1", ProjectID: "p"})
	var throttled *ThrottledError
	require.ErrorAs(t, err, &throttled)
	assert.Equal(t, 30*time.Second, throttled.RetryAfter)
}

func TestInitiateGlobalLimit(t *testing.T) {
	resetAt := time.Now().Add(10 * time.Minute)
	init := NewInitiator(nil, nil, nil, nil, nil,
		&fakeLimit{status: limits.Status{Limited: true, Reason: "usage limit", ResetAt: &resetAt}},
		config.DefaultWorkspaceConfig())

	_, err := init.Initiate(context.Background(), InitiateRequest{UserID: "u1", ProjectID: "p"})
	var limited *LimitedError
	require.ErrorAs(t, err, &limited)
	assert.Equal(t, "usage limit", limited.Reason)
	assert.Greater(t, limited.RetryAfter(), 9*time.Minute)
}
