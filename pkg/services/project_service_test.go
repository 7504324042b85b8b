package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/pkg/queue"
	testdb "github.com/appforge/forge/test/database"
)

func TestProjectTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client, nil)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-1", "user-1")
	build := createTestBuild(t, client.Client, "proj-1", "user-1")

	t.Run("queued transition sticks and verifies", func(t *testing.T) {
		require.NoError(t, svc.TransitionToQueued(ctx, "proj-1", build.ID))

		p, err := svc.GetProject(ctx, "proj-1")
		require.NoError(t, err)
		assert.Equal(t, project.BuildStatusQueued, p.BuildStatus)
		require.NotNil(t, p.CurrentBuildID)
		assert.Equal(t, build.ID, *p.CurrentBuildID)
	})

	t.Run("building clears prior completion timestamp", func(t *testing.T) {
		require.NoError(t, svc.TransitionToBuilding(ctx, "proj-1", build.ID))

		p, err := svc.GetProject(ctx, "proj-1")
		require.NoError(t, err)
		assert.Equal(t, project.BuildStatusBuilding, p.BuildStatus)
		assert.NotNil(t, p.LastBuildStartedAt)
		assert.Nil(t, p.LastBuildCompletedAt)
	})

	t.Run("deployed records preview url and lane", func(t *testing.T) {
		require.NoError(t, svc.MarkDeployed(ctx, "proj-1", "ver-1", "v1", "https://preview/p1", "static"))

		p, err := svc.GetProject(ctx, "proj-1")
		require.NoError(t, err)
		assert.Equal(t, project.BuildStatusDeployed, p.BuildStatus)
		assert.Equal(t, "https://preview/p1", *p.PreviewURL)
		assert.Equal(t, "static", *p.DeployLane)
		assert.Equal(t, "v1", *p.CurrentVersionName)
		assert.NotNil(t, p.LastBuildCompletedAt)
	})

	t.Run("failed stamps completion", func(t *testing.T) {
		require.NoError(t, svc.MarkFailed(ctx, "proj-1"))

		p, err := svc.GetProject(ctx, "proj-1")
		require.NoError(t, err)
		assert.Equal(t, project.BuildStatusFailed, p.BuildStatus)
	})
}

func TestAuthorizeOwner(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client, nil)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-owned", "user-1")

	_, err := svc.AuthorizeOwner(ctx, "proj-owned", "user-1")
	require.NoError(t, err)

	_, err = svc.AuthorizeOwner(ctx, "proj-owned", "user-2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.AuthorizeOwner(ctx, "no-such-project", "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRollbackDeferralPolicy(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client, nil)
	policy := NewRollbackDeferralPolicy(svc)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-rb", "user-1")
	job := &ent.Job{Payload: map[string]interface{}{"project_id": "proj-rb"}}

	setStatus := func(s project.BuildStatus) {
		require.NoError(t, client.Project.UpdateOneID("proj-rb").SetBuildStatus(s).Exec(ctx))
	}

	setStatus(project.BuildStatusDeployed)
	d, err := policy.ShouldDefer(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, queue.DeferralRun, d)

	setStatus(project.BuildStatusRollingBack)
	d, err = policy.ShouldDefer(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, queue.DeferralRequeue, d)

	setStatus(project.BuildStatusRollbackFailed)
	d, err = policy.ShouldDefer(ctx, job)
	require.NoError(t, err)
	assert.Equal(t, queue.DeferralCancel, d)

	// Jobs with no project reference always run.
	d, err = policy.ShouldDefer(ctx, &ent.Job{Payload: map[string]interface{}{}})
	require.NoError(t, err)
	assert.Equal(t, queue.DeferralRun, d)

	// A vanished project cancels rather than spins.
	d, err = policy.ShouldDefer(ctx, &ent.Job{Payload: map[string]interface{}{"project_id": "gone"}})
	require.NoError(t, err)
	assert.Equal(t, queue.DeferralCancel, d)
}
