package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/services"
	testdb "github.com/appforge/forge/test/database"
)

type fakeDeployer struct {
	mu   sync.Mutex
	reqs []DeployRequest
	err  error
}

func (f *fakeDeployer) Deploy(_ context.Context, req DeployRequest) (*DeployResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &DeployResult{
		PreviewURL: "https://preview.test/" + req.ProjectID + "/" + req.VersionName,
		Lane:       req.Lane,
	}, nil
}

type deployFixture struct {
	worker    *DeployWorker
	client    *ent.Client
	deployer  *fakeDeployer
	announcer *fakeAnnouncer
	publisher *fakePublisher
	wsCfg     *config.WorkspaceConfig
}

func setupDeployWorker(t *testing.T) *deployFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	f := &deployFixture{
		client:    client.Client,
		deployer:  &fakeDeployer{},
		announcer: &fakeAnnouncer{},
		publisher: &fakePublisher{},
		wsCfg: &config.WorkspaceConfig{
			BaseDir:    t.TempDir(),
			HiddenDir:  ".forge",
			IgnoreFile: ".gitignore",
		},
	}
	f.worker = NewDeployWorker(
		client.Client,
		services.NewProjectService(client.Client, nil),
		services.NewVersionService(client.Client),
		f.announcer,
		f.publisher,
		f.deployer,
		f.wsCfg,
	)
	return f
}

func (f *deployFixture) seedAiCompleted(t *testing.T, projectID, userID string) (*ent.Build, *ent.Version, string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.client.Project.Create().SetID(projectID).SetOwnerID(userID).Save(ctx)
	require.NoError(t, err)

	b, err := f.client.Build.Create().
		SetID(ulid.Make().String()).
		SetProjectID(projectID).
		SetUserID(userID).
		SetStatus(build.StatusAiCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	v, err := services.NewVersionService(f.client).CreateForBuild(ctx, "", projectID, b.ID, "sess-d")
	require.NoError(t, err)

	projectPath := filepath.Join(f.wsCfg.BaseDir, userID, projectID)
	require.NoError(t, EnsureWorkspace(projectPath, f.wsCfg.HiddenDir, f.wsCfg.IgnoreFile))
	return b, v, projectPath
}

func deployJob(b *ent.Build, projectPath string, attempt int) *ent.Job {
	return &ent.Job{
		JobID:       "deploy:" + b.ID,
		Queue:       config.QueueDeploy,
		Attempt:     attempt,
		MaxAttempts: 3,
		Payload: map[string]interface{}{
			"project_id":   b.ProjectID,
			"build_id":     b.ID,
			"user_id":      b.UserID,
			"project_path": projectPath,
		},
	}
}

func TestDeployWorkerSuccess(t *testing.T) {
	f := setupDeployWorker(t)
	b, v, projectPath := f.seedAiCompleted(t, "proj-d", "user-1")
	ctx := context.Background()

	require.NoError(t, WriteDeployIntent(projectPath, ".forge", &DeployIntent{
		Framework: "astro",
		Lane:      LaneEdge,
	}))

	require.NoError(t, f.worker.Handle(ctx, deployJob(b, projectPath, 1)))

	// The deployer saw the intent's lane and the version's display name.
	require.Len(t, f.deployer.reqs, 1)
	assert.Equal(t, LaneEdge, f.deployer.reqs[0].Lane)
	assert.Equal(t, "astro", f.deployer.reqs[0].Framework)
	assert.Equal(t, v.DisplayName, f.deployer.reqs[0].VersionName)

	p, err := f.client.Project.Get(ctx, "proj-d")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusDeployed, p.BuildStatus)
	require.NotNil(t, p.PreviewURL)
	assert.Equal(t, "https://preview.test/proj-d/v1", *p.PreviewURL)
	require.NotNil(t, p.DeployLane)
	assert.Equal(t, LaneEdge, *p.DeployLane)
	require.NotNil(t, p.CurrentVersionID)
	assert.Equal(t, v.ID, *p.CurrentVersionID)

	got, err := f.client.Build.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, build.StatusDeployed, got.Status)

	completed := f.announcer.byType("build_completed")
	require.Len(t, completed, 1)
	assert.Equal(t, "https://preview.test/proj-d/v1", completed[0].Response["preview_url"])

	require.Len(t, f.publisher.statuses, 1)
	assert.Equal(t, build.StatusDeployed, f.publisher.statuses[0].Status)
}

func TestDeployWorkerMissingIntentDefaultsToStatic(t *testing.T) {
	f := setupDeployWorker(t)
	b, _, projectPath := f.seedAiCompleted(t, "proj-d2", "user-1")

	require.NoError(t, f.worker.Handle(context.Background(), deployJob(b, projectPath, 1)))

	require.Len(t, f.deployer.reqs, 1)
	assert.Equal(t, LaneStatic, f.deployer.reqs[0].Lane)
}

func TestDeployWorkerRetriesBeforeFailing(t *testing.T) {
	f := setupDeployWorker(t)
	f.deployer.err = errors.New("edge push rejected")
	b, _, projectPath := f.seedAiCompleted(t, "proj-d3", "user-1")
	ctx := context.Background()

	// Below the cap: retryable, project untouched.
	err := f.worker.Handle(ctx, deployJob(b, projectPath, 1))
	require.Error(t, err)

	p, errP := f.client.Project.Get(ctx, "proj-d3")
	require.NoError(t, errP)
	assert.NotEqual(t, project.BuildStatusFailed, p.BuildStatus)

	// At the cap: terminal, project failed, version row intact.
	err = f.worker.Handle(ctx, deployJob(b, projectPath, 3))
	require.Error(t, err)

	p, errP = f.client.Project.Get(ctx, "proj-d3")
	require.NoError(t, errP)
	assert.Equal(t, project.BuildStatusFailed, p.BuildStatus)

	got, errB := f.client.Build.Get(ctx, b.ID)
	require.NoError(t, errB)
	assert.Equal(t, build.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorType)
	assert.Equal(t, "deploy_failed", *got.ErrorType)

	_, errV := services.NewVersionService(f.client).GetByBuild(ctx, b.ID)
	assert.NoError(t, errV)

	require.Len(t, f.publisher.statuses, 1)
	assert.NotEmpty(t, f.publisher.statuses[0].Error)
}

func TestBaseURLDeployer(t *testing.T) {
	d := NewBaseURLDeployer("https://preview.appforge.dev/")

	res, err := d.Deploy(context.Background(), DeployRequest{
		ProjectID:   "proj-x",
		VersionName: "v3",
		Lane:        LaneStatic,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://preview.appforge.dev/proj-x/v3", res.PreviewURL)
	assert.Equal(t, LaneStatic, res.Lane)

	_, err = d.Deploy(context.Background(), DeployRequest{ProjectID: "proj-x"})
	assert.Error(t, err)
}
