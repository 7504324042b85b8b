package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	entbuild "github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/project"
)

func seedAwaitingDeploy(t *testing.T, f *apiFixture, projectID, userID string) (*ent.Build, *ent.Version) {
	t.Helper()
	ctx := context.Background()

	seedOwnedProject(t, f, projectID, userID)

	b, err := f.db.Build.Create().
		SetID(ulid.Make().String()).
		SetProjectID(projectID).
		SetUserID(userID).
		SetStatus(entbuild.StatusAiCompleted).
		Save(ctx)
	require.NoError(t, err)

	v, err := f.versions.CreateForBuild(ctx, "", projectID, b.ID, "sess-cb")
	require.NoError(t, err)
	return b, v
}

func TestDeployCallbackSuccess(t *testing.T) {
	f := setupAPI(t)
	b, v := seedAwaitingDeploy(t, f, "proj-cb", "user-1")
	ctx := context.Background()

	rec := f.perform(t, http.MethodPost, "/api/v1/deploy/callback", "", DeployCallbackRequest{
		DeploymentID: b.ID,
		Status:       "success",
		URL:          "https://proj-cb.pages.dev",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := f.projects.GetProject(ctx, "proj-cb")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusDeployed, p.BuildStatus)
	require.NotNil(t, p.PreviewURL)
	assert.Equal(t, "https://proj-cb.pages.dev", *p.PreviewURL)
	require.NotNil(t, p.CurrentVersionID)
	assert.Equal(t, v.ID, *p.CurrentVersionID)

	got, err := f.db.Build.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entbuild.StatusDeployed, got.Status)

	require.Len(t, f.publisher.statuses, 1)
	assert.Equal(t, entbuild.StatusDeployed, f.publisher.statuses[0].Status)
}

func TestDeployCallbackFailureMarksFailed(t *testing.T) {
	f := setupAPI(t)
	b, _ := seedAwaitingDeploy(t, f, "proj-cb2", "user-1")
	ctx := context.Background()

	rec := f.perform(t, http.MethodPost, "/api/v1/deploy/callback", "", DeployCallbackRequest{
		DeploymentID: b.ID,
		Status:       "failure",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := f.projects.GetProject(ctx, "proj-cb2")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusFailed, p.BuildStatus)

	got, err := f.db.Build.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entbuild.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorType)
	assert.Equal(t, "deploy_failed", *got.ErrorType)
}

func TestDeployCallbackUnknownDeploymentIs404(t *testing.T) {
	f := setupAPI(t)

	rec := f.perform(t, http.MethodPost, "/api/v1/deploy/callback", "", DeployCallbackRequest{
		DeploymentID: ulid.Make().String(),
		Status:       "success",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
