package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/project"
)

// seedDeployedVersion creates a project with one deployed build+version pair.
func seedDeployedVersion(t *testing.T, f *apiFixture, projectID, userID string) *ent.Version {
	t.Helper()
	ctx := context.Background()

	seedOwnedProject(t, f, projectID, userID)

	b, err := f.db.Build.Create().
		SetID(ulid.Make().String()).
		SetProjectID(projectID).
		SetUserID(userID).
		Save(ctx)
	require.NoError(t, err)

	v, err := f.versions.CreateForBuild(ctx, "", projectID, b.ID, "sess-rb")
	require.NoError(t, err)
	return v
}

func TestRollbackRestoresVersion(t *testing.T) {
	f := setupAPI(t)
	v := seedDeployedVersion(t, f, "proj-rb", "user-1")

	rec := f.perform(t, http.MethodPost, "/api/v1/projects/proj-rb/rollback", "user-1", RollbackRequest{
		VersionID: v.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := f.projects.GetProject(context.Background(), "proj-rb")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusDeployed, p.BuildStatus)
	require.NotNil(t, p.CurrentVersionID)
	assert.Equal(t, v.ID, *p.CurrentVersionID)
}

func TestRollbackUnknownVersionIs404(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-rb2", "user-1")

	rec := f.perform(t, http.MethodPost, "/api/v1/projects/proj-rb2/rollback", "user-1", RollbackRequest{
		VersionID: ulid.Make().String(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRollbackRequiresVersionID(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-rb3", "user-1")

	rec := f.perform(t, http.MethodPost, "/api/v1/projects/proj-rb3/rollback", "user-1", RollbackRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
