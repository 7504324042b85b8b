package services

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
)

// createTestProject inserts a project owned by ownerID.
func createTestProject(t *testing.T, client *ent.Client, projectID, ownerID string) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(projectID).
		SetOwnerID(ownerID).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// createTestBuild inserts a build for the project and returns it.
func createTestBuild(t *testing.T, client *ent.Client, projectID, userID string) *ent.Build {
	t.Helper()
	b, err := client.Build.Create().
		SetID(ulid.Make().String()).
		SetProjectID(projectID).
		SetUserID(userID).
		Save(context.Background())
	require.NoError(t, err)
	return b
}
