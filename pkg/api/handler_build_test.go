package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/pkg/build"
)

func TestCreateBuildProvisionsNewProject(t *testing.T) {
	f := setupAPI(t)

	rec := f.perform(t, http.MethodPost, "/api/v1/builds", "user-1", CreateBuildRequest{
		Prompt:    "build me a storefront",
		Framework: "astro",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	body := decodeJSON(t, rec)
	projectID, _ := body["project_id"].(string)
	require.NotEmpty(t, projectID)
	assert.Equal(t, "build-1", body["build_id"])

	// The project row exists and belongs to the caller.
	p, err := f.projects.GetProject(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.OwnerID)
	assert.NotNil(t, p.Framework)

	// The initiation was an initial build for the fresh project.
	require.Len(t, f.starter.reqs, 1)
	assert.True(t, f.starter.reqs[0].IsInitialBuild)
	assert.Equal(t, projectID, f.starter.reqs[0].ProjectID)
	assert.Equal(t, "http", f.starter.reqs[0].Source)
}

func TestCreateBuildRejectsForeignProject(t *testing.T) {
	f := setupAPI(t)
	ctx := context.Background()

	_, err := f.projects.CreateProject(ctx, "proj-owned", "someone-else", "")
	require.NoError(t, err)

	rec := f.perform(t, http.MethodPost, "/api/v1/builds", "user-1", CreateBuildRequest{
		ProjectID: "proj-owned",
		Prompt:    "take over this project",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.starter.reqs)
}

func TestCreateBuildRequiresPrompt(t *testing.T) {
	f := setupAPI(t)

	rec := f.perform(t, http.MethodPost, "/api/v1/builds", "user-1", CreateBuildRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBuildThrottledSetsRetryAfter(t *testing.T) {
	f := setupAPI(t)
	f.starter.err = &build.ThrottledError{RetryAfter: 42 * time.Second}

	rec := f.perform(t, http.MethodPost, "/api/v1/builds", "user-1", CreateBuildRequest{
		Prompt: "one too many",
	})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get("Retry-After"))
}

func TestCreateBuildUpstreamLimitIs429(t *testing.T) {
	f := setupAPI(t)
	resetAt := time.Now().Add(10 * time.Minute)
	f.starter.err = &build.LimitedError{Reason: "usage limit", ResetAt: &resetAt}

	rec := f.perform(t, http.MethodPost, "/api/v1/builds", "user-1", CreateBuildRequest{
		Prompt: "during the limit window",
	})
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	body := decodeJSON(t, rec)
	assert.Equal(t, "usage limit", body["reason"])
}
