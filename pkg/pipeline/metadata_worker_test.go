package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/version"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/services"
	testdb "github.com/appforge/forge/test/database"
)

// metadataScript answers the recommendations prompt with valid JSON and any
// other prompt with markdown, so one script serves both phases.
const metadataScript = `
prompt=$(cat)
echo '{"type":"system","session_id":"sess-meta"}'
case "$prompt" in
*recommendation*)
  echo '{"type":"result","session_id":"sess-meta","result":"{\"recommendations\":[{\"title\":\"Add tests\",\"description\":\"Cover the cart flow\",\"priority\":\"high\"}],\"version\":{\"major\":1,\"minor\":1,\"patch\":0,\"change_type\":\"minor\"}}"}'
  ;;
*)
  echo '{"type":"result","session_id":"sess-meta","result":"# My Project\nA generated storefront."}'
  ;;
esac
`

type metadataFixture struct {
	worker    *MetadataWorker
	client    *ent.Client
	versions  *services.VersionService
	announcer *fakeAnnouncer
	wsCfg     *config.WorkspaceConfig
}

func setupMetadataWorker(t *testing.T, agentCfg *config.AgentConfig) *metadataFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	f := &metadataFixture{
		client:    client.Client,
		versions:  services.NewVersionService(client.Client),
		announcer: &fakeAnnouncer{},
		wsCfg: &config.WorkspaceConfig{
			BaseDir:    t.TempDir(),
			HiddenDir:  ".forge",
			IgnoreFile: ".gitignore",
		},
	}
	f.worker = NewMetadataWorker(
		services.NewProjectService(client.Client, nil),
		f.versions,
		f.announcer,
		agentCfg,
		f.wsCfg,
	)
	return f
}

// seedCompletedBuild creates project, build, and version the way the stream
// stage leaves them, plus the on-disk workspace.
func (f *metadataFixture) seedCompletedBuild(t *testing.T, projectID, userID string, initial bool) (*ent.Build, *ent.Version, string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.client.Project.Create().SetID(projectID).SetOwnerID(userID).Save(ctx)
	require.NoError(t, err)

	b, err := f.client.Build.Create().
		SetID(ulid.Make().String()).
		SetProjectID(projectID).
		SetUserID(userID).
		SetIsInitialBuild(initial).
		Save(ctx)
	require.NoError(t, err)

	v, err := f.versions.CreateForBuild(ctx, "", projectID, b.ID, "sess-meta")
	require.NoError(t, err)

	projectPath := filepath.Join(f.wsCfg.BaseDir, userID, projectID)
	require.NoError(t, EnsureWorkspace(projectPath, f.wsCfg.HiddenDir, f.wsCfg.IgnoreFile))
	return b, v, projectPath
}

func metadataJob(b *ent.Build, projectPath string, initial bool) *ent.Job {
	return &ent.Job{
		JobID:       "metadata:" + b.ID,
		Queue:       config.QueueMetadata,
		Attempt:     1,
		MaxAttempts: 3,
		Payload: map[string]interface{}{
			"project_id":       b.ProjectID,
			"build_id":         b.ID,
			"user_id":          b.UserID,
			"is_initial_build": initial,
			"session_id":       "sess-meta",
			"project_path":     projectPath,
		},
	}
}

func TestMetadataWorkerGeneratesEverything(t *testing.T) {
	f := setupMetadataWorker(t, fakeAgentConfig(t, metadataScript))
	b, v, projectPath := f.seedCompletedBuild(t, "proj-md", "user-1", true)
	ctx := context.Background()

	require.NoError(t, f.worker.Handle(ctx, metadataJob(b, projectPath, true)))

	// Recommendations persisted and valid.
	assert.True(t, RecommendationsExist(projectPath, ".forge", b.ID))
	data, err := os.ReadFile(filepath.Join(projectPath, ".forge", RecommendationsFile))
	require.NoError(t, err)
	doc, err := ParseRecommendations(string(data))
	require.NoError(t, err)
	assert.Equal(t, "Add tests", doc.Recommendations[0].Title)

	// Semantics stored, display name untouched.
	got, err := f.client.Version.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Major)
	assert.Equal(t, 1, got.Minor)
	assert.Equal(t, 0, got.Patch)
	assert.Equal(t, version.ChangeTypeMinor, got.ChangeType)
	assert.Equal(t, "v1", got.DisplayName)

	// Initial build gets the project info file.
	info, err := os.ReadFile(filepath.Join(projectPath, ".forge", ProjectInfoFile))
	require.NoError(t, err)
	assert.Contains(t, string(info), "My Project")

	// Session id persisted back to the project.
	p, err := f.client.Project.Get(ctx, "proj-md")
	require.NoError(t, err)
	require.NotNil(t, p.LastAgentSessionID)
	assert.Equal(t, "sess-meta", *p.LastAgentSessionID)
}

func TestMetadataWorkerSkipsDocsOnContinuation(t *testing.T) {
	f := setupMetadataWorker(t, fakeAgentConfig(t, metadataScript))
	b, _, projectPath := f.seedCompletedBuild(t, "proj-md2", "user-1", false)

	require.NoError(t, f.worker.Handle(context.Background(), metadataJob(b, projectPath, false)))

	assert.True(t, RecommendationsExist(projectPath, ".forge", b.ID))
	_, err := os.Stat(filepath.Join(projectPath, ".forge", ProjectInfoFile))
	assert.True(t, os.IsNotExist(err))
}

func TestMetadataWorkerSkipsExistingRecommendations(t *testing.T) {
	// Script that would fail validation if it ran: proves the skip.
	script := `
cat > /dev/null
echo '{"type":"result","session_id":"sess-meta","result":"not json"}'
`
	f := setupMetadataWorker(t, fakeAgentConfig(t, script))
	b, _, projectPath := f.seedCompletedBuild(t, "proj-md3", "user-1", false)

	doc, err := ParseRecommendations(validRecommendations)
	require.NoError(t, err)
	doc.BuildID = b.ID
	require.NoError(t, WriteRecommendations(projectPath, ".forge", doc))

	require.NoError(t, f.worker.Handle(context.Background(), metadataJob(b, projectPath, false)))
	assert.Empty(t, f.announcer.byType("recommendations_failed"))
}

func TestMetadataWorkerRegeneratesForNewBuild(t *testing.T) {
	f := setupMetadataWorker(t, fakeAgentConfig(t, metadataScript))
	b, v, projectPath := f.seedCompletedBuild(t, "proj-md5", "user-1", false)
	ctx := context.Background()

	// A previous build of this project already wrote recommendations.
	doc, err := ParseRecommendations(validRecommendations)
	require.NoError(t, err)
	doc.BuildID = ulid.Make().String()
	require.NoError(t, WriteRecommendations(projectPath, ".forge", doc))

	require.NoError(t, f.worker.Handle(ctx, metadataJob(b, projectPath, false)))

	// The stale document did not satisfy this build: it was regenerated
	// and the new version received its semantics.
	assert.True(t, RecommendationsExist(projectPath, ".forge", b.ID))
	got, err := f.client.Version.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Major)
	assert.Equal(t, 1, got.Minor)
	assert.Equal(t, version.ChangeTypeMinor, got.ChangeType)
}

func TestMetadataWorkerSchemaDriftIsNonFatal(t *testing.T) {
	script := `
cat > /dev/null
echo '{"type":"result","session_id":"sess-meta","result":"sorry, I cannot produce JSON today"}'
`
	f := setupMetadataWorker(t, fakeAgentConfig(t, script))
	b, v, projectPath := f.seedCompletedBuild(t, "proj-md4", "user-1", false)
	ctx := context.Background()

	// Drift is swallowed: the job completes, the incident is on the timeline.
	require.NoError(t, f.worker.Handle(ctx, metadataJob(b, projectPath, false)))

	drifts := f.announcer.byType("recommendations_failed")
	require.Len(t, drifts, 1)
	assert.Equal(t, b.ProjectID, drifts[0].ProjectID)

	// No semantics written, no recommendations file.
	assert.False(t, RecommendationsExist(projectPath, ".forge", b.ID))
	got, err := f.client.Version.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Major)
	assert.Equal(t, "v1", got.DisplayName)
}
