package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/pkg/accounting"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/events"
	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
	testdb "github.com/appforge/forge/test/database"
)

type fakeEnqueuer struct {
	mu   sync.Mutex
	reqs []queue.JobRequest
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, req queue.JobRequest) (*queue.EnqueueResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return &queue.EnqueueResult{Job: &ent.Job{JobID: req.JobID}}, nil
}

func (f *fakeEnqueuer) queues() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.reqs))
	for i, r := range f.reqs {
		out[i] = r.Queue
	}
	return out
}

type fakeLimiter struct {
	mu      sync.Mutex
	status  limits.Status
	tripped []string
}

func (f *fakeLimiter) Status(_ context.Context) limits.Status { return f.status }

func (f *fakeLimiter) Trip(_ context.Context, reason string, _ *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tripped = append(f.tripped, reason)
	return nil
}

type fakeSink struct {
	mu      sync.Mutex
	offers  []events.ProgressPayload
	flushed []string
}

func (f *fakeSink) Offer(p events.ProgressPayload) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offers = append(f.offers, p)
}

func (f *fakeSink) Flush(_ context.Context, buildID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushed = append(f.flushed, buildID)
}

type fakePublisher struct {
	mu       sync.Mutex
	statuses []events.BuildStatusPayload
	versions []events.VersionCreatedPayload
}

func (f *fakePublisher) PublishBuildStatus(_ context.Context, _ string, p events.BuildStatusPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, p)
	return nil
}

func (f *fakePublisher) PublishVersionCreated(_ context.Context, _ string, p events.VersionCreatedPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.versions = append(f.versions, p)
	return nil
}

type fakeAnnouncer struct {
	mu   sync.Mutex
	msgs []services.AppendMessageRequest
}

func (f *fakeAnnouncer) AppendMessage(_ context.Context, req services.AppendMessageRequest) (*ent.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, req)
	return &ent.Message{ID: "msg-" + req.ProjectID}, nil
}

func (f *fakeAnnouncer) byType(kind string) []services.AppendMessageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []services.AppendMessageRequest
	for _, m := range f.msgs {
		if m.Response != nil && m.Response["type"] == kind {
			out = append(out, m)
		}
	}
	return out
}

// fakeAgentConfig installs a shell script standing in for the agent binary.
func fakeAgentConfig(t *testing.T, script string) *config.AgentConfig {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake agent script requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake-agent")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	cfg := config.DefaultAgentConfig()
	cfg.BinaryPath = path
	cfg.InitialTimeout = 15 * time.Second
	cfg.RetryTimeout = 15 * time.Second
	cfg.RetryTimeoutWithFiles = 15 * time.Second
	cfg.MetadataTimeout = 15 * time.Second
	cfg.KillGrace = 2 * time.Second
	return cfg
}

type streamFixture struct {
	worker    *StreamWorker
	client    *ent.Client
	enqueuer  *fakeEnqueuer
	limiter   *fakeLimiter
	sink      *fakeSink
	publisher *fakePublisher
	announcer *fakeAnnouncer
	wsCfg     *config.WorkspaceConfig
}

func setupStreamWorker(t *testing.T, agentCfg *config.AgentConfig, acctCfg *config.AccountingConfig) *streamFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	if acctCfg == nil {
		acctCfg = &config.AccountingConfig{Enabled: false}
	}

	f := &streamFixture{
		client:    client.Client,
		enqueuer:  &fakeEnqueuer{},
		limiter:   &fakeLimiter{},
		sink:      &fakeSink{},
		publisher: &fakePublisher{},
		announcer: &fakeAnnouncer{},
		wsCfg: &config.WorkspaceConfig{
			BaseDir:    t.TempDir(),
			HiddenDir:  ".forge",
			IgnoreFile: ".gitignore",
		},
	}

	f.worker = NewStreamWorker(StreamWorkerDeps{
		Client:          client.Client,
		Projects:        services.NewProjectService(client.Client, nil),
		Versions:        services.NewVersionService(client.Client),
		Timeline:        f.announcer,
		Accounting:      accounting.NewService(client.Client, acctCfg),
		Publisher:       f.publisher,
		Progress:        f.sink,
		Limiter:         f.limiter,
		Enqueuer:        f.enqueuer,
		AgentConfig:     agentCfg,
		WorkspaceConfig: f.wsCfg,
		SystemConfig:    config.DefaultSystemConfig(),
	})
	return f
}

func (f *streamFixture) seedBuild(t *testing.T, projectID, userID, prompt string) *ent.Build {
	t.Helper()
	ctx := context.Background()
	_, err := f.client.Project.Create().
		SetID(projectID).
		SetOwnerID(userID).
		Save(ctx)
	require.NoError(t, err)

	b, err := f.client.Build.Create().
		SetID(ulid.Make().String()).
		SetProjectID(projectID).
		SetUserID(userID).
		SetPrompt(prompt).
		SetIsInitialBuild(true).
		Save(ctx)
	require.NoError(t, err)
	return b
}

func stageJob(b *ent.Build, attempt int) *ent.Job {
	return &ent.Job{
		JobID:       "build:" + b.ProjectID + ":" + b.ID,
		Queue:       config.QueueStageOne,
		Attempt:     attempt,
		MaxAttempts: 3,
		Payload: map[string]interface{}{
			"project_id":       b.ProjectID,
			"build_id":         b.ID,
			"user_id":          b.UserID,
			"is_initial_build": true,
		},
	}
}

const successScript = `
cat > /dev/null
echo '{"type":"system","session_id":"sess-ok"}'
echo '{"type":"progress","phase":"writing","message":"index.html"}'
echo '{"type":"result","session_id":"sess-ok","result":"done","num_turns":3,"total_cost_usd":0.25,"usage":{"input_tokens":100,"output_tokens":400}}'
`

func TestStreamWorkerSuccess(t *testing.T) {
	f := setupStreamWorker(t, fakeAgentConfig(t, successScript), nil)
	b := f.seedBuild(t, "proj-s", "user-1", "build a landing page")
	ctx := context.Background()

	require.NoError(t, f.worker.Handle(ctx, stageJob(b, 1)))

	got, err := f.client.Build.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, build.StatusAiCompleted, got.Status)
	require.NotNil(t, got.AgentSessionID)
	assert.Equal(t, "sess-ok", *got.AgentSessionID)
	assert.NotNil(t, got.CompletedAt)

	p, err := f.client.Project.Get(ctx, "proj-s")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusBuilding, p.BuildStatus)
	require.NotNil(t, p.LastAgentSessionID)
	assert.Equal(t, "sess-ok", *p.LastAgentSessionID)

	// Version coupled to agent success.
	v, err := services.NewVersionService(f.client).GetByBuild(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", v.DisplayName)

	// Checkpoint carries the session and the usage totals.
	cp, err := f.client.Checkpoint.Query().Where(checkpoint.BuildIDEQ(b.ID)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, cp.AgentSessionID)
	assert.Equal(t, "sess-ok", *cp.AgentSessionID)
	assert.Equal(t, int64(500), cp.TokensUsed)
	assert.Equal(t, int64(25), cp.CostCents)

	// Handoff to both stages, progress flushed.
	assert.Equal(t, []string{config.QueueMetadata, config.QueueDeploy}, f.enqueuer.queues())
	assert.Equal(t, []string{b.ID}, f.sink.flushed)
	assert.NotEmpty(t, f.sink.offers)

	require.Len(t, f.publisher.statuses, 1)
	assert.Equal(t, build.StatusAiCompleted, f.publisher.statuses[0].Status)
	require.Len(t, f.publisher.versions, 1)
	assert.Equal(t, "v1", f.publisher.versions[0].DisplayName)

	// Enriched payload forwarded to the next stages.
	next, err := decodePayload(f.enqueuer.reqs[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "sess-ok", next.SessionID)
	assert.NotEmpty(t, next.ProjectPath)
}

func TestStreamWorkerMockSessionBypassesDeploy(t *testing.T) {
	script := `
cat > /dev/null
echo '{"type":"system","session_id":"mock_session_e2e"}'
echo '{"type":"result","session_id":"mock_session_e2e","result":"done"}'
`
	f := setupStreamWorker(t, fakeAgentConfig(t, script), nil)
	b := f.seedBuild(t, "proj-m", "user-1", "build it")
	ctx := context.Background()

	require.NoError(t, f.worker.Handle(ctx, stageJob(b, 1)))

	// Metadata still runs; deploy is skipped.
	assert.Equal(t, []string{config.QueueMetadata}, f.enqueuer.queues())

	p, err := f.client.Project.Get(ctx, "proj-m")
	require.NoError(t, err)
	assert.Equal(t, project.BuildStatusDeployed, p.BuildStatus)
	require.NotNil(t, p.PreviewURL)
	assert.Equal(t, config.DefaultSystemConfig().MockPreviewURL, *p.PreviewURL)
}

func TestStreamWorkerRetryableFailure(t *testing.T) {
	script := `
cat > /dev/null
echo 'generator panic' >&2
exit 1
`
	f := setupStreamWorker(t, fakeAgentConfig(t, script), nil)
	b := f.seedBuild(t, "proj-r", "user-1", "build it")
	ctx := context.Background()

	err := f.worker.Handle(ctx, stageJob(b, 1))
	require.Error(t, err)
	assert.False(t, queue.IsUnrecoverable(err))

	// Error recorded for the next attempt's prompt, build not yet terminal.
	got, errGet := f.client.Build.Get(ctx, b.ID)
	require.NoError(t, errGet)
	assert.Equal(t, build.StatusStarted, got.Status)
	require.NotNil(t, got.ErrorType)
	assert.Equal(t, "crash", *got.ErrorType)

	cp, errCp := f.client.Checkpoint.Query().Where(checkpoint.BuildIDEQ(b.ID)).Only(ctx)
	require.NoError(t, errCp)
	require.NotNil(t, cp.LastError)
	assert.Contains(t, *cp.LastError, "generator panic")

	// No terminal side effects yet.
	assert.Empty(t, f.announcer.byType("build_failed"))
	p, errP := f.client.Project.Get(ctx, "proj-r")
	require.NoError(t, errP)
	assert.Equal(t, project.BuildStatusBuilding, p.BuildStatus)
}

func TestStreamWorkerFailedAttemptKeepsSessionResumable(t *testing.T) {
	// The agent announces its session, then dies on its own deadline.
	script := `
cat > /dev/null
echo '{"type":"system","session_id":"sess-cut-short"}'
exit 124
`
	f := setupStreamWorker(t, fakeAgentConfig(t, script), nil)
	b := f.seedBuild(t, "proj-to", "user-1", "build it")
	ctx := context.Background()

	err := f.worker.Handle(ctx, stageJob(b, 1))
	require.Error(t, err)
	assert.False(t, queue.IsUnrecoverable(err))

	// The announced session survives the failed attempt in the checkpoint.
	cp, errCp := f.client.Checkpoint.Query().Where(checkpoint.BuildIDEQ(b.ID)).Only(ctx)
	require.NoError(t, errCp)
	require.NotNil(t, cp.AgentSessionID)
	assert.Equal(t, "sess-cut-short", *cp.AgentSessionID)

	// Attempt 2 picks it up as the resume target.
	got, errGet := f.client.Build.Get(ctx, b.ID)
	require.NoError(t, errGet)
	retryJob := stageJob(b, 2)
	payload, errP := decodePayload(retryJob.Payload)
	require.NoError(t, errP)
	projectPath := filepath.Join(f.wsCfg.BaseDir, "user-1", b.ProjectID)
	_, _, resumeID := f.worker.retryContext(ctx, retryJob, got, payload, projectPath)
	assert.Equal(t, "sess-cut-short", resumeID)
}

func TestStreamWorkerTerminalFailure(t *testing.T) {
	script := `
cat > /dev/null
echo 'generator panic' >&2
exit 1
`
	f := setupStreamWorker(t, fakeAgentConfig(t, script), nil)
	b := f.seedBuild(t, "proj-t", "user-1", "build it")
	ctx := context.Background()

	err := f.worker.Handle(ctx, stageJob(b, 3))
	require.Error(t, err)
	// Attempt cap, not an unrecoverable kind: the queue's own cap applies.
	assert.False(t, queue.IsUnrecoverable(err))

	got, errGet := f.client.Build.Get(ctx, b.ID)
	require.NoError(t, errGet)
	assert.Equal(t, build.StatusFailed, got.Status)

	p, errP := f.client.Project.Get(ctx, "proj-t")
	require.NoError(t, errP)
	assert.Equal(t, project.BuildStatusFailed, p.BuildStatus)

	failures := f.announcer.byType("build_failed")
	require.Len(t, failures, 1)
	assert.Equal(t, "crash", failures[0].Response["error_type"])
	assert.Equal(t, 3, failures[0].Response["attempt"])

	require.Len(t, f.publisher.statuses, 1)
	assert.Equal(t, build.StatusFailed, f.publisher.statuses[0].Status)
	assert.NotEmpty(t, f.publisher.statuses[0].Error)

	// No version on failure.
	_, errV := services.NewVersionService(f.client).GetByBuild(ctx, b.ID)
	assert.ErrorIs(t, errV, services.ErrNotFound)
}

func TestStreamWorkerMissingBinaryTripsController(t *testing.T) {
	cfg := config.DefaultAgentConfig()
	cfg.BinaryPath = filepath.Join(t.TempDir(), "no-such-agent")

	f := setupStreamWorker(t, cfg, nil)
	b := f.seedBuild(t, "proj-b", "user-1", "build it")

	err := f.worker.Handle(context.Background(), stageJob(b, 1))
	require.Error(t, err)
	assert.True(t, queue.IsUnrecoverable(err))

	require.Len(t, f.limiter.tripped, 1)
	assert.Contains(t, f.limiter.tripped[0], "system_config_error")

	p, errP := f.client.Project.Get(context.Background(), "proj-b")
	require.NoError(t, errP)
	assert.Equal(t, project.BuildStatusFailed, p.BuildStatus)
}

func TestStreamWorkerActiveLimitIsNotRetripped(t *testing.T) {
	f := setupStreamWorker(t, fakeAgentConfig(t, successScript), nil)
	reset := time.Now().Add(10 * time.Minute)
	f.limiter.status = limits.Status{Limited: true, Reason: "usage limit exceeded", ResetAt: &reset}

	b := f.seedBuild(t, "proj-l", "user-1", "build it")

	err := f.worker.Handle(context.Background(), stageJob(b, 1))
	require.Error(t, err)
	assert.True(t, queue.IsUnrecoverable(err))

	// The controller already holds the pause.
	assert.Empty(t, f.limiter.tripped)

	got, errGet := f.client.Build.Get(context.Background(), b.ID)
	require.NoError(t, errGet)
	require.NotNil(t, got.ErrorType)
	assert.Equal(t, "usage_limit_exceeded", *got.ErrorType)
}

func TestStreamWorkerInsufficientBalance(t *testing.T) {
	acctCfg := &config.AccountingConfig{Enabled: true, MinimumBalanceSeconds: 60}
	f := setupStreamWorker(t, fakeAgentConfig(t, successScript), acctCfg)
	b := f.seedBuild(t, "proj-a", "user-broke", "build it")

	// No account row reads as zero balance.
	err := f.worker.Handle(context.Background(), stageJob(b, 1))
	require.Error(t, err)
	assert.True(t, queue.IsUnrecoverable(err))

	got, errGet := f.client.Build.Get(context.Background(), b.ID)
	require.NoError(t, errGet)
	require.NotNil(t, got.ErrorType)
	assert.Equal(t, "insufficient_balance", *got.ErrorType)
}

func TestStreamWorkerRecordsPlacementViolations(t *testing.T) {
	f := setupStreamWorker(t, fakeAgentConfig(t, successScript), nil)
	b := f.seedBuild(t, "proj-p", "user-1", "build it")

	// The agent "escaped" the project dir on a previous run.
	parent := filepath.Join(f.wsCfg.BaseDir, "user-1")
	require.NoError(t, os.MkdirAll(parent, 0o755))
	misplaced := filepath.Join(parent, "index.html")
	require.NoError(t, os.WriteFile(misplaced, []byte("<html>"), 0o644))

	require.NoError(t, f.worker.Handle(context.Background(), stageJob(b, 1)))

	secEvents := f.announcer.byType("security_event")
	require.Len(t, secEvents, 1)
	assert.Equal(t, misplaced, secEvents[0].Response["path"])

	// Reported, never moved.
	_, err := os.Stat(misplaced)
	assert.NoError(t, err)
}
