package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/checkpoint"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/pkg/accounting"
	"github.com/appforge/forge/pkg/agent"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/events"
	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
)

// Enqueuer is the slice of the queue runtime the workers need for handoff.
type Enqueuer interface {
	Enqueue(ctx context.Context, req queue.JobRequest) (*queue.EnqueueResult, error)
}

// LimitGuard is the slice of the limit controller the stream worker uses:
// a pre-flight read and the trip on upstream failure signals.
type LimitGuard interface {
	Status(ctx context.Context) limits.Status
	Trip(ctx context.Context, reason string, resetAt *time.Time) error
}

// ProgressSink receives agent progress frames for coalesced fan-out.
type ProgressSink interface {
	Offer(payload events.ProgressPayload)
	Flush(ctx context.Context, buildID string)
}

// BuildPublisher is the slice of the event publisher the workers need.
type BuildPublisher interface {
	PublishBuildStatus(ctx context.Context, projectID string, payload events.BuildStatusPayload) error
	PublishVersionCreated(ctx context.Context, projectID string, payload events.VersionCreatedPayload) error
}

// Announcer appends durable timeline messages.
type Announcer interface {
	AppendMessage(ctx context.Context, req services.AppendMessageRequest) (*ent.Message, error)
}

// StreamWorker drives one (project, build, attempt) through the
// code-generation agent and leaves the system in ai_completed on success.
// It owns the stage lifecycle end to end: project transition, workspace,
// agent supervision, checkpoint, accounting, version creation, and the
// handoff to the metadata and deploy stages.
type StreamWorker struct {
	client     *ent.Client
	projects   *services.ProjectService
	versions   *services.VersionService
	timeline   Announcer
	accounting *accounting.Service
	publisher  BuildPublisher
	progress   ProgressSink
	limiter    LimitGuard
	enqueuer   Enqueuer

	agentCfg *config.AgentConfig
	wsCfg    *config.WorkspaceConfig
	sysCfg   *config.SystemConfig
}

// StreamWorkerDeps bundles the stream worker's collaborators.
type StreamWorkerDeps struct {
	Client     *ent.Client
	Projects   *services.ProjectService
	Versions   *services.VersionService
	Timeline   Announcer
	Accounting *accounting.Service
	Publisher  BuildPublisher
	Progress   ProgressSink
	Limiter    LimitGuard
	Enqueuer   Enqueuer

	AgentConfig     *config.AgentConfig
	WorkspaceConfig *config.WorkspaceConfig
	SystemConfig    *config.SystemConfig
}

// NewStreamWorker creates the stage-one worker.
func NewStreamWorker(deps StreamWorkerDeps) *StreamWorker {
	return &StreamWorker{
		client:     deps.Client,
		projects:   deps.Projects,
		versions:   deps.Versions,
		timeline:   deps.Timeline,
		accounting: deps.Accounting,
		publisher:  deps.Publisher,
		progress:   deps.Progress,
		limiter:    deps.Limiter,
		enqueuer:   deps.Enqueuer,
		agentCfg:   deps.AgentConfig,
		wsCfg:      deps.WorkspaceConfig,
		sysCfg:     deps.SystemConfig,
	}
}

// Handle processes one stage-one job.
func (w *StreamWorker) Handle(ctx context.Context, job *ent.Job) error {
	payload, err := decodePayload(job.Payload)
	if err != nil {
		return queue.Unrecoverable(err)
	}

	b, err := w.client.Build.Get(ctx, payload.BuildID)
	if err != nil {
		if ent.IsNotFound(err) {
			return queue.Unrecoverable(fmt.Errorf("build %s not found", payload.BuildID))
		}
		return fmt.Errorf("failed to load build %s: %w", payload.BuildID, err)
	}

	if err := w.client.Build.UpdateOneID(b.ID).
		SetAttempt(job.Attempt).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record build attempt: %w", err)
	}

	// The building transition gates the spawn: if the verified write does
	// not stick, the agent must not start.
	if err := w.projects.TransitionToBuilding(ctx, payload.ProjectID, payload.BuildID); err != nil {
		return fmt.Errorf("building transition did not stick, not spawning agent: %w", err)
	}

	projectPath := payload.ProjectPath
	if projectPath == "" {
		projectPath = filepath.Join(w.wsCfg.BaseDir, payload.UserID, payload.ProjectID)
	}
	if err := EnsureWorkspace(projectPath, w.wsCfg.HiddenDir, w.wsCfg.IgnoreFile); err != nil {
		return err
	}

	existingFiles, lastError, resumeID := w.retryContext(ctx, job, b, payload, projectPath)

	if err := w.preflight(ctx); err != nil {
		return w.fail(ctx, job, payload, nil, time.Now(), err)
	}

	attemptStart := time.Now()
	if err := w.accounting.Preflight(ctx, payload.UserID); err != nil {
		if errors.Is(err, accounting.ErrInsufficientBalance) {
			err = agent.NewFailure(agent.FailureInsufficientBalance, err)
		}
		return w.fail(ctx, job, payload, nil, attemptStart, err)
	}
	if err := w.accounting.Start(ctx, payload.BuildID, payload.UserID); err != nil {
		return fmt.Errorf("failed to open usage meter: %w", err)
	}

	prompt := agent.BuildPrompt(b.Prompt, job.Attempt, job.MaxAttempts, existingFiles, lastError)
	session := agent.NewSession(w.agentCfg, projectPath, nil)
	timeout := session.Timeout(job.Attempt, len(existingFiles) > 0)

	onProgress := func(_ context.Context, rec agent.StreamRecord) {
		detail := rec.Message
		if detail == "" {
			detail = rec.Result
		}
		w.progress.Offer(events.ProgressPayload{
			Type:      events.EventTypeProgress,
			ProjectID: payload.ProjectID,
			BuildID:   payload.BuildID,
			Phase:     rec.Phase,
			Detail:    detail,
			Percent:   -1,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		})
	}

	var result *agent.RunResult
	if resumeID != "" {
		result, err = session.Resume(ctx, resumeID, prompt, timeout, onProgress)
	} else {
		result, err = session.Run(ctx, prompt, timeout, onProgress)
	}
	if err != nil {
		return w.fail(ctx, job, payload, session, attemptStart, err)
	}

	return w.commit(ctx, job, payload, projectPath, session, result, existingFiles)
}

// retryContext gathers what a retry attempt needs: the files already on
// disk, the prior attempt's error text, and the session id to resume.
// Attempt 1 of a continuation build resumes the caller-supplied session.
func (w *StreamWorker) retryContext(ctx context.Context, job *ent.Job, b *ent.Build, payload *StagePayload, projectPath string) (files []string, lastError, resumeID string) {
	if !payload.IsInitialBuild {
		resumeID = payload.PreviousSessionID
	}
	if job.Attempt <= 1 {
		return nil, "", resumeID
	}

	cp, err := w.client.Checkpoint.Query().
		Where(checkpoint.BuildIDEQ(payload.BuildID)).
		Only(ctx)
	if err == nil {
		if cp.AgentSessionID != nil {
			resumeID = *cp.AgentSessionID
		}
		if cp.LastError != nil {
			lastError = *cp.LastError
		}
		files = cp.PreexistingFiles
	} else if !ent.IsNotFound(err) {
		slog.Warn("Failed to load checkpoint, scanning directory instead",
			"build_id", payload.BuildID, "error", err)
	}

	if files == nil {
		scanned, scanErr := ListProjectFiles(projectPath, w.wsCfg.HiddenDir)
		if scanErr != nil {
			slog.Warn("Pre-existing file scan failed", "project_path", projectPath, "error", scanErr)
		}
		files = scanned
	}
	if lastError == "" && b.ErrorMessage != nil {
		lastError = *b.ErrorMessage
	}
	return files, lastError, resumeID
}

// preflight validates the agent binary and the global limit before any
// irreversible work. A missing binary is an operator error and trips the
// limit controller; an already-active limit is surfaced without re-tripping.
func (w *StreamWorker) preflight(ctx context.Context) error {
	if err := w.checkBinary(); err != nil {
		f := agent.NewFailure(agent.FailureSystemConfig, err)
		if tripErr := w.limiter.Trip(ctx, f.Error(), nil); tripErr != nil {
			slog.Error("Failed to trip limit controller on config error", "error", tripErr)
		}
		return f
	}

	if status := w.limiter.Status(ctx); status.Limited {
		err := fmt.Errorf("%w: %s", errLimitAlreadyActive, status.Reason)
		if status.ResetAt != nil {
			err = fmt.Errorf("%w until %s: %s",
				errLimitAlreadyActive, status.ResetAt.Format(time.RFC3339), status.Reason)
		}
		return agent.NewFailure(agent.FailureUsageLimit, err)
	}
	return nil
}

// errLimitAlreadyActive marks a usage-limit failure observed during
// pre-flight. The controller already holds the pause; tripping again would
// overwrite its reset time.
var errLimitAlreadyActive = errors.New("upstream limit active")

func (w *StreamWorker) checkBinary() error {
	path := w.agentCfg.BinaryPath
	if !strings.ContainsRune(path, os.PathSeparator) {
		resolved, err := exec.LookPath(path)
		if err != nil {
			return fmt.Errorf("agent binary %q not found in PATH: %w", path, err)
		}
		path = resolved
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("agent binary %q not usable: %w", path, err)
	}
	if info.IsDir() || info.Mode()&0o111 == 0 {
		return fmt.Errorf("agent binary %q is not executable", path)
	}
	return nil
}

// commit records a successful agent run: checkpoint, placement audit,
// accounting close, version creation, ai_completed transition, events, and
// the handoff to the metadata and deploy stages.
func (w *StreamWorker) commit(ctx context.Context, job *ent.Job, payload *StagePayload, projectPath string, session *agent.Session, result *agent.RunResult, existingFiles []string) error {
	sessionID := result.SessionID

	if sessionID != "" {
		if err := w.client.Build.UpdateOneID(payload.BuildID).
			SetAgentSessionID(sessionID).
			Exec(ctx); err != nil {
			slog.Warn("Failed to store session id on build", "build_id", payload.BuildID, "error", err)
		}
		if err := w.projects.SetAgentSession(ctx, payload.ProjectID, sessionID); err != nil {
			slog.Warn("Failed to store session id on project", "project_id", payload.ProjectID, "error", err)
		}
	}

	w.saveCheckpoint(ctx, payload.BuildID, job.Attempt, sessionID, existingFiles, "", result)

	w.auditAndReport(ctx, payload, projectPath)

	if _, err := w.accounting.End(ctx, payload.BuildID); err != nil {
		slog.Error("Failed to close usage meter", "build_id", payload.BuildID, "error", err)
	}

	version, err := w.versions.CreateForBuild(ctx, payload.VersionID, payload.ProjectID, payload.BuildID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to create version for build %s: %w", payload.BuildID, err)
	}

	if err := w.client.Build.UpdateOneID(payload.BuildID).
		SetStatus(build.StatusAiCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark build ai_completed: %w", err)
	}

	now := time.Now().Format(time.RFC3339Nano)
	if err := w.publisher.PublishBuildStatus(ctx, payload.ProjectID, events.BuildStatusPayload{
		Type:      events.EventTypeBuildStatus,
		ProjectID: payload.ProjectID,
		BuildID:   payload.BuildID,
		Status:    build.StatusAiCompleted,
		Attempt:   job.Attempt,
		Timestamp: now,
	}); err != nil {
		slog.Warn("Failed to publish build status", "build_id", payload.BuildID, "error", err)
	}
	if err := w.publisher.PublishVersionCreated(ctx, payload.ProjectID, events.VersionCreatedPayload{
		Type:        events.EventTypeVersionCreated,
		ProjectID:   payload.ProjectID,
		VersionID:   version.ID,
		BuildID:     payload.BuildID,
		DisplayName: version.DisplayName,
		Timestamp:   now,
	}); err != nil {
		slog.Warn("Failed to publish version created", "build_id", payload.BuildID, "error", err)
	}

	w.progress.Flush(ctx, payload.BuildID)

	next := *payload
	next.SessionID = sessionID
	next.ProjectPath = projectPath

	if _, err := w.enqueuer.Enqueue(ctx, queue.JobRequest{
		Queue:   config.QueueMetadata,
		JobID:   "metadata:" + payload.BuildID,
		Name:    "metadata",
		Payload: next.asMap(),
	}); err != nil {
		slog.Error("Failed to enqueue metadata stage", "build_id", payload.BuildID, "error", err)
	}

	if session.IsMock() {
		// End-to-end test session: no real deploy, static preview URL.
		slog.Info("Mock session detected, skipping deploy handoff",
			"build_id", payload.BuildID, "session_id", sessionID)
		if err := w.projects.MarkDeployed(ctx, payload.ProjectID, version.ID, version.DisplayName, w.sysCfg.MockPreviewURL, LaneStatic); err != nil {
			slog.Error("Failed to mark mock deploy", "project_id", payload.ProjectID, "error", err)
		}
		return nil
	}

	if _, err := w.enqueuer.Enqueue(ctx, queue.JobRequest{
		Queue:   config.QueueDeploy,
		JobID:   "deploy:" + payload.BuildID,
		Name:    "deploy",
		Payload: next.asMap(),
	}); err != nil {
		return fmt.Errorf("failed to enqueue deploy stage: %w", err)
	}
	return nil
}

// fail classifies the error, persists it, and decides retry vs terminal.
// The session id the agent announced before failing is checkpointed so the
// next attempt can resume the conversation instead of starting over.
// Terminal failures mark the project failed, announce build_failed on the
// timeline, and return an unrecoverable error when retrying cannot help.
// session is nil when the failure happened before the agent was spawned.
func (w *StreamWorker) fail(ctx context.Context, job *ent.Job, payload *StagePayload, session *agent.Session, attemptStart time.Time, err error) error {
	f := agent.AsFailure(err)
	terminal := f.Unrecoverable() || job.Attempt >= job.MaxAttempts

	// Agent-reported capacity/config signals pause the whole pipeline. A
	// limit observed during pre-flight is already active and is not re-tripped.
	switch f.Kind {
	case agent.FailureSystemConfig, agent.FailureUsageLimit:
		if !errors.Is(err, errLimitAlreadyActive) {
			if tripErr := w.limiter.Trip(ctx, f.Error(), nil); tripErr != nil {
				slog.Error("Failed to trip limit controller", "kind", f.Kind, "error", tripErr)
			}
		}
	}

	update := w.client.Build.UpdateOneID(payload.BuildID).
		SetErrorType(string(f.Kind)).
		SetErrorMessage(err.Error())
	if terminal {
		update = update.SetStatus(build.StatusFailed).SetCompletedAt(time.Now())
	}
	if updErr := update.Exec(ctx); updErr != nil {
		slog.Error("Failed to record build error", "build_id", payload.BuildID, "error", updErr)
	}

	sessionID := ""
	if session != nil {
		sessionID = session.ID()
	}
	w.saveCheckpoint(ctx, payload.BuildID, job.Attempt, sessionID, nil, err.Error(), nil)

	if _, endErr := w.accounting.End(ctx, payload.BuildID); endErr != nil && !errors.Is(endErr, accounting.ErrMeterNotOpen) {
		slog.Error("Failed to close usage meter on failure", "build_id", payload.BuildID, "error", endErr)
	}

	if !terminal {
		slog.Warn("Build attempt failed, retrying",
			"build_id", payload.BuildID, "attempt", job.Attempt, "kind", f.Kind, "error", err)
		return err
	}

	if refundErr := w.accounting.Refund(ctx, payload.BuildID); refundErr != nil && !errors.Is(refundErr, accounting.ErrMeterNotOpen) {
		slog.Warn("Failed to refund terminal build", "build_id", payload.BuildID, "error", refundErr)
	}

	if markErr := w.projects.MarkFailed(ctx, payload.ProjectID); markErr != nil {
		slog.Error("Failed to mark project failed", "project_id", payload.ProjectID, "error", markErr)
	}

	duration := time.Since(attemptStart)
	if _, msgErr := w.timeline.AppendMessage(ctx, services.AppendMessageRequest{
		ProjectID: payload.ProjectID,
		ActorType: message.ActorTypeAssistant,
		Mode:      message.ModeBuild,
		Content:   fmt.Sprintf("Build failed: %s", f.Kind),
		BuildID:   payload.BuildID,
		Response: map[string]interface{}{
			"type":             "build_failed",
			"error_type":       string(f.Kind),
			"message":          err.Error(),
			"duration_seconds": int64(duration.Seconds()),
			"attempt":          job.Attempt,
		},
	}); msgErr != nil {
		slog.Warn("Failed to announce build failure", "build_id", payload.BuildID, "error", msgErr)
	}

	if pubErr := w.publisher.PublishBuildStatus(ctx, payload.ProjectID, events.BuildStatusPayload{
		Type:      events.EventTypeBuildStatus,
		ProjectID: payload.ProjectID,
		BuildID:   payload.BuildID,
		Status:    build.StatusFailed,
		Attempt:   job.Attempt,
		Error:     err.Error(),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); pubErr != nil {
		slog.Warn("Failed to publish build failure", "build_id", payload.BuildID, "error", pubErr)
	}

	w.progress.Flush(ctx, payload.BuildID)

	slog.Error("Build failed terminally",
		"build_id", payload.BuildID, "attempt", job.Attempt, "kind", f.Kind, "error", err)

	if f.Unrecoverable() {
		return queue.Unrecoverable(err)
	}
	return err
}

// saveCheckpoint upserts the per-build checkpoint. Zero-valued arguments
// leave the stored values untouched so failure paths do not erase what a
// prior successful attempt learned.
func (w *StreamWorker) saveCheckpoint(ctx context.Context, buildID string, attempt int, sessionID string, files []string, lastError string, result *agent.RunResult) {
	cp, err := w.client.Checkpoint.Query().
		Where(checkpoint.BuildIDEQ(buildID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		slog.Warn("Failed to load checkpoint for update", "build_id", buildID, "error", err)
		return
	}

	if ent.IsNotFound(err) {
		create := w.client.Checkpoint.Create().
			SetBuildID(buildID).
			SetAttempt(attempt)
		if sessionID != "" {
			create = create.SetAgentSessionID(sessionID)
		}
		if files != nil {
			create = create.SetPreexistingFiles(files)
		}
		if lastError != "" {
			create = create.SetLastError(lastError)
		}
		if result != nil {
			create = create.
				SetTokensUsed(result.InputTokens + result.OutputTokens).
				SetCostCents(int64(result.CostUSD * 100))
		}
		if err := create.Exec(ctx); err != nil && !ent.IsConstraintError(err) {
			slog.Warn("Failed to create checkpoint", "build_id", buildID, "error", err)
		}
		return
	}

	update := w.client.Checkpoint.UpdateOneID(cp.ID).SetAttempt(attempt)
	if sessionID != "" {
		update = update.SetAgentSessionID(sessionID)
	}
	if files != nil {
		update = update.SetPreexistingFiles(files)
	}
	if lastError != "" {
		update = update.SetLastError(lastError)
	}
	if result != nil {
		update = update.
			SetTokensUsed(result.InputTokens + result.OutputTokens).
			SetCostCents(int64(result.CostUSD * 100))
	}
	if err := update.Exec(ctx); err != nil {
		slog.Warn("Failed to update checkpoint", "build_id", buildID, "error", err)
	}
}

// auditAndReport scans for misplaced project files and records a security
// event for each finding. Files are reported, never moved.
func (w *StreamWorker) auditAndReport(ctx context.Context, payload *StagePayload, projectPath string) {
	for _, v := range AuditPlacement(projectPath) {
		slog.Warn("Project file found outside project directory",
			"project_id", payload.ProjectID, "build_id", payload.BuildID,
			"path", v.Path, "system_pattern", v.System)

		if _, err := w.timeline.AppendMessage(ctx, services.AppendMessageRequest{
			ProjectID: payload.ProjectID,
			ActorType: message.ActorTypeSystem,
			Content:   fmt.Sprintf("File placement violation: %s", v.Path),
			BuildID:   payload.BuildID,
			Response: map[string]interface{}{
				"type":           "security_event",
				"path":           v.Path,
				"system_pattern": v.System,
			},
		}); err != nil {
			slog.Warn("Failed to record security event", "build_id", payload.BuildID, "error", err)
		}
	}
}
