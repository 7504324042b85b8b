// Package build turns a validated client request into a queued stage-one
// job: it resolves the deterministic (build, version, job) id triple,
// enforces operation-level idempotency, transitions the project to queued,
// and enqueues the pipeline.
package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/buildoperation"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
)

// Result statuses.
const (
	StatusQueued      = "queued"
	StatusQueueFailed = "queue_failed"
)

// ErrOperationTracking indicates the BuildOperation insert failed for a
// reason other than a duplicate. When the caller supplied an operation id,
// proceeding with a fresh non-deterministic build id would silently break
// idempotency, so the initiation aborts instead.
var ErrOperationTracking = errors.New("operation tracking failed")

// ThrottledError reports a per-user initiate throttle rejection.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("too many build requests, retry after %s", e.RetryAfter)
}

// LimitedError reports an active global upstream limit.
type LimitedError struct {
	Reason  string
	ResetAt *time.Time
}

func (e *LimitedError) Error() string {
	return "upstream limit active: " + e.Reason
}

// RetryAfter returns the time until the limit resets, zero when unknown.
func (e *LimitedError) RetryAfter() time.Duration {
	if e.ResetAt == nil {
		return 0
	}
	return time.Until(*e.ResetAt)
}

// Enqueuer is the slice of the queue runtime the initiator needs.
type Enqueuer interface {
	Enqueue(ctx context.Context, req queue.JobRequest) (*queue.EnqueueResult, error)
}

// LimitReader reports the global upstream limit state.
type LimitReader interface {
	Status(ctx context.Context) limits.Status
}

// Throttle is the per-user initiate rate limit port.
type Throttle interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// InitiateRequest carries a pre-validated build request. Authentication and
// payload validation happen at the HTTP boundary.
type InitiateRequest struct {
	UserID            string
	ProjectID         string
	Prompt            string
	Framework         string
	IsInitialBuild    bool
	BaseVersionID     string
	PreviousSessionID string

	// OperationID is the caller-chosen idempotency key. Optional; when set,
	// retries with the same id resolve to the same build exactly once.
	OperationID string

	// Source labels where the request came from (http, chat, retry).
	Source string
}

// InitiateResult is the outcome of an initiation.
type InitiateResult struct {
	BuildID     string `json:"build_id"`
	VersionID   string `json:"version_id"`
	JobID       string `json:"job_id"`
	Status      string `json:"status"`
	ProjectPath string `json:"project_path"`
	Error       string `json:"error,omitempty"`
}

// Initiator implements build initiation.
type Initiator struct {
	client    *ent.Client
	projects  *services.ProjectService
	timeline  *services.TimelineService
	enqueuer  Enqueuer
	throttle  Throttle
	limit     LimitReader
	workspace *config.WorkspaceConfig
}

// NewInitiator creates a build initiator. throttle and limit may be nil;
// the corresponding gates are then skipped.
func NewInitiator(
	client *ent.Client,
	projects *services.ProjectService,
	timeline *services.TimelineService,
	enqueuer Enqueuer,
	throttle Throttle,
	limit LimitReader,
	workspace *config.WorkspaceConfig,
) *Initiator {
	return &Initiator{
		client:    client,
		projects:  projects,
		timeline:  timeline,
		enqueuer:  enqueuer,
		throttle:  throttle,
		limit:     limit,
		workspace: workspace,
	}
}

// StageOneJobID derives the deterministic stage-one job id. Duplicate
// enqueues for the same operation collapse on this identity in the queue.
func StageOneJobID(projectID, operationID, buildID string) string {
	key := operationID
	if key == "" {
		key = buildID
	}
	return "build:" + projectID + ":" + key
}

// ProjectPath resolves the on-disk working directory for a project. The
// directory itself is created by the stage-one worker, not here.
func (i *Initiator) ProjectPath(userID, projectID string) string {
	return filepath.Join(i.workspace.BaseDir, userID, projectID)
}

// Initiate runs the initiation algorithm and returns the resolved id triple.
//
// Identical operation ids converge: the second caller gets the first call's
// (buildId, versionId) back, with the job id if enqueue already happened,
// and triggers no further writes.
func (i *Initiator) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	if err := i.admit(ctx, req.UserID); err != nil {
		return nil, err
	}

	proj, err := i.projects.AuthorizeOwner(ctx, req.ProjectID, req.UserID)
	if err != nil {
		return nil, err
	}

	projectPath := i.ProjectPath(req.UserID, req.ProjectID)
	buildID := ulid.Make().String()
	versionID := ulid.Make().String()

	if req.OperationID != "" {
		existing, err := i.trackOperation(ctx, req.ProjectID, req.OperationID, buildID, versionID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			// Duplicate call: return the original mapping and stop.
			slog.Info("Duplicate initiate collapsed onto existing operation",
				"project_id", req.ProjectID, "operation_id", req.OperationID, "build_id", existing.BuildID)
			return &InitiateResult{
				BuildID:     existing.BuildID,
				VersionID:   existing.VersionID,
				JobID:       existing.JobID,
				Status:      StatusQueued,
				ProjectPath: projectPath,
			}, nil
		}
	}

	if err := i.createBuild(ctx, buildID, req); err != nil {
		return nil, err
	}

	// Strict, verified write; a failure here aborts before any job exists.
	if err := i.projects.TransitionToQueued(ctx, req.ProjectID, buildID); err != nil {
		return nil, fmt.Errorf("failed to transition project to queued: %w", err)
	}

	jobID := StageOneJobID(req.ProjectID, req.OperationID, buildID)
	result, err := i.enqueuer.Enqueue(ctx, queue.JobRequest{
		Queue: config.QueueStageOne,
		JobID: jobID,
		Name:  "build",
		Payload: map[string]interface{}{
			"project_id":          req.ProjectID,
			"build_id":            buildID,
			"version_id":          versionID,
			"user_id":             req.UserID,
			"is_initial_build":    req.IsInitialBuild,
			"previous_session_id": req.PreviousSessionID,
			"framework":           req.Framework,
			"base_version_id":     req.BaseVersionID,
		},
		DelayUntilRollbackComplete: proj.BuildStatus == project.BuildStatusRollingBack,
	})
	if err != nil {
		return i.failEnqueue(ctx, req, buildID, versionID, projectPath, err)
	}

	i.patchOperation(ctx, req.ProjectID, req.OperationID, result.Job.JobID)
	i.announce(ctx, req, buildID)

	return &InitiateResult{
		BuildID:     buildID,
		VersionID:   versionID,
		JobID:       result.Job.JobID,
		Status:      StatusQueued,
		ProjectPath: projectPath,
	}, nil
}

// admit applies the per-user throttle (fail-open) and the global upstream
// limit (fail-closed) before any write.
func (i *Initiator) admit(ctx context.Context, userID string) error {
	if i.throttle != nil {
		ok, retryAfter, err := i.throttle.Allow(ctx, "initiate:"+userID)
		if err != nil {
			return fmt.Errorf("throttle check failed: %w", err)
		}
		if !ok {
			return &ThrottledError{RetryAfter: retryAfter}
		}
	}

	if i.limit != nil {
		if status := i.limit.Status(ctx); status.Limited {
			return &LimitedError{Reason: status.Reason, ResetAt: status.ResetAt}
		}
	}
	return nil
}

// trackOperation inserts the idempotency row. Returns the existing row when
// the operation id was already claimed, nil when this call claimed it.
func (i *Initiator) trackOperation(ctx context.Context, projectID, operationID, buildID, versionID string) (*ent.BuildOperation, error) {
	err := i.client.BuildOperation.Create().
		SetProjectID(projectID).
		SetOperationID(operationID).
		SetBuildID(buildID).
		SetVersionID(versionID).
		Exec(ctx)
	if err == nil {
		return nil, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("%w: %v", ErrOperationTracking, err)
	}

	existing, err := i.client.BuildOperation.Query().
		Where(
			buildoperation.ProjectIDEQ(projectID),
			buildoperation.OperationIDEQ(operationID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read existing operation: %v", ErrOperationTracking, err)
	}
	return existing, nil
}

// createBuild inserts the build row before the project points at it.
func (i *Initiator) createBuild(ctx context.Context, buildID string, req InitiateRequest) error {
	err := i.client.Build.Create().
		SetID(buildID).
		SetProjectID(req.ProjectID).
		SetUserID(req.UserID).
		SetIsInitialBuild(req.IsInitialBuild).
		SetPrompt(req.Prompt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create build: %w", err)
	}
	return nil
}

// failEnqueue handles a queue rejection: the project lands in failed and the
// caller gets the error text with status queue_failed.
func (i *Initiator) failEnqueue(ctx context.Context, req InitiateRequest, buildID, versionID, projectPath string, enqueueErr error) (*InitiateResult, error) {
	slog.Error("Failed to enqueue stage-one job",
		"project_id", req.ProjectID, "build_id", buildID, "error", enqueueErr)

	if err := i.projects.MarkFailed(ctx, req.ProjectID); err != nil {
		slog.Error("Failed to mark project failed after enqueue rejection",
			"project_id", req.ProjectID, "error", err)
	}

	if req.OperationID != "" {
		if err := i.client.BuildOperation.Update().
			Where(
				buildoperation.ProjectIDEQ(req.ProjectID),
				buildoperation.OperationIDEQ(req.OperationID),
			).
			SetStatus(buildoperation.StatusFailed).
			Exec(ctx); err != nil {
			slog.Warn("Failed to mark operation failed", "operation_id", req.OperationID, "error", err)
		}
	}

	return &InitiateResult{
		BuildID:     buildID,
		VersionID:   versionID,
		Status:      StatusQueueFailed,
		ProjectPath: projectPath,
		Error:       enqueueErr.Error(),
	}, fmt.Errorf("failed to enqueue build: %w", enqueueErr)
}

// patchOperation writes the real job id back onto the idempotency row.
// Non-fatal: the stage-one worker finds the build by id regardless.
func (i *Initiator) patchOperation(ctx context.Context, projectID, operationID, jobID string) {
	if operationID == "" {
		return
	}

	err := i.client.BuildOperation.Update().
		Where(
			buildoperation.ProjectIDEQ(projectID),
			buildoperation.OperationIDEQ(operationID),
		).
		SetJobID(jobID).
		SetStatus(buildoperation.StatusQueued).
		Exec(ctx)
	if err != nil {
		slog.Warn("Failed to patch operation job id",
			"project_id", projectID, "operation_id", operationID, "error", err)
	}
}

// announce publishes the durable build_initiated timeline message.
func (i *Initiator) announce(ctx context.Context, req InitiateRequest, buildID string) {
	if i.timeline == nil {
		return
	}

	_, err := i.timeline.AppendMessage(ctx, services.AppendMessageRequest{
		ProjectID: req.ProjectID,
		ActorType: message.ActorTypeSystem,
		Content:   "build_initiated",
		BuildID:   buildID,
		Response: map[string]interface{}{
			"type":     "build_initiated",
			"build_id": buildID,
			"source":   req.Source,
		},
	})
	if err != nil {
		slog.Warn("Failed to announce build initiation",
			"project_id", req.ProjectID, "build_id", buildID, "error", err)
	}
}
