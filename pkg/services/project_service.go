package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/ent/version"
	"github.com/appforge/forge/pkg/limits"
)

// ProjectService manages the project lifecycle state machine.
//
// The project row is the central serialization point of the pipeline: every
// transition is a read-then-write with DB constraints as the referee, and the
// writes that gate irreversible actions (spawning the agent) are verified by
// read-back before the caller proceeds.
type ProjectService struct {
	client *ent.Client
	leases *limits.LeaseManager
}

// NewProjectService creates a new ProjectService. leases may be nil when
// rollback is not wired (tests, tools).
func NewProjectService(client *ent.Client, leases *limits.LeaseManager) *ProjectService {
	return &ProjectService{client: client, leases: leases}
}

// CreateProject provisions an empty project owned by the user. Called when a
// build request arrives without a project id.
func (s *ProjectService) CreateProject(ctx context.Context, projectID, ownerID, framework string) (*ent.Project, error) {
	create := s.client.Project.Create().
		SetID(projectID).
		SetOwnerID(ownerID)
	if framework != "" {
		create = create.SetFramework(framework)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// AuthorizeOwner verifies the user owns the project. Absence of the project
// and ownership mismatch are distinct fatal input errors, never retried.
func (s *ProjectService) AuthorizeOwner(ctx context.Context, projectID, userID string) (*ent.Project, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != userID {
		return nil, ErrAccessDenied
	}
	return p, nil
}

// Status returns the project's current build status.
func (s *ProjectService) Status(ctx context.Context, projectID string) (project.BuildStatus, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	return p.BuildStatus, nil
}

// TransitionToQueued marks the project queued with the resolved build id.
// The write is strict: it is verified by read-back, and a mismatch aborts the
// initiation before any job is enqueued.
func (s *ProjectService) TransitionToQueued(ctx context.Context, projectID, buildID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetBuildStatus(project.BuildStatusQueued).
		SetCurrentBuildID(buildID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark project queued: %w", err)
	}

	return s.verifyTransition(writeCtx, projectID, project.BuildStatusQueued, buildID)
}

// TransitionToBuilding marks the project building, stamps the build start and
// clears the prior completion timestamp. Verified by read-back; the stream
// worker must not spawn the agent if the verify fails.
func (s *ProjectService) TransitionToBuilding(ctx context.Context, projectID, buildID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetBuildStatus(project.BuildStatusBuilding).
		SetCurrentBuildID(buildID).
		SetLastBuildStartedAt(time.Now()).
		ClearLastBuildCompletedAt().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark project building: %w", err)
	}

	return s.verifyTransition(writeCtx, projectID, project.BuildStatusBuilding, buildID)
}

// verifyTransition reads the project back and checks the write stuck.
func (s *ProjectService) verifyTransition(ctx context.Context, projectID string, want project.BuildStatus, wantBuildID string) error {
	p, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to read back project transition: %w", err)
	}
	if p.BuildStatus != want {
		return fmt.Errorf("%w: wanted %s, project reads %s", ErrTransitionFailed, want, p.BuildStatus)
	}
	if wantBuildID != "" && (p.CurrentBuildID == nil || *p.CurrentBuildID != wantBuildID) {
		return fmt.Errorf("%w: current build id did not stick", ErrTransitionFailed)
	}
	return nil
}

// MarkDeployed records a successful deploy: terminal status, preview URL,
// lane, current version pointers, and the completion timestamp.
func (s *ProjectService) MarkDeployed(ctx context.Context, projectID, versionID, versionName, previewURL, lane string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Project.UpdateOneID(projectID).
		SetBuildStatus(project.BuildStatusDeployed).
		SetCurrentVersionID(versionID).
		SetPreviewURL(previewURL).
		SetLastBuildCompletedAt(time.Now())
	if versionName != "" {
		update = update.SetCurrentVersionName(versionName)
	}
	if lane != "" {
		update = update.SetDeployLane(lane)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark project deployed: %w", err)
	}
	return nil
}

// MarkFailed records a terminal build failure on the project.
func (s *ProjectService) MarkFailed(ctx context.Context, projectID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetBuildStatus(project.BuildStatusFailed).
		SetLastBuildCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark project failed: %w", err)
	}
	return nil
}

// SetAgentSession stores the agent session id for cross-build continuation.
func (s *ProjectService) SetAgentSession(ctx context.Context, projectID, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetLastAgentSessionID(sessionID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to store agent session: %w", err)
	}
	return nil
}

// Rollback restores the project to a prior version under a redis lease.
//
// Exactly one rollback per project may run at a time; a second caller gets
// ErrRollbackInProgress instead of queueing. While the rollback runs the
// project reads rolling_back, which defers any pipeline job flagged
// delay_until_rollback_complete. A failed rollback leaves rollback_failed,
// which terminally cancels those deferred jobs.
func (s *ProjectService) Rollback(ctx context.Context, projectID, targetVersionID string) error {
	if s.leases == nil {
		return fmt.Errorf("rollback requires a lease manager")
	}

	lease, err := s.leases.Acquire(ctx, "rollback:"+projectID)
	if err != nil {
		if errors.Is(err, limits.ErrLeaseHeld) {
			return ErrRollbackInProgress
		}
		return fmt.Errorf("failed to acquire rollback lease: %w", err)
	}
	defer func() {
		if relErr := lease.Release(context.Background()); relErr != nil {
			slog.Warn("Failed to release rollback lease", "project_id", projectID, "error", relErr)
		}
	}()

	target, err := s.client.Version.Query().
		Where(version.IDEQ(targetVersionID), version.ProjectIDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load rollback target: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Project.UpdateOneID(projectID).
		SetBuildStatus(project.BuildStatusRollingBack).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to mark project rolling back: %w", err)
	}

	err = s.client.Project.UpdateOneID(projectID).
		SetBuildStatus(project.BuildStatusDeployed).
		SetCurrentVersionID(target.ID).
		SetCurrentVersionName(target.DisplayName).
		SetCurrentBuildID(target.BuildID).
		Exec(writeCtx)
	if err != nil {
		// Leave the terminal marker so deferred jobs cancel instead of
		// running against a half-restored project.
		if failErr := s.client.Project.UpdateOneID(projectID).
			SetBuildStatus(project.BuildStatusRollbackFailed).
			Exec(writeCtx); failErr != nil {
			slog.Error("Failed to mark rollback failed", "project_id", projectID, "error", failErr)
		}
		return fmt.Errorf("rollback failed for project %s: %w", projectID, err)
	}

	slog.Info("Project rolled back", "project_id", projectID, "version_id", target.ID, "version_name", target.DisplayName)
	return nil
}
