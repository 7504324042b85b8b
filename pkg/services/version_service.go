package services

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/version"
)

// counterRetries bounds display-counter allocation races. Two stream workers
// finishing builds for the same project at once collide on the unique
// (project_id, display_counter) index; the loser re-reads and retries.
const counterRetries = 3

// VersionService manages version rows. A version exists only for a build
// whose agent session completed successfully, and its vN display name is
// frozen at creation — the metadata stage writes semver next to it, never
// over it.
type VersionService struct {
	client *ent.Client
}

// NewVersionService creates a new VersionService
func NewVersionService(client *ent.Client) *VersionService {
	return &VersionService{client: client}
}

// CreateForBuild creates the version row for a successfully completed build.
// Idempotent per build: a retried stage finds the existing row and returns it.
func (s *VersionService) CreateForBuild(ctx context.Context, versionID, projectID, buildID, sessionID string) (*ent.Version, error) {
	if versionID == "" {
		versionID = ulid.Make().String()
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var lastErr error
	for i := 0; i < counterRetries; i++ {
		counter, err := s.nextDisplayCounter(writeCtx, projectID)
		if err != nil {
			return nil, err
		}

		create := s.client.Version.Create().
			SetID(versionID).
			SetProjectID(projectID).
			SetBuildID(buildID).
			SetDisplayCounter(counter).
			SetDisplayName(fmt.Sprintf("v%d", counter))
		if sessionID != "" {
			create = create.SetAgentSessionID(sessionID)
		}

		v, err := create.Save(writeCtx)
		if err == nil {
			return v, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create version: %w", err)
		}

		// Either the build already has its version (retried stage) or the
		// counter slot was taken. The former is terminal, the latter retries.
		existing, getErr := s.GetByBuild(writeCtx, buildID)
		if getErr == nil {
			return existing, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to allocate display counter after %d attempts: %w", counterRetries, lastErr)
}

// nextDisplayCounter returns max(display_counter)+1 for the project.
func (s *VersionService) nextDisplayCounter(ctx context.Context, projectID string) (int, error) {
	var v []struct {
		Max int `json:"max"`
	}
	err := s.client.Version.Query().
		Where(version.ProjectIDEQ(projectID)).
		Aggregate(ent.Max(version.FieldDisplayCounter)).
		Scan(ctx, &v)
	if err != nil {
		return 0, fmt.Errorf("failed to query display counter: %w", err)
	}
	if len(v) == 0 {
		return 1, nil
	}
	return v[0].Max + 1, nil
}

// GetByBuild retrieves the version produced by a build.
func (s *VersionService) GetByBuild(ctx context.Context, buildID string) (*ent.Version, error) {
	v, err := s.client.Version.Query().
		Where(version.BuildIDEQ(buildID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get version by build: %w", err)
	}
	return v, nil
}

// SetSemantics writes the semver triple and change type from the metadata
// stage. The display name is deliberately untouched: vN, once set, stays.
func (s *VersionService) SetSemantics(ctx context.Context, versionID string, major, minor, patch int, changeType string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Version.UpdateOneID(versionID).
		SetMajor(major).
		SetMinor(minor).
		SetPatch(patch)
	if changeType != "" {
		update = update.SetChangeType(version.ChangeType(changeType))
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set version semantics: %w", err)
	}
	return nil
}
