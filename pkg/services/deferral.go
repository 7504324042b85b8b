package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/project"
	"github.com/appforge/forge/pkg/queue"
)

// RollbackDeferralPolicy defers pipeline jobs while their project is rolling
// back. Jobs enqueued during a rollback window carry the
// delay_until_rollback_complete flag; on dequeue they re-check the project:
//
//	rolling_back    → requeue without consuming an attempt
//	rollback_failed → cancel terminally
//	anything else   → run
type RollbackDeferralPolicy struct {
	projects *ProjectService
}

// NewRollbackDeferralPolicy creates the deferral policy.
func NewRollbackDeferralPolicy(projects *ProjectService) *RollbackDeferralPolicy {
	return &RollbackDeferralPolicy{projects: projects}
}

// ShouldDefer implements queue.DeferralPolicy.
func (p *RollbackDeferralPolicy) ShouldDefer(ctx context.Context, job *ent.Job) (queue.Deferral, error) {
	projectID, _ := job.Payload["project_id"].(string)
	if projectID == "" {
		return queue.DeferralRun, nil
	}

	status, err := p.projects.Status(ctx, projectID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Project deleted under the job; cancel rather than spin.
			return queue.DeferralCancel, nil
		}
		return queue.DeferralRun, fmt.Errorf("failed to check rollback status: %w", err)
	}

	switch status {
	case project.BuildStatusRollingBack:
		return queue.DeferralRequeue, nil
	case project.BuildStatusRollbackFailed:
		return queue.DeferralCancel, nil
	default:
		return queue.DeferralRun, nil
	}
}
