package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/job"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/services"
)

// Terminal job rows kept per outcome, newest first. Failures are retained
// longer than successes because they are what gets inspected after the fact.
const (
	keepCompletedJobs = 1000
	keepFailedJobs    = 2000
)

// HousekeepingWorker runs the periodic cleanup job: expired event rows and
// terminal queue jobs beyond the per-outcome retention counts. Scheduled
// through the queue's repeatable mechanism, so every replica shares one
// firing per interval.
type HousekeepingWorker struct {
	client *ent.Client
	events *services.EventService
	sysCfg *config.SystemConfig

	keepCompleted int
	keepFailed    int
}

// NewHousekeepingWorker creates the housekeeping worker.
func NewHousekeepingWorker(client *ent.Client, events *services.EventService, sysCfg *config.SystemConfig) *HousekeepingWorker {
	return &HousekeepingWorker{
		client:        client,
		events:        events,
		sysCfg:        sysCfg,
		keepCompleted: keepCompletedJobs,
		keepFailed:    keepFailedJobs,
	}
}

// Handle runs one cleanup pass.
func (w *HousekeepingWorker) Handle(ctx context.Context, _ *ent.Job) error {
	deleted, err := w.events.CleanupExpiredEvents(ctx, w.sysCfg.EventTTL)
	if err != nil {
		return fmt.Errorf("event cleanup failed: %w", err)
	}

	completedPruned, err := w.pruneJobs(ctx, []job.Status{job.StatusCompleted}, w.keepCompleted)
	if err != nil {
		return fmt.Errorf("completed job cleanup failed: %w", err)
	}

	failedPruned, err := w.pruneJobs(ctx,
		[]job.Status{job.StatusFailed, job.StatusUnrecoverable, job.StatusCanceled}, w.keepFailed)
	if err != nil {
		return fmt.Errorf("failed job cleanup failed: %w", err)
	}

	slog.Info("Housekeeping pass complete",
		"events_deleted", deleted,
		"completed_jobs_pruned", completedPruned,
		"failed_jobs_pruned", failedPruned)
	return nil
}

// pruneJobs deletes terminal rows older than the keep-th most recent one in
// the given status bucket. Rows sharing the cutoff timestamp are kept, so
// the bucket never drops below keep rows.
func (w *HousekeepingWorker) pruneJobs(ctx context.Context, statuses []job.Status, keep int) (int, error) {
	cutoff, err := w.client.Job.Query().
		Where(job.StatusIn(statuses...), job.FinishedAtNotNil()).
		Order(ent.Desc(job.FieldFinishedAt)).
		Offset(keep - 1).
		Limit(1).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Fewer rows than the retention count.
			return 0, nil
		}
		return 0, err
	}

	return w.client.Job.Delete().
		Where(job.StatusIn(statuses...), job.FinishedAtLT(*cutoff.FinishedAt)).
		Exec(ctx)
}
