package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/job"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "queue", p.queue, "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds active jobs with stale heartbeats and
// requeues them. The claim already consumed an attempt, so a job whose
// worker dies repeatedly still runs out of attempts.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Job.Query().
		Where(
			job.QueueEQ(p.queue),
			job.StatusEQ(job.StatusActive),
			job.HeartbeatAtNotNil(),
			job.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "queue", p.queue, "count", len(orphans))

	recovered := 0
	for _, orphan := range orphans {
		if err := recoverOrphanedJob(ctx, p.client, orphan, "no heartbeat"); err != nil {
			slog.Error("Failed to recover orphaned job",
				"job_id", orphan.JobID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob requeues one orphaned job, or fails it terminally when
// no attempts remain.
func recoverOrphanedJob(ctx context.Context, client *ent.Client, orphan *ent.Job, cause string) error {
	podID := "unknown"
	if orphan.LockedBy != nil {
		podID = *orphan.LockedBy
	}

	lastHeartbeat := "unknown"
	if orphan.HeartbeatAt != nil {
		lastHeartbeat = orphan.HeartbeatAt.Format(time.RFC3339)
	}

	log := slog.With("job_id", orphan.JobID, "old_pod_id", podID, "attempt", orphan.Attempt)
	reason := fmt.Sprintf("orphaned: %s from pod %s (last heartbeat %s)", cause, podID, lastHeartbeat)

	if orphan.Attempt >= orphan.MaxAttempts {
		err := client.Job.UpdateOneID(orphan.ID).
			SetStatus(job.StatusFailed).
			SetLastError(reason).
			SetFinishedAt(time.Now()).
			ClearLockedBy().
			ClearLockedAt().
			ClearHeartbeatAt().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to fail orphaned job: %w", err)
		}
		log.Warn("Orphaned job failed, attempts exhausted")
		return nil
	}

	err := client.Job.UpdateOneID(orphan.ID).
		SetStatus(job.StatusWaiting).
		SetRunAt(time.Now()).
		SetLastError(reason).
		ClearLockedBy().
		ClearLockedAt().
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue orphaned job: %w", err)
	}

	log.Warn("Orphaned job requeued", "last_heartbeat", lastHeartbeat)
	return nil
}

// RecoverStartupOrphans performs a one-time recovery of jobs locked by this
// pod when it previously crashed. Called once during startup, before the
// worker pools begin processing.
func RecoverStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusActive),
			job.LockedByEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, orphan := range orphans {
		if err := recoverOrphanedJob(ctx, client, orphan, "pod restarted"); err != nil {
			slog.Error("Failed to recover startup orphan",
				"job_id", orphan.JobID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", orphan.JobID)
	}

	return nil
}
