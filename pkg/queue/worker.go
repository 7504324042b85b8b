package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/job"
	"github.com/appforge/forge/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// deferralRequeueDelay is how long a rollback-deferred job waits before the
// next deferral check.
const deferralRequeueDelay = 15 * time.Second

// Worker is a single queue worker that polls one queue for claimable jobs.
type Worker struct {
	id       string
	podID    string
	queue    string
	client   *ent.Client
	config   *config.QueueConfig
	handler  Handler
	deferral DeferralPolicy
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker.
// deferral may be nil (no rollback deferral checks on this queue).
func NewWorker(id, podID, queueName string, client *ent.Client, cfg *config.QueueConfig, handler Handler, deferral DeferralPolicy, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queueName,
		client:       client,
		config:       cfg,
		handler:      handler,
		deferral:     deferral,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrQueuePaused) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks the pause gate, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Pause gate: per-queue row or the global row stops dispatch.
	// Jobs already running are not affected.
	paused, err := IsPaused(ctx, w.client, w.queue)
	if err != nil {
		return fmt.Errorf("checking pause state: %w", err)
	}
	if paused {
		return ErrQueuePaused
	}

	// 2. Claim next job
	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.JobID, "queue", w.queue, "worker_id", w.id, "attempt", claimed.Attempt)
	log.Info("Job claimed")

	// 3. Rollback deferral: flagged jobs re-check before every execution.
	if claimed.DelayUntilRollbackComplete && w.deferral != nil {
		outcome, err := w.deferral.ShouldDefer(ctx, claimed)
		if err != nil {
			log.Warn("Deferral check failed, requeueing", "error", err)
			outcome = DeferralRequeue
		}
		switch outcome {
		case DeferralRequeue:
			return w.requeueDeferred(ctx, claimed)
		case DeferralCancel:
			log.Info("Job cancelled by deferral policy")
			return w.finishJob(ctx, claimed, job.StatusCanceled, errors.New("cancelled: rollback did not complete"))
		}
	}

	w.setStatus(WorkerStatusWorking, claimed.JobID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Register cancel function for API-triggered cancellation
	jobCtx, cancelJob := context.WithCancel(ctx)
	defer cancelJob()
	w.pool.RegisterJob(claimed.JobID, cancelJob)
	defer w.pool.UnregisterJob(claimed.JobID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 6. Execute
	handlerErr := w.handler.Handle(jobCtx, claimed)

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Record the outcome (use background context — job ctx may be cancelled)
	if err := w.recordOutcome(context.Background(), claimed, handlerErr); err != nil {
		slog.Error("Failed to record job outcome", "job_id", claimed.JobID, "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "success", handlerErr == nil)
	return nil
}

// claimNextJob atomically claims the next waiting job using FOR UPDATE SKIP LOCKED.
// Highest priority first, then FIFO within a priority.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	next, err := tx.Job.Query().
		Where(
			job.QueueEQ(w.queue),
			job.StatusEQ(job.StatusWaiting),
			job.RunAtLTE(time.Now()),
		).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query waiting job: %w", err)
	}

	now := time.Now()
	next, err = next.Update().
		SetStatus(job.StatusActive).
		SetAttempt(next.Attempt + 1).
		SetLockedBy(w.podID).
		SetLockedAt(now).
		SetHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return next, nil
}

// requeueDeferred pushes a rollback-deferred job back to waiting without
// consuming an attempt.
func (w *Worker) requeueDeferred(ctx context.Context, j *ent.Job) error {
	return w.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusWaiting).
		SetAttempt(j.Attempt - 1).
		SetRunAt(time.Now().Add(deferralRequeueDelay)).
		ClearLockedBy().
		ClearLockedAt().
		ClearHeartbeatAt().
		Exec(ctx)
}

// runHeartbeat periodically refreshes heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, rowID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Job.UpdateOneID(rowID).
				SetHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "row_id", rowID, "error", err)
			}
		}
	}
}

// recordOutcome writes the job's post-execution state: completed, a retry
// with backoff, or a terminal failure.
func (w *Worker) recordOutcome(ctx context.Context, j *ent.Job, handlerErr error) error {
	if handlerErr == nil {
		return w.finishJob(ctx, j, job.StatusCompleted, nil)
	}

	if IsUnrecoverable(handlerErr) {
		slog.Warn("Job failed unrecoverably",
			"job_id", j.JobID, "attempt", j.Attempt, "error", handlerErr)
		return w.finishJob(ctx, j, job.StatusUnrecoverable, handlerErr)
	}

	if j.Attempt >= j.MaxAttempts {
		slog.Warn("Job failed, attempts exhausted",
			"job_id", j.JobID, "attempt", j.Attempt, "max_attempts", j.MaxAttempts, "error", handlerErr)
		return w.finishJob(ctx, j, job.StatusFailed, handlerErr)
	}

	delay := Backoff(w.config.BackoffBase, w.config.BackoffMax, j.Attempt)
	slog.Info("Job failed, scheduling retry",
		"job_id", j.JobID, "attempt", j.Attempt, "retry_in", delay, "error", handlerErr)

	return w.client.Job.UpdateOneID(j.ID).
		SetStatus(job.StatusWaiting).
		SetRunAt(time.Now().Add(delay)).
		SetLastError(handlerErr.Error()).
		ClearLockedBy().
		ClearLockedAt().
		ClearHeartbeatAt().
		Exec(ctx)
}

// finishJob writes a terminal status.
func (w *Worker) finishJob(ctx context.Context, j *ent.Job, status job.Status, cause error) error {
	update := w.client.Job.UpdateOneID(j.ID).
		SetStatus(status).
		SetFinishedAt(time.Now()).
		ClearLockedBy().
		ClearLockedAt().
		ClearHeartbeatAt()
	if cause != nil {
		update = update.SetLastError(cause.Error())
	}
	return update.Exec(ctx)
}

// Backoff returns the retry delay after the given completed attempt:
// base doubled per attempt, capped at max.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= max {
			return max
		}
	}
	if delay > max {
		return max
	}
	return delay
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
