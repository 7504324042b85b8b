package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/job"
	"github.com/appforge/forge/ent/queuestate"
	"github.com/appforge/forge/pkg/config"
)

// GlobalGate is the QueueState row name that pauses every queue at once.
const GlobalGate = ""

// Runtime owns the queue subsystem for one pod: worker pools per queue,
// pause/resume state, repeatable jobs, and orphan recovery.
//
// All durable state lives in the database, so any number of replicas can run
// a Runtime concurrently; claiming is serialized by row locks and pause
// state is observed by every replica.
type Runtime struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	scheduler gocron.Scheduler

	mu      sync.Mutex
	pools   map[string]*WorkerPool
	started bool
}

// NewRuntime creates a queue runtime. Workers are registered with
// RegisterWorker before Start.
func NewRuntime(podID string, client *ent.Client, cfg *config.QueueConfig) (*Runtime, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Runtime{
		podID:     podID,
		client:    client,
		config:    cfg,
		scheduler: scheduler,
		pools:     make(map[string]*WorkerPool),
	}, nil
}

// WorkerOption configures a registered worker pool.
type WorkerOption func(*WorkerPool)

// WithDeferralPolicy installs the rollback deferral check for the pool.
func WithDeferralPolicy(p DeferralPolicy) WorkerOption {
	return func(pool *WorkerPool) {
		pool.deferral = p
	}
}

// RegisterWorker attaches a handler with the given concurrency to a queue.
// Must be called before Start; registering the same queue twice replaces the
// previous handler.
func (r *Runtime) RegisterWorker(queueName string, concurrency int, handler Handler, opts ...WorkerOption) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool := NewWorkerPool(r.podID, queueName, concurrency, r.client, r.config, handler)
	for _, opt := range opts {
		opt(pool)
	}
	r.pools[queueName] = pool
}

// Start recovers this pod's startup orphans, then launches all registered
// worker pools and the repeatable-job scheduler.
func (r *Runtime) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		slog.Warn("Queue runtime already started, ignoring duplicate Start call", "pod_id", r.podID)
		return nil
	}
	r.started = true

	if err := RecoverStartupOrphans(ctx, r.client, r.podID); err != nil {
		return fmt.Errorf("startup orphan recovery failed: %w", err)
	}

	for name, pool := range r.pools {
		if err := pool.Start(ctx); err != nil {
			return fmt.Errorf("failed to start pool for queue %q: %w", name, err)
		}
	}

	r.scheduler.Start()

	slog.Info("Queue runtime started", "pod_id", r.podID, "queues", len(r.pools))
	return nil
}

// Stop shuts the runtime down gracefully: the scheduler stops enqueueing,
// workers finish their current jobs (bounded by GracefulShutdownTimeout),
// and unfinished jobs are left for orphan recovery.
func (r *Runtime) Stop() {
	r.mu.Lock()
	pools := make([]*WorkerPool, 0, len(r.pools))
	for _, p := range r.pools {
		pools = append(pools, p)
	}
	r.mu.Unlock()

	if err := r.scheduler.Shutdown(); err != nil {
		slog.Warn("Scheduler shutdown failed", "error", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for _, pool := range pools {
			wg.Add(1)
			go func(p *WorkerPool) {
				defer wg.Done()
				p.Stop()
			}(pool)
		}
		wg.Wait()
	}()

	select {
	case <-done:
		slog.Info("Queue runtime stopped gracefully")
	case <-time.After(r.config.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timeout exceeded, abandoning active jobs",
			"timeout", r.config.GracefulShutdownTimeout)
	}
}

// Enqueue adds a job to its queue. Enqueueing an existing JobID is a no-op:
// the already-queued job is returned with Deduplicated=true and none of the
// request's fields overwrite it.
func (r *Runtime) Enqueue(ctx context.Context, req JobRequest) (*EnqueueResult, error) {
	if req.Queue == "" {
		return nil, fmt.Errorf("queue name required")
	}
	if req.JobID == "" {
		return nil, fmt.Errorf("job id required")
	}

	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = r.config.MaxAttempts
	}

	runAt := time.Now()
	if req.Delay > 0 {
		runAt = runAt.Add(req.Delay)
	}

	created, err := r.client.Job.Create().
		SetID(uuid.NewString()).
		SetJobID(req.JobID).
		SetQueue(req.Queue).
		SetName(req.Name).
		SetPayload(req.Payload).
		SetPriority(req.Priority).
		SetMaxAttempts(maxAttempts).
		SetRunAt(runAt).
		SetDelayUntilRollbackComplete(req.DelayUntilRollbackComplete).
		Save(ctx)
	if err != nil {
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to enqueue job %q: %w", req.JobID, err)
		}

		// Identity collision: the job already exists. First enqueue wins.
		existing, qerr := r.client.Job.Query().
			Where(job.JobIDEQ(req.JobID)).
			Only(ctx)
		if qerr != nil {
			return nil, fmt.Errorf("failed to load existing job %q: %w", req.JobID, qerr)
		}
		return &EnqueueResult{Job: existing, Deduplicated: true}, nil
	}

	slog.Debug("Job enqueued",
		"job_id", req.JobID, "queue", req.Queue, "name", req.Name, "run_at", runAt)
	return &EnqueueResult{Job: created}, nil
}

// Cancel cancels a waiting job. Active and terminal jobs are not cancelable.
func (r *Runtime) Cancel(ctx context.Context, jobID string) error {
	n, err := r.client.Job.Update().
		Where(
			job.JobIDEQ(jobID),
			job.StatusEQ(job.StatusWaiting),
		).
		SetStatus(job.StatusCanceled).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel job %q: %w", jobID, err)
	}
	if n == 0 {
		exists, qerr := r.client.Job.Query().Where(job.JobIDEQ(jobID)).Exist(ctx)
		if qerr != nil {
			return fmt.Errorf("failed to check job %q: %w", jobID, qerr)
		}
		if !exists {
			return ErrJobNotFound
		}
		return ErrJobNotCancelable
	}
	return nil
}

// Pause pauses dispatch for one queue. Pausing GlobalGate stops every queue.
// Jobs already executing are unaffected.
func (r *Runtime) Pause(ctx context.Context, queueName, reason string, until *time.Time) error {
	err := r.client.QueueState.Create().
		SetQueue(queueName).
		SetPaused(true).
		SetReason(reason).
		SetNillablePausedUntil(until).
		OnConflictColumns(queuestate.FieldQueue).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause queue %q: %w", queueName, err)
	}

	slog.Info("Queue paused", "queue", queueName, "reason", reason)
	return nil
}

// Resume clears the pause flag for one queue (or the global gate).
func (r *Runtime) Resume(ctx context.Context, queueName string) error {
	_, err := r.client.QueueState.Update().
		Where(queuestate.QueueEQ(queueName)).
		SetPaused(false).
		SetReason("").
		ClearPausedUntil().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume queue %q: %w", queueName, err)
	}

	slog.Info("Queue resumed", "queue", queueName)
	return nil
}

// IsPaused reports whether the queue or the global gate is paused.
func IsPaused(ctx context.Context, client *ent.Client, queueName string) (bool, error) {
	return client.QueueState.Query().
		Where(
			queuestate.QueueIn(queueName, GlobalGate),
			queuestate.Paused(true),
		).
		Exist(ctx)
}

// Stats returns counters for one queue.
func (r *Runtime) Stats(ctx context.Context, queueName string) (*Stats, error) {
	stats := &Stats{Queue: queueName}

	counts := []struct {
		status job.Status
		dest   *int
	}{
		{job.StatusWaiting, &stats.Waiting},
		{job.StatusActive, &stats.Active},
		{job.StatusCompleted, &stats.Completed},
		{job.StatusFailed, &stats.Failed},
	}
	for _, c := range counts {
		n, err := r.client.Job.Query().
			Where(job.QueueEQ(queueName), job.StatusEQ(c.status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s jobs: %w", c.status, err)
		}
		*c.dest = n
	}

	paused, err := IsPaused(ctx, r.client, queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to read pause state: %w", err)
	}
	stats.Paused = paused

	return stats, nil
}

// Health returns pool health for every registered queue.
func (r *Runtime) Health() map[string]*PoolHealth {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]*PoolHealth, len(r.pools))
	for name, pool := range r.pools {
		out[name] = pool.Health()
	}
	return out
}

// CancelJob cancels an active job's context on this pod.
// Returns true if the job was executing here.
func (r *Runtime) CancelJob(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pool := range r.pools {
		if pool.CancelJob(jobID) {
			return true
		}
	}
	return false
}

// AddRepeatable schedules a recurring enqueue. Every replica runs the
// schedule, but the deterministic job id collapses concurrent firings into a
// single queued job.
func (r *Runtime) AddRepeatable(name string, every time.Duration, req JobRequest) error {
	_, err := r.scheduler.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			fire := req
			fire.JobID = RepeatableJobID(name, every, time.Now())
			if _, err := r.Enqueue(ctx, fire); err != nil {
				slog.Error("Failed to enqueue repeatable job",
					"repeatable", name, "queue", req.Queue, "error", err)
			}
		}),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule repeatable %q: %w", name, err)
	}
	return nil
}

// RepeatableJobID builds the deterministic identity for one firing of a
// repeatable: all replicas firing within the same interval bucket produce
// the same id.
func RepeatableJobID(name string, every time.Duration, now time.Time) string {
	bucket := now.UTC().Truncate(every).Unix()
	return fmt.Sprintf("cron:%s:%d", name, bucket)
}
