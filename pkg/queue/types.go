// Package queue provides the durable, database-backed job queue that drives
// the build pipeline. Jobs survive restarts, are claimed with
// FOR UPDATE SKIP LOCKED, and retry with exponential backoff.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/appforge/forge/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrQueuePaused indicates the queue (or the global gate) is paused.
	ErrQueuePaused = errors.New("queue paused")

	// ErrJobNotFound indicates the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")

	// ErrJobNotCancelable indicates the job is active or already terminal.
	ErrJobNotCancelable = errors.New("job not cancelable")
)

// Handler processes a claimed job.
//
// The handler owns the ENTIRE stage lifecycle internally: it writes progress
// and domain state to the database as it goes. The worker only handles
// claiming, heartbeat, retry scheduling, and the terminal job status.
//
// Returning nil marks the job completed. Returning an error schedules a
// retry with backoff, unless the error is wrapped with Unrecoverable or the
// attempt cap is reached, in which case the job lands in a terminal failure
// state with no further attempts.
type Handler interface {
	Handle(ctx context.Context, job *ent.Job) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, job *ent.Job) error

// Handle calls f(ctx, job).
func (f HandlerFunc) Handle(ctx context.Context, job *ent.Job) error {
	return f(ctx, job)
}

// Deferral is the outcome of a pre-execution deferral check.
type Deferral int

// Deferral outcomes.
const (
	// DeferralRun executes the job now.
	DeferralRun Deferral = iota
	// DeferralRequeue pushes the job back with a delay, without consuming
	// an attempt.
	DeferralRequeue
	// DeferralCancel cancels the job permanently.
	DeferralCancel
)

// DeferralPolicy decides whether a claimed job flagged with
// delay_until_rollback_complete may run yet. Jobs without the flag skip the
// check entirely.
type DeferralPolicy interface {
	ShouldDefer(ctx context.Context, job *ent.Job) (Deferral, error)
}

// JobRequest describes a job to enqueue.
type JobRequest struct {
	// Queue is the named queue the job belongs to.
	Queue string

	// JobID is the caller-supplied identity. Enqueueing the same JobID
	// twice is a no-op: the first job wins.
	JobID string

	// Name is the job kind within the queue.
	Name string

	// Payload is the job's input, stored as JSON.
	Payload map[string]interface{}

	// Priority orders claiming within a queue; higher runs first.
	Priority int

	// Delay postpones the first claim.
	Delay time.Duration

	// MaxAttempts overrides the queue default when > 0.
	MaxAttempts int

	// DelayUntilRollbackComplete marks the job for the pre-execution
	// rollback deferral check.
	DelayUntilRollbackComplete bool
}

// EnqueueResult reports what Enqueue did.
type EnqueueResult struct {
	Job *ent.Job

	// Deduplicated is true when an existing job with the same JobID was
	// returned instead of creating a new one.
	Deduplicated bool
}

// Stats holds per-queue counters.
type Stats struct {
	Queue     string `json:"queue"`
	Waiting   int    `json:"waiting"`
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	Paused    bool   `json:"paused"`
}

// PoolHealth contains health information for one queue's worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	Queue            string         `json:"queue"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
