package limits

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/ratelimitstate"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/queue"
)

// singletonID is the id of the only RateLimitState row.
const singletonID = 1

// QueueGate is the subset of the queue runtime the controller drives.
type QueueGate interface {
	Pause(ctx context.Context, queueName, reason string, until *time.Time) error
	Resume(ctx context.Context, queueName string) error
}

// Status is the externally visible limit state.
type Status struct {
	Limited bool       `json:"limited"`
	Reason  string     `json:"reason,omitempty"`
	ResetAt *time.Time `json:"reset_at,omitempty"`
}

// Controller reacts to upstream capacity signals: when the agent reports a
// usage limit, the controller pauses the global queue gate, records the
// durable RateLimitState singleton, and arms an auto-resume timer for the
// reset instant. Pausing is observed by every replica through the database;
// the timer is merely the local replica's wake-up call, and firing it twice
// (one per replica) is harmless because Clear is idempotent.
type Controller struct {
	client *ent.Client
	gate   QueueGate
	cfg    *config.LimitsConfig

	mu          sync.Mutex
	resumeTimer *time.Timer
}

// NewController creates a limit controller.
func NewController(client *ent.Client, gate QueueGate, cfg *config.LimitsConfig) *Controller {
	return &Controller{
		client: client,
		gate:   gate,
		cfg:    cfg,
	}
}

// Restore re-arms the controller from durable state after a restart:
// an active limit with a future reset gets its timer back, an expired one
// is cleared immediately.
func (c *Controller) Restore(ctx context.Context) error {
	state, err := c.client.RateLimitState.Get(ctx, singletonID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load rate limit state: %w", err)
	}

	if !state.Active {
		return nil
	}

	if state.ResetAt != nil && state.ResetAt.After(time.Now()) {
		slog.Info("Restoring active upstream limit", "reset_at", state.ResetAt, "reason", state.Reason)
		c.armResumeTimer(time.Until(*state.ResetAt))
		return nil
	}

	slog.Info("Upstream limit expired during downtime, clearing")
	return c.Clear(ctx)
}

// Trip records an upstream limit and pauses the global gate. resetAt nil
// falls back to the configured default pause duration.
func (c *Controller) Trip(ctx context.Context, reason string, resetAt *time.Time) error {
	if resetAt == nil {
		t := time.Now().Add(c.cfg.DefaultPauseDuration)
		resetAt = &t
	}

	err := c.client.RateLimitState.Create().
		SetID(singletonID).
		SetActive(true).
		SetReason(reason).
		SetResetAt(*resetAt).
		OnConflictColumns(ratelimitstate.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record rate limit state: %w", err)
	}

	if err := c.gate.Pause(ctx, queue.GlobalGate, reason, resetAt); err != nil {
		return fmt.Errorf("failed to pause global gate: %w", err)
	}

	c.armResumeTimer(time.Until(*resetAt))

	slog.Warn("Upstream limit tripped, pipeline paused", "reason", reason, "reset_at", resetAt)
	return nil
}

// Clear deactivates the limit and resumes the global gate. Idempotent.
func (c *Controller) Clear(ctx context.Context) error {
	c.mu.Lock()
	if c.resumeTimer != nil {
		c.resumeTimer.Stop()
		c.resumeTimer = nil
	}
	c.mu.Unlock()

	_, err := c.client.RateLimitState.Update().
		Where(ratelimitstate.IDEQ(singletonID)).
		SetActive(false).
		SetReason("").
		ClearResetAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear rate limit state: %w", err)
	}

	if err := c.gate.Resume(ctx, queue.GlobalGate); err != nil {
		return fmt.Errorf("failed to resume global gate: %w", err)
	}

	slog.Info("Upstream limit cleared, pipeline resumed")
	return nil
}

// Status reads the durable limit state.
//
// Reads FAIL CLOSED: if the database is unreachable we report limited, so
// callers stop admitting new work rather than pile jobs onto a pipeline
// whose state is unknown.
func (c *Controller) Status(ctx context.Context) Status {
	state, err := c.client.RateLimitState.Get(ctx, singletonID)
	if err != nil {
		if ent.IsNotFound(err) {
			return Status{Limited: false}
		}
		slog.Error("Failed to read rate limit state, failing closed", "error", err)
		return Status{Limited: true, Reason: "limit state unavailable"}
	}

	if !state.Active {
		return Status{Limited: false}
	}
	return Status{
		Limited: true,
		Reason:  state.Reason,
		ResetAt: state.ResetAt,
	}
}

// armResumeTimer schedules the auto-resume. Re-arming replaces any timer.
func (c *Controller) armResumeTimer(d time.Duration) {
	if d < 0 {
		d = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resumeTimer != nil {
		c.resumeTimer.Stop()
	}
	c.resumeTimer = time.AfterFunc(d, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.Clear(ctx); err != nil {
			slog.Error("Auto-resume after upstream limit failed", "error", err)
		}
	})
}
