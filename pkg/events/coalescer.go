package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultCoalesceInterval is the per-build progress frame rate: at most one
// frame per interval reaches clients, last write wins.
const DefaultCoalesceInterval = time.Second

// Coalescer throttles progress frames per build. The agent can emit dozens
// of output lines per second; clients only need the latest one. Offer
// replaces any frame pending for the same build, and a ticker flushes the
// survivors once per interval.
//
// Flush delivers whatever is pending immediately — called at stream end so
// the final frame is never delayed behind the ticker.
type Coalescer struct {
	publisher *EventPublisher
	interval  time.Duration

	mu      sync.Mutex
	pending map[string]ProgressPayload // build_id → latest frame

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewCoalescer creates a progress coalescer. interval <= 0 uses the default.
func NewCoalescer(publisher *EventPublisher, interval time.Duration) *Coalescer {
	if interval <= 0 {
		interval = DefaultCoalesceInterval
	}
	return &Coalescer{
		publisher: publisher,
		interval:  interval,
		pending:   make(map[string]ProgressPayload),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the flush loop.
func (c *Coalescer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stopCh:
				return
			case <-ticker.C:
				c.flushAll(ctx)
			}
		}
	}()
}

// Stop flushes pending frames and stops the loop.
// It is safe to call Stop multiple times.
func (c *Coalescer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
	c.flushAll(context.Background())
}

// Offer records a progress frame for the build, replacing any frame still
// waiting for the next flush. Never blocks.
func (c *Coalescer) Offer(payload ProgressPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[payload.BuildID] = payload
}

// Flush immediately publishes the pending frame for one build, if any.
func (c *Coalescer) Flush(ctx context.Context, buildID string) {
	c.mu.Lock()
	payload, ok := c.pending[buildID]
	if ok {
		delete(c.pending, buildID)
	}
	c.mu.Unlock()

	if ok {
		c.publish(ctx, payload)
	}
}

// flushAll publishes every pending frame.
func (c *Coalescer) flushAll(ctx context.Context) {
	c.mu.Lock()
	batch := c.pending
	c.pending = make(map[string]ProgressPayload)
	c.mu.Unlock()

	for _, payload := range batch {
		c.publish(ctx, payload)
	}
}

func (c *Coalescer) publish(ctx context.Context, payload ProgressPayload) {
	if err := c.publisher.PublishProgress(ctx, payload.ProjectID, payload); err != nil {
		slog.Warn("Failed to publish coalesced progress",
			"project_id", payload.ProjectID, "build_id", payload.BuildID, "error", err)
	}
}

// pendingCount returns the number of builds with a pending frame.
// Unexported — used by tests.
func (c *Coalescer) pendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
