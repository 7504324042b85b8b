package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/appforge/forge/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		StreamConcurrency:       3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		MaxAttempts:             3,
		BackoffBase:             1 * time.Second,
		BackoffMax:              60 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanScanInterval:      5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", "build-stage-one", nil, cfg, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", "build-stage-one", nil, cfg, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", "deploy", nil, cfg, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentJobID)
	assert.Equal(t, 0, h.JobsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "build:p1:op1")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "build:p1:op1", h.CurrentJobID)
}

func TestBackoff(t *testing.T) {
	base := 1 * time.Second
	max := 60 * time.Second

	assert.Equal(t, 1*time.Second, Backoff(base, max, 1))
	assert.Equal(t, 2*time.Second, Backoff(base, max, 2))
	assert.Equal(t, 4*time.Second, Backoff(base, max, 3))
	assert.Equal(t, 32*time.Second, Backoff(base, max, 6))

	// Capped at max
	assert.Equal(t, max, Backoff(base, max, 7))
	assert.Equal(t, max, Backoff(base, max, 50))

	// Degenerate attempt values fall back to base
	assert.Equal(t, base, Backoff(base, max, 0))
	assert.Equal(t, base, Backoff(base, max, -3))
}
