package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalescerLastWriteWins(t *testing.T) {
	c := NewCoalescer(nil, 0)

	c.Offer(ProgressPayload{ProjectID: "p1", BuildID: "b1", Detail: "step 1"})
	c.Offer(ProgressPayload{ProjectID: "p1", BuildID: "b1", Detail: "step 2"})
	c.Offer(ProgressPayload{ProjectID: "p1", BuildID: "b1", Detail: "step 3"})

	// Three offers for one build collapse to one pending frame
	assert.Equal(t, 1, c.pendingCount())

	c.mu.Lock()
	frame := c.pending["b1"]
	c.mu.Unlock()
	assert.Equal(t, "step 3", frame.Detail)
}

func TestCoalescerPerBuildIsolation(t *testing.T) {
	c := NewCoalescer(nil, 0)

	c.Offer(ProgressPayload{ProjectID: "p1", BuildID: "b1", Detail: "a"})
	c.Offer(ProgressPayload{ProjectID: "p2", BuildID: "b2", Detail: "b"})

	assert.Equal(t, 2, c.pendingCount())
}

func TestCoalescerDefaultInterval(t *testing.T) {
	c := NewCoalescer(nil, 0)
	assert.Equal(t, DefaultCoalesceInterval, c.interval)

	c2 := NewCoalescer(nil, 2*DefaultCoalesceInterval)
	assert.Equal(t, 2*DefaultCoalesceInterval, c2.interval)
}
