package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepeatableJobID(t *testing.T) {
	every := time.Hour
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	// Firings within the same interval bucket collapse to one id
	a := RepeatableJobID("cleanup", every, base.Add(5*time.Minute))
	b := RepeatableJobID("cleanup", every, base.Add(42*time.Minute))
	assert.Equal(t, a, b)

	// The next bucket gets a new id
	c := RepeatableJobID("cleanup", every, base.Add(61*time.Minute))
	assert.NotEqual(t, a, c)

	// Different repeatables never collide
	d := RepeatableJobID("event-ttl", every, base.Add(5*time.Minute))
	assert.NotEqual(t, a, d)

	assert.Contains(t, a, "cron:cleanup:")
}
