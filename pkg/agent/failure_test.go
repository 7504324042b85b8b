package agent

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureRecoverability(t *testing.T) {
	tests := []struct {
		kind          FailureKind
		unrecoverable bool
	}{
		{FailureSystemConfig, true},
		{FailureUsageLimit, true},
		{FailureInsufficientBalance, true},
		{FailureTimeout, false},
		{FailureCrash, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			f := NewFailure(tt.kind, errors.New("boom"))
			assert.Equal(t, tt.unrecoverable, f.Unrecoverable())
		})
	}
}

func TestAsFailureWrapsUnknownAsCrash(t *testing.T) {
	f := AsFailure(errors.New("weird"))
	assert.Equal(t, FailureCrash, f.Kind)

	f = AsFailure(fmt.Errorf("run: %w", ErrTimedOut))
	assert.Equal(t, FailureTimeout, f.Kind)

	wrapped := fmt.Errorf("outer: %w", NewFailure(FailureUsageLimit, errors.New("limit")))
	f = AsFailure(wrapped)
	assert.Equal(t, FailureUsageLimit, f.Kind)
}

func TestClassifyRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  StreamRecord
		kind FailureKind
	}{
		{"usage limit by subtype", StreamRecord{Subtype: "usage_limit_exceeded", Message: "limited"}, FailureUsageLimit},
		{"usage limit by text", StreamRecord{Result: "Usage limit reached until 18:00"}, FailureUsageLimit},
		{"insufficient balance", StreamRecord{Message: "insufficient balance for this request"}, FailureInsufficientBalance},
		{"invalid config", StreamRecord{Subtype: "invalid_config", Message: "bad api key"}, FailureSystemConfig},
		{"anything else is crash", StreamRecord{Message: "panic in tool runner"}, FailureCrash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, classifyRecord(tt.rec).Kind)
		})
	}
}

func TestClassifySessionNotFound(t *testing.T) {
	f := classifyRecord(StreamRecord{Message: "No conversation found with session id sess-1"})
	assert.True(t, errors.Is(f, ErrSessionNotFound))
}
