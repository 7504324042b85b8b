package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Queue:      DefaultQueueConfig(),
		Agent:      DefaultAgentConfig(),
		Workspace:  DefaultWorkspaceConfig(),
		Accounting: DefaultAccountingConfig(),
		Limits:     DefaultLimitsConfig(),
		System:     DefaultSystemConfig(),
		Server:     DefaultServerConfig(),
	}
}

func TestValidateAllDefaults(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateQueue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QueueConfig)
		wantErr string
	}{
		{
			name:    "zero stream concurrency",
			mutate:  func(q *QueueConfig) { q.StreamConcurrency = 0 },
			wantErr: "stream_concurrency",
		},
		{
			name:    "negative max attempts",
			mutate:  func(q *QueueConfig) { q.MaxAttempts = -1 },
			wantErr: "max_attempts",
		},
		{
			name:    "backoff max below base",
			mutate:  func(q *QueueConfig) { q.BackoffMax = q.BackoffBase / 2 },
			wantErr: "backoff_max",
		},
		{
			name: "orphan threshold below heartbeat",
			mutate: func(q *QueueConfig) {
				q.HeartbeatInterval = time.Minute
				q.OrphanThreshold = 30 * time.Second
			},
			wantErr: "orphan_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Queue)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAgent(t *testing.T) {
	cfg := validTestConfig()
	cfg.Agent.BinaryPath = ""

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestValidateWorkspace(t *testing.T) {
	cfg := validTestConfig()
	cfg.Workspace.HiddenDir = "nested/dir"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateLimits(t *testing.T) {
	cfg := validTestConfig()
	cfg.Limits.RedisAddr = ""

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis_addr")
}
