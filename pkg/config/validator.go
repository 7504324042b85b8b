package config

import (
	"fmt"
	"strings"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateAgent(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateWorkspace(); err != nil {
		return fmt.Errorf("workspace validation failed: %w", err)
	}

	if err := v.validateAccounting(); err != nil {
		return fmt.Errorf("accounting validation failed: %w", err)
	}

	if err := v.validateLimits(); err != nil {
		return fmt.Errorf("limits validation failed: %w", err)
	}

	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.StreamConcurrency < 1 {
		return NewValidationError("queue", "stream_concurrency", fmt.Errorf("must be at least 1"))
	}
	if q.MetadataConcurrency < 1 {
		return NewValidationError("queue", "metadata_concurrency", fmt.Errorf("must be at least 1"))
	}
	if q.DeployConcurrency < 1 {
		return NewValidationError("queue", "deploy_concurrency", fmt.Errorf("must be at least 1"))
	}
	if q.MaxAttempts < 1 {
		return NewValidationError("queue", "max_attempts", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	if q.BackoffBase <= 0 {
		return NewValidationError("queue", "backoff_base", fmt.Errorf("must be positive"))
	}
	if q.BackoffMax < q.BackoffBase {
		return NewValidationError("queue", "backoff_max", fmt.Errorf("must be >= backoff_base"))
	}
	// Orphan detection must not race live heartbeats.
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "orphan_threshold",
			fmt.Errorf("must exceed heartbeat_interval (%s)", q.HeartbeatInterval))
	}

	return nil
}

func (v *ConfigValidator) validateAgent() error {
	a := v.cfg.Agent

	if a.BinaryPath == "" {
		return NewValidationError("agent", "binary_path", ErrMissingRequiredField)
	}
	if a.InitialTimeout <= 0 {
		return NewValidationError("agent", "initial_timeout", fmt.Errorf("must be positive"))
	}
	if a.RetryTimeout <= 0 {
		return NewValidationError("agent", "retry_timeout", fmt.Errorf("must be positive"))
	}
	if a.RetryTimeoutWithFiles <= 0 {
		return NewValidationError("agent", "retry_timeout_with_files", fmt.Errorf("must be positive"))
	}
	if a.KillGrace <= 0 {
		return NewValidationError("agent", "kill_grace", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateWorkspace() error {
	w := v.cfg.Workspace

	if w.BaseDir == "" {
		return NewValidationError("workspace", "base_dir", ErrMissingRequiredField)
	}
	if w.HiddenDir == "" {
		return NewValidationError("workspace", "hidden_dir", ErrMissingRequiredField)
	}
	if strings.Contains(w.HiddenDir, "/") {
		return NewValidationError("workspace", "hidden_dir",
			fmt.Errorf("%w: must be a single directory name", ErrInvalidValue))
	}

	return nil
}

func (v *ConfigValidator) validateAccounting() error {
	a := v.cfg.Accounting

	if a.Enabled && a.MinimumBalanceSeconds < 0 {
		return NewValidationError("accounting", "minimum_balance_seconds", fmt.Errorf("must be >= 0"))
	}

	return nil
}

func (v *ConfigValidator) validateLimits() error {
	l := v.cfg.Limits

	if l.RedisAddr == "" {
		return NewValidationError("limits", "redis_addr", ErrMissingRequiredField)
	}
	if l.UserInitiateLimit < 1 {
		return NewValidationError("limits", "user_initiate_limit", fmt.Errorf("must be at least 1"))
	}
	if l.UserInitiateWindow <= 0 {
		return NewValidationError("limits", "user_initiate_window", fmt.Errorf("must be positive"))
	}
	if l.DefaultPauseDuration <= 0 {
		return NewValidationError("limits", "default_pause_duration", fmt.Errorf("must be positive"))
	}
	if l.RollbackLeaseTTL <= 0 {
		return NewValidationError("limits", "rollback_lease_ttl", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	s := v.cfg.Server

	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "port", fmt.Errorf("must be between 1 and 65535"))
	}
	if s.WSWriteTimeout <= 0 {
		return NewValidationError("server", "ws_write_timeout", fmt.Errorf("must be positive"))
	}

	return nil
}
