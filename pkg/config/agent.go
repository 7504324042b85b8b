package config

import "time"

// MockSessionPrefix gates the end-to-end test bypass: a session id with this
// prefix skips the deploy handoff and records a static preview URL.
const MockSessionPrefix = "mock_session_"

// AgentConfig controls the external code-generation agent subprocess.
type AgentConfig struct {
	// BinaryPath is the agent executable. Must be executable from the
	// project working directory (validated pre-flight).
	BinaryPath string `yaml:"binary_path"`

	// InitialTimeout is the wall-clock budget for attempt 1.
	InitialTimeout time.Duration `yaml:"initial_timeout"`

	// RetryTimeout is the budget for attempts >= 2 with no files on disk.
	RetryTimeout time.Duration `yaml:"retry_timeout"`

	// RetryTimeoutWithFiles is the budget for attempts >= 2 resuming over
	// existing files.
	RetryTimeoutWithFiles time.Duration `yaml:"retry_timeout_with_files"`

	// MetadataTimeout is the budget for the recommendations/docs session.
	MetadataTimeout time.Duration `yaml:"metadata_timeout"`

	// KillGrace is how long after the terminating signal before SIGKILL.
	KillGrace time.Duration `yaml:"kill_grace"`

	// CompactSessions enables session compaction after the metadata stage.
	CompactSessions bool `yaml:"compact_sessions"`
}

// DefaultAgentConfig returns the built-in agent defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		BinaryPath:            "forge-agent",
		InitialTimeout:        12 * time.Minute,
		RetryTimeout:          6 * time.Minute,
		RetryTimeoutWithFiles: 8 * time.Minute,
		MetadataTimeout:       3 * time.Minute,
		KillGrace:             10 * time.Second,
		CompactSessions:       false,
	}
}

// WorkspaceConfig controls the on-disk project layout.
type WorkspaceConfig struct {
	// BaseDir is the root under which project directories live:
	// {base}/{userId}/{projectId}.
	BaseDir string `yaml:"base_dir"`

	// HiddenDir is the metadata directory inside each project
	// (deploy-intent.json, recommendations.json, project-info.md).
	HiddenDir string `yaml:"hidden_dir"`

	// IgnoreFile is the ignore-list file that must exclude HiddenDir.
	IgnoreFile string `yaml:"ignore_file"`
}

// DefaultWorkspaceConfig returns the built-in workspace defaults.
func DefaultWorkspaceConfig() *WorkspaceConfig {
	return &WorkspaceConfig{
		BaseDir:    "/var/lib/forge/projects",
		HiddenDir:  ".forge",
		IgnoreFile: ".gitignore",
	}
}

// AccountingConfig controls wall-clock agent time metering.
type AccountingConfig struct {
	// Enabled toggles balance checks and debits entirely.
	Enabled bool `yaml:"enabled"`

	// MinimumBalanceSeconds is the pre-flight floor: a build does not start
	// below this balance.
	MinimumBalanceSeconds int64 `yaml:"minimum_balance_seconds"`
}

// DefaultAccountingConfig returns the built-in accounting defaults.
func DefaultAccountingConfig() *AccountingConfig {
	return &AccountingConfig{
		Enabled:               true,
		MinimumBalanceSeconds: 60,
	}
}

// LimitsConfig controls the limit controller and the redis-backed ports.
type LimitsConfig struct {
	// RedisAddr is the redis endpoint for rate counters and leases.
	RedisAddr string `yaml:"redis_addr"`

	// RedisPassword is optional.
	RedisPassword string `yaml:"redis_password"`

	// UserInitiateLimit is the max initiate calls per user per window.
	UserInitiateLimit int `yaml:"user_initiate_limit"`

	// UserInitiateWindow is the throttle window for initiate calls.
	UserInitiateWindow time.Duration `yaml:"user_initiate_window"`

	// DefaultPauseDuration is used when an upstream signal carries no
	// reset time.
	DefaultPauseDuration time.Duration `yaml:"default_pause_duration"`

	// RollbackLeaseTTL is the TTL of the rollback lock key.
	RollbackLeaseTTL time.Duration `yaml:"rollback_lease_ttl"`

	// DeliveryMarkerTTL is how long delivered-event markers are kept for
	// mark-delivered deduplication.
	DeliveryMarkerTTL time.Duration `yaml:"delivery_marker_ttl"`
}

// DefaultLimitsConfig returns the built-in limits defaults.
func DefaultLimitsConfig() *LimitsConfig {
	return &LimitsConfig{
		RedisAddr:            "localhost:6379",
		UserInitiateLimit:    10,
		UserInitiateWindow:   time.Minute,
		DefaultPauseDuration: 5 * time.Minute,
		RollbackLeaseTTL:     2 * time.Minute,
		DeliveryMarkerTTL:    24 * time.Hour,
	}
}

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// PreviewBaseURL prefixes deployed preview URLs.
	PreviewBaseURL string `yaml:"preview_base_url"`

	// MockPreviewURL is returned for mock agent sessions.
	MockPreviewURL string `yaml:"mock_preview_url"`

	// AllowedWSOrigins are additional WebSocket origin patterns.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`

	// EventTTL is how long ephemeral event rows are retained.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the housekeeping job runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		PreviewBaseURL:  "https://preview.appforge.dev",
		MockPreviewURL:  "https://preview.appforge.dev/_mock",
		EventTTL:        24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}
