package config

import "time"

// Queue names used by the build pipeline. Stage handoff is by queue, not by
// direct call: the initiator enqueues on StageOne, the stream worker hands
// off to Metadata and Deploy.
const (
	QueueStageOne  = "build-stage-one"
	QueueMetadata  = "metadata"
	QueueDeploy    = "deploy"
	QueueHousekeep = "housekeeping"
)

// QueueConfig contains queue runtime and worker pool configuration.
// These values control how jobs are polled, claimed, and retried.
type QueueConfig struct {
	// StreamConcurrency is the number of stage-one workers per replica.
	StreamConcurrency int `yaml:"stream_concurrency"`

	// MetadataConcurrency is the number of metadata workers per replica.
	MetadataConcurrency int `yaml:"metadata_concurrency"`

	// DeployConcurrency is the number of deploy workers per replica.
	DeployConcurrency int `yaml:"deploy_concurrency"`

	// PollInterval is the base interval for checking waiting jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often an active job's heartbeat is refreshed.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// MaxAttempts is the default per-job attempt cap.
	MaxAttempts int `yaml:"max_attempts"`

	// BackoffBase is the first retry delay; doubled each attempt.
	BackoffBase time.Duration `yaml:"backoff_base"`

	// BackoffMax caps the exponential backoff.
	BackoffMax time.Duration `yaml:"backoff_max"`

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanScanInterval is how often to scan for orphaned jobs.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// OrphanThreshold is how long a job can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		StreamConcurrency:       3,
		MetadataConcurrency:     2,
		DeployConcurrency:       2,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       15 * time.Second,
		MaxAttempts:             3,
		BackoffBase:             1 * time.Second,
		BackoffMax:              60 * time.Second,
		GracefulShutdownTimeout: 20 * time.Minute,
		OrphanScanInterval:      5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
