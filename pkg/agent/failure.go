package agent

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind classifies why an agent run failed. The kind decides whether
// the queue retries the build attempt or gives up immediately.
type FailureKind string

// Failure kinds.
const (
	// FailureSystemConfig covers operator errors: missing binary, bad
	// flags, unusable project directory. Retrying cannot help.
	FailureSystemConfig FailureKind = "system_config_error"

	// FailureUsageLimit is the upstream capacity signal. The limit
	// controller pauses the pipeline; retrying before the reset is futile.
	FailureUsageLimit FailureKind = "usage_limit_exceeded"

	// FailureInsufficientBalance means the user cannot pay for the run.
	FailureInsufficientBalance FailureKind = "insufficient_balance"

	// FailureTimeout means the attempt exceeded its wall-clock budget.
	FailureTimeout FailureKind = "timeout"

	// FailureCrash covers everything else: nonzero exits, malformed
	// output, broken pipes. Worth retrying.
	FailureCrash FailureKind = "crash"
)

// Failure is a classified agent error.
type Failure struct {
	Kind FailureKind
	Err  error
}

// Error returns the formatted failure message.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

// Unwrap returns the underlying error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Unrecoverable reports whether retrying this failure is pointless.
func (f *Failure) Unrecoverable() bool {
	switch f.Kind {
	case FailureSystemConfig, FailureUsageLimit, FailureInsufficientBalance:
		return true
	}
	return false
}

// NewFailure creates a classified failure.
func NewFailure(kind FailureKind, err error) *Failure {
	return &Failure{Kind: kind, Err: err}
}

// AsFailure extracts a *Failure from an error chain, classifying unknown
// errors as crashes.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	if errors.Is(err, ErrTimedOut) {
		return NewFailure(FailureTimeout, err)
	}
	return NewFailure(FailureCrash, err)
}

// classifyRecord inspects an agent error record's message for the
// well-known failure signals. The agent reports them as plain text in the
// final record, so matching is by substring.
func classifyRecord(rec StreamRecord) *Failure {
	msg := rec.Message
	if msg == "" {
		msg = rec.Result
	}
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "session_not_found") || strings.Contains(lower, "no conversation found"):
		return NewFailure(FailureCrash, ErrSessionNotFound)
	case strings.Contains(lower, "usage limit") || rec.Subtype == "usage_limit_exceeded":
		return NewFailure(FailureUsageLimit, errors.New(msg))
	case strings.Contains(lower, "insufficient balance") || rec.Subtype == "insufficient_balance":
		return NewFailure(FailureInsufficientBalance, errors.New(msg))
	case rec.Subtype == "invalid_config" || strings.Contains(lower, "configuration error"):
		return NewFailure(FailureSystemConfig, errors.New(msg))
	default:
		return NewFailure(FailureCrash, errors.New(msg))
	}
}
