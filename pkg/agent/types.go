// Package agent supervises the external code-generation agent subprocess.
//
// The agent is a black box launched per build attempt: it receives the
// prompt on stdin, works inside the project directory, and reports progress
// as newline-delimited JSON records on stdout. The first record carries the
// agent session id; the final record carries the outcome and usage totals.
// The supervisor owns the process lifecycle — deadline, terminate signal,
// kill grace — and translates agent failures into retryable or unrecoverable
// errors for the queue.
package agent

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for agent runs.
var (
	// ErrSessionNotFound indicates the agent rejected a resume id. The
	// caller falls back to a fresh session.
	ErrSessionNotFound = errors.New("agent session not found")

	// ErrTimedOut indicates the run exceeded its wall-clock budget.
	ErrTimedOut = errors.New("agent run timed out")
)

// RunInput describes one agent invocation.
type RunInput struct {
	// ProjectDir is the working directory the agent is confined to.
	ProjectDir string

	// Prompt is written to the agent's stdin and the pipe closed.
	Prompt string

	// ResumeSessionID resumes a previous agent session when non-empty.
	ResumeSessionID string

	// Timeout is the wall-clock budget for this attempt.
	Timeout time.Duration

	// Env is appended to the minimal environment the agent receives.
	Env []string
}

// RunResult is the outcome of a completed agent run.
type RunResult struct {
	// SessionID is the agent-assigned session id from the first record.
	SessionID string

	// Result is the agent's final output text.
	Result string

	// NumTurns is the number of agent turns reported in the final record.
	NumTurns int

	// InputTokens / OutputTokens are usage totals from the final record.
	InputTokens  int64
	OutputTokens int64

	// CostUSD is the agent-reported cost estimate.
	CostUSD float64

	// Duration is the measured wall-clock run time.
	Duration time.Duration
}

// StreamRecord is one NDJSON line from the agent's stdout.
type StreamRecord struct {
	Type      string  `json:"type"` // "system", "progress", "result", "error"
	SessionID string  `json:"session_id,omitempty"`
	Subtype   string  `json:"subtype,omitempty"`
	Phase     string  `json:"phase,omitempty"`
	Message   string  `json:"message,omitempty"`
	Result    string  `json:"result,omitempty"`
	IsError   bool    `json:"is_error,omitempty"`
	NumTurns  int     `json:"num_turns,omitempty"`
	CostUSD   float64 `json:"total_cost_usd,omitempty"`
	Usage     *Usage  `json:"usage,omitempty"`
}

// Usage holds token totals from the agent's final record.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// ProgressFunc receives every stream record as it arrives.
// Must not block: long work belongs on the caller's side of a channel.
type ProgressFunc func(ctx context.Context, rec StreamRecord)
