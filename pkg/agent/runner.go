package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/appforge/forge/pkg/config"
)

// Exit codes with defined meanings. Everything else is a crash.
const (
	exitTimeout  = 124 // agent self-reported deadline overrun
	exitNotFound = 127 // shell could not find the binary
)

// maxStdoutLine bounds one NDJSON record. Agent output lines are normally
// small; a runaway line means a broken agent, not a bigger buffer.
const maxStdoutLine = 1 << 20

// Runner launches and supervises agent subprocesses.
type Runner struct {
	cfg *config.AgentConfig
}

// NewRunner creates a subprocess runner.
func NewRunner(cfg *config.AgentConfig) *Runner {
	return &Runner{cfg: cfg}
}

// Timeout returns the wall-clock budget for a build attempt.
// First attempts get the full budget; retries get a shorter one, extended
// when the agent resumes over files already on disk.
func (r *Runner) Timeout(attempt int, hasExistingFiles bool) time.Duration {
	if attempt <= 1 {
		return r.cfg.InitialTimeout
	}
	if hasExistingFiles {
		return r.cfg.RetryTimeoutWithFiles
	}
	return r.cfg.RetryTimeout
}

// Run executes one agent invocation and blocks until it finishes.
//
// Process contract:
//   - prompt is written to stdin, then stdin is closed
//   - stdout is NDJSON; the first record carries session_id
//   - on deadline, the process gets the terminate signal, then KillGrace
//     later the kill signal
//   - resume rejections surface as ErrSessionNotFound so the caller can
//     fall back to a fresh session
//
// onProgress may be nil.
func (r *Runner) Run(ctx context.Context, input RunInput, onProgress ProgressFunc) (*RunResult, error) {
	runCtx, cancel := context.WithTimeout(ctx, input.Timeout)
	defer cancel()

	args := []string{"--output-format", "stream-json"}
	if input.ResumeSessionID != "" {
		args = append(args, "--resume", input.ResumeSessionID)
	}

	cmd := exec.CommandContext(runCtx, r.cfg.BinaryPath, args...)
	cmd.Dir = input.ProjectDir
	// Confine the agent: HOME inside the project keeps agent-written state
	// (caches, session files) out of the host account.
	cmd.Env = append([]string{
		"HOME=" + input.ProjectDir,
		"PWD=" + input.ProjectDir,
	}, input.Env...)

	// SIGTERM first; SIGKILL only after the grace window.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = r.cfg.KillGrace

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, NewFailure(FailureSystemConfig, fmt.Errorf("stdin pipe: %w", err))
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, NewFailure(FailureSystemConfig, fmt.Errorf("stdout pipe: %w", err))
	}
	var stderr strings.Builder
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		// Start failures are environmental: bad path, bad permissions.
		return nil, NewFailure(FailureSystemConfig, fmt.Errorf("failed to start agent: %w", err))
	}

	log := slog.With("pid", cmd.Process.Pid, "project_dir", input.ProjectDir)
	log.Info("Agent started", "resume", input.ResumeSessionID != "", "timeout", input.Timeout)

	// Deliver the prompt and close the pipe — the agent reads to EOF.
	if _, err := io.WriteString(stdin, input.Prompt); err != nil {
		log.Warn("Failed to write prompt to agent stdin", "error", err)
	}
	_ = stdin.Close()

	// Read concurrently with Wait: WaitDelay's forced pipe close is what
	// unblocks the reader when an agent child process inherits stdout and
	// outlives the agent.
	type streamOutcome struct {
		result *RunResult
		err    error
	}
	streamCh := make(chan streamOutcome, 1)
	go func() {
		res, err := r.consumeStream(runCtx, stdout, onProgress)
		streamCh <- streamOutcome{result: res, err: err}
	}()

	waitErr := cmd.Wait()
	stream := <-streamCh
	result, streamErr := stream.result, stream.err
	result.Duration = time.Since(start)

	if err := r.interpretExit(runCtx, waitErr, streamErr, stderr.String(), input); err != nil {
		return result, err
	}

	log.Info("Agent finished",
		"session_id", result.SessionID,
		"duration", result.Duration,
		"num_turns", result.NumTurns)
	return result, nil
}

// consumeStream reads NDJSON records until stdout closes. Returns the
// partial result and any error record the agent emitted.
func (r *Runner) consumeStream(ctx context.Context, stdout io.Reader, onProgress ProgressFunc) (*RunResult, error) {
	result := &RunResult{}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxStdoutLine)

	var streamErr error
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec StreamRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			slog.Warn("Skipping malformed agent output line", "error", err)
			continue
		}

		// The first record that names a session wins.
		if result.SessionID == "" && rec.SessionID != "" {
			result.SessionID = rec.SessionID
		}

		if onProgress != nil {
			onProgress(ctx, rec)
		}

		switch rec.Type {
		case "result":
			if rec.IsError {
				streamErr = classifyRecord(rec)
				continue
			}
			result.Result = rec.Result
			result.NumTurns = rec.NumTurns
			result.CostUSD = rec.CostUSD
			if rec.Usage != nil {
				result.InputTokens = rec.Usage.InputTokens
				result.OutputTokens = rec.Usage.OutputTokens
			}
		case "error":
			streamErr = classifyRecord(rec)
		}
	}
	if err := scanner.Err(); err != nil && streamErr == nil {
		streamErr = fmt.Errorf("reading agent output: %w", err)
	}

	return result, streamErr
}

// interpretExit folds the process exit status, the stream error, and the
// run context into a single classified error (or nil on success).
func (r *Runner) interpretExit(runCtx context.Context, waitErr, streamErr error, stderr string, input RunInput) error {
	// A resume rejection beats everything — the caller has a fallback.
	if streamErr != nil && errors.Is(streamErr, ErrSessionNotFound) {
		return ErrSessionNotFound
	}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return NewFailure(FailureTimeout, fmt.Errorf("%w after %v", ErrTimedOut, input.Timeout))
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			switch exitErr.ExitCode() {
			case exitTimeout:
				return NewFailure(FailureTimeout, fmt.Errorf("%w (agent exit %d)", ErrTimedOut, exitTimeout))
			case exitNotFound:
				return NewFailure(FailureSystemConfig, fmt.Errorf("agent binary not found (exit %d): %s", exitNotFound, firstLine(stderr)))
			}
		}
		if streamErr != nil {
			// The agent explained itself before dying — prefer its story.
			return streamErr
		}
		return NewFailure(FailureCrash, fmt.Errorf("agent exited: %w: %s", waitErr, firstLine(stderr)))
	}

	if streamErr != nil {
		return streamErr
	}
	return nil
}

// firstLine trims stderr to its first non-empty line for error messages.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
