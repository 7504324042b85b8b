package agent

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/appforge/forge/pkg/config"
)

// Session is a scoped handle on one agent conversation within a project
// directory. Run starts a fresh conversation; Resume continues a prior one
// and transparently falls back to a fresh conversation when the agent no
// longer knows the id.
type Session struct {
	runner     *Runner
	projectDir string
	env        []string

	// id is the last session id the agent reported.
	id string
}

// NewSession creates a session handle for a project directory.
func NewSession(cfg *config.AgentConfig, projectDir string, env []string) *Session {
	return &Session{
		runner:     NewRunner(cfg),
		projectDir: projectDir,
		env:        env,
	}
}

// ID returns the agent-reported session id, empty before the first run.
func (s *Session) ID() string {
	return s.id
}

// Timeout returns the wall-clock budget for a build attempt.
func (s *Session) Timeout(attempt int, hasExistingFiles bool) time.Duration {
	return s.runner.Timeout(attempt, hasExistingFiles)
}

// IsMock reports whether the agent handed back a mock session id. Mock
// sessions come from test environments and skip the deploy handoff.
func (s *Session) IsMock() bool {
	return strings.HasPrefix(s.id, config.MockSessionPrefix)
}

// Run starts a fresh agent conversation.
func (s *Session) Run(ctx context.Context, prompt string, timeout time.Duration, onProgress ProgressFunc) (*RunResult, error) {
	result, err := s.runner.Run(ctx, RunInput{
		ProjectDir: s.projectDir,
		Prompt:     prompt,
		Timeout:    timeout,
		Env:        s.env,
	}, onProgress)
	if result != nil && result.SessionID != "" {
		s.id = result.SessionID
	}
	return result, err
}

// Resume continues the conversation identified by sessionID. If the agent
// reports the id as unknown, Resume falls back to a fresh conversation with
// the same prompt — callers never see the rejection.
func (s *Session) Resume(ctx context.Context, sessionID, prompt string, timeout time.Duration, onProgress ProgressFunc) (*RunResult, error) {
	result, err := s.runner.Run(ctx, RunInput{
		ProjectDir:      s.projectDir,
		Prompt:          prompt,
		ResumeSessionID: sessionID,
		Timeout:         timeout,
		Env:             s.env,
	}, onProgress)
	if errors.Is(err, ErrSessionNotFound) {
		slog.Info("Agent session unknown, falling back to fresh session",
			"session_id", sessionID, "project_dir", s.projectDir)
		return s.Run(ctx, prompt, timeout, onProgress)
	}
	if result != nil && result.SessionID != "" {
		s.id = result.SessionID
	}
	return result, err
}
