package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/pkg/config"
)

// writeFakeAgent installs a shell script standing in for the agent binary
// and returns a config pointing at it.
func writeFakeAgent(t *testing.T, script string) *config.AgentConfig {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake agent script requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "fake-agent")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	cfg := config.DefaultAgentConfig()
	cfg.BinaryPath = path
	cfg.KillGrace = 2 * time.Second
	return cfg
}

func TestRunParsesStreamAndResult(t *testing.T) {
	cfg := writeFakeAgent(t, `
cat > /dev/null
echo '{"type":"system","session_id":"sess-123"}'
echo '{"type":"progress","phase":"writing","message":"index.html"}'
echo '{"type":"result","session_id":"sess-123","result":"done","num_turns":4,"total_cost_usd":0.12,"usage":{"input_tokens":100,"output_tokens":250}}'
`)
	runner := NewRunner(cfg)

	var mu sync.Mutex
	var phases []string
	result, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "build it",
		Timeout:    10 * time.Second,
	}, func(_ context.Context, rec StreamRecord) {
		mu.Lock()
		phases = append(phases, rec.Type)
		mu.Unlock()
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-123", result.SessionID)
	assert.Equal(t, "done", result.Result)
	assert.Equal(t, 4, result.NumTurns)
	assert.Equal(t, int64(100), result.InputTokens)
	assert.Equal(t, int64(250), result.OutputTokens)
	assert.InDelta(t, 0.12, result.CostUSD, 1e-9)
	assert.Equal(t, []string{"system", "progress", "result"}, phases)
}

func TestRunSessionIDFromLaterRecord(t *testing.T) {
	// First record carries no session id; the build stays unknown until
	// one appears.
	cfg := writeFakeAgent(t, `
cat > /dev/null
echo '{"type":"system"}'
echo '{"type":"progress","session_id":"sess-late"}'
echo '{"type":"result","result":"ok"}'
`)
	runner := NewRunner(cfg)

	result, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "x",
		Timeout:    10 * time.Second,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "sess-late", result.SessionID)
}

func TestRunDeliversPromptOnStdin(t *testing.T) {
	cfg := writeFakeAgent(t, `
prompt=$(cat)
echo "{\"type\":\"result\",\"session_id\":\"s\",\"result\":\"$prompt\"}"
`)
	runner := NewRunner(cfg)

	result, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "hello world",
		Timeout:    10 * time.Second,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Result)
}

func TestRunTimeoutClassified(t *testing.T) {
	cfg := writeFakeAgent(t, `
cat > /dev/null
echo '{"type":"system","session_id":"sess-slow"}'
sleep 30
`)
	cfg.KillGrace = 500 * time.Millisecond
	runner := NewRunner(cfg)

	start := time.Now()
	result, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "x",
		Timeout:    1 * time.Second,
	}, nil)

	require.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.True(t, errors.Is(err, ErrTimedOut))

	f := AsFailure(err)
	assert.Equal(t, FailureTimeout, f.Kind)
	assert.False(t, f.Unrecoverable())
	// The session id seen before the deadline is still reported.
	assert.Equal(t, "sess-slow", result.SessionID)
}

func TestRunMissingBinaryIsSystemConfig(t *testing.T) {
	cfg := config.DefaultAgentConfig()
	cfg.BinaryPath = filepath.Join(t.TempDir(), "no-such-agent")
	runner := NewRunner(cfg)

	_, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "x",
		Timeout:    5 * time.Second,
	}, nil)

	require.Error(t, err)
	f := AsFailure(err)
	assert.Equal(t, FailureSystemConfig, f.Kind)
	assert.True(t, f.Unrecoverable())
}

func TestRunErrorRecordClassified(t *testing.T) {
	cfg := writeFakeAgent(t, `
cat > /dev/null
echo '{"type":"system","session_id":"sess-1"}'
echo '{"type":"result","is_error":true,"subtype":"usage_limit_exceeded","result":"usage limit reached, resets at 12:00"}'
exit 1
`)
	runner := NewRunner(cfg)

	_, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "x",
		Timeout:    10 * time.Second,
	}, nil)

	require.Error(t, err)
	f := AsFailure(err)
	assert.Equal(t, FailureUsageLimit, f.Kind)
	assert.True(t, f.Unrecoverable())
}

func TestRunCrashKeepsStderr(t *testing.T) {
	cfg := writeFakeAgent(t, `
cat > /dev/null
echo "segfault in generator" >&2
exit 3
`)
	runner := NewRunner(cfg)

	_, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "x",
		Timeout:    10 * time.Second,
	}, nil)

	require.Error(t, err)
	f := AsFailure(err)
	assert.Equal(t, FailureCrash, f.Kind)
	assert.False(t, f.Unrecoverable())
	assert.Contains(t, err.Error(), "segfault in generator")
}

func TestRunMalformedLinesSkipped(t *testing.T) {
	cfg := writeFakeAgent(t, `
cat > /dev/null
echo 'not json at all'
echo '{"type":"result","session_id":"s1","result":"fine"}'
`)
	runner := NewRunner(cfg)

	result, err := runner.Run(context.Background(), RunInput{
		ProjectDir: t.TempDir(),
		Prompt:     "x",
		Timeout:    10 * time.Second,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "fine", result.Result)
}

func TestTimeoutSelection(t *testing.T) {
	cfg := config.DefaultAgentConfig()
	runner := NewRunner(cfg)

	assert.Equal(t, cfg.InitialTimeout, runner.Timeout(1, false))
	assert.Equal(t, cfg.InitialTimeout, runner.Timeout(1, true))
	assert.Equal(t, cfg.RetryTimeout, runner.Timeout(2, false))
	assert.Equal(t, cfg.RetryTimeoutWithFiles, runner.Timeout(2, true))
	assert.Equal(t, cfg.RetryTimeoutWithFiles, runner.Timeout(3, true))
}
