package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/pkg/config"
)

func TestSessionResumeFallsBackToFresh(t *testing.T) {
	// The fake agent rejects any resume attempt and succeeds on fresh runs:
	// the handle must retry fresh without surfacing the rejection.
	cfg := writeFakeAgent(t, `
cat > /dev/null
for arg in "$@"; do
  if [ "$arg" = "--resume" ]; then
    echo '{"type":"error","message":"session_not_found: no conversation found with that id"}'
    exit 1
  fi
done
echo '{"type":"result","session_id":"sess-fresh","result":"rebuilt"}'
`)
	sess := NewSession(cfg, t.TempDir(), nil)

	result, err := sess.Resume(context.Background(), "sess-gone", "same prompt", 10*time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, "sess-fresh", result.SessionID)
	assert.Equal(t, "rebuilt", result.Result)
	assert.Equal(t, "sess-fresh", sess.ID())
}

func TestSessionResumeContinuesKnownSession(t *testing.T) {
	cfg := writeFakeAgent(t, `
cat > /dev/null
echo '{"type":"result","session_id":"sess-known","result":"continued"}'
`)
	sess := NewSession(cfg, t.TempDir(), nil)

	result, err := sess.Resume(context.Background(), "sess-known", "more", 10*time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, "continued", result.Result)
	assert.Equal(t, "sess-known", sess.ID())
}

func TestSessionMockDetection(t *testing.T) {
	sess := &Session{id: config.MockSessionPrefix + "e2e-1"}
	assert.True(t, sess.IsMock())

	sess.id = "sess-real"
	assert.False(t, sess.IsMock())
}
