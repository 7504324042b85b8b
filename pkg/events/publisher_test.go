package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"type":"message.new","message_id":"m1","project_id":"p1","content":"hello"}`)

	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "hello", m["content"])
}

func TestTruncateIfNeeded_SmallPayloadUnchanged(t *testing.T) {
	payload := `{"type":"typing","project_id":"p1"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeeded_LargePayloadEnvelope(t *testing.T) {
	big := map[string]any{
		"type":       "message.new",
		"message_id": "m1",
		"project_id": "p1",
		"content":    strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 7900)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, "message.new", envelope["type"])
	assert.Equal(t, "m1", envelope["message_id"])
	assert.Equal(t, "p1", envelope["project_id"])
	assert.NotContains(t, envelope, "content")
}

func TestInjectDBEventID_LargePayloadKeepsID(t *testing.T) {
	big := map[string]any{
		"type":       "message.new",
		"message_id": "m1",
		"project_id": "p1",
		"content":    strings.Repeat("y", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(bigJSON, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
}

func TestChatChannel(t *testing.T) {
	assert.Equal(t, "chat:proj-1", ChatChannel("proj-1"))
}
