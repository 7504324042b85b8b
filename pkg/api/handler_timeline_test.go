package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/pkg/services"
)

func TestTimelineSinceSeqCursor(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-tl", "user-1")
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 3; i++ {
		msg, err := f.timeline.AppendMessage(ctx, services.AppendMessageRequest{
			ProjectID: "proj-tl",
			ActorType: message.ActorTypeClient,
			Content:   fmt.Sprintf("message %d", i+1),
		})
		require.NoError(t, err)
		seqs = append(seqs, msg.Seq)
	}

	// Full replay from zero.
	rec := f.perform(t, http.MethodGet, "/api/v1/projects/proj-tl/timeline", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var full TimelineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
	require.Len(t, full.Messages, 3)
	assert.Equal(t, "message 1", full.Messages[0].Content)

	// Cursor past the second message returns only the third.
	url := fmt.Sprintf("/api/v1/projects/proj-tl/timeline?since_seq=%d", seqs[1])
	rec = f.perform(t, http.MethodGet, url, "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tail TimelineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tail))
	require.Len(t, tail.Messages, 1)
	assert.Equal(t, "message 3", tail.Messages[0].Content)
}

func TestTimelineRequiresOwnership(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-tl2", "someone-else")

	rec := f.perform(t, http.MethodGet, "/api/v1/projects/proj-tl2/timeline", "user-1", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTimelineRejectsBadCursor(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-tl3", "user-1")

	rec := f.perform(t, http.MethodGet, "/api/v1/projects/proj-tl3/timeline?since_seq=abc", "user-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
