package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOwnedProject(t *testing.T, f *apiFixture, projectID, userID string) {
	t.Helper()
	_, err := f.projects.CreateProject(context.Background(), projectID, userID, "")
	require.NoError(t, err)
}

func TestChatMessagePlanModePersistsWithoutBuild(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-chat", "user-1")

	rec := f.perform(t, http.MethodPost, "/api/v1/projects/proj-chat/messages", "user-1", ChatMessageRequest{
		ClientMsgID: "cmsg-1",
		Mode:        "plan",
		Content:     "what would a redesign look like?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeJSON(t, rec)
	assert.NotEmpty(t, body["message_id"])
	assert.Empty(t, body["build_id"])
	assert.Empty(t, f.starter.reqs)

	// The message landed on the durable timeline.
	msgs, err := f.timeline.GetTimeline(context.Background(), "proj-chat", 0, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "what would a redesign look like?", msgs[0].Content)
}

func TestChatMessageBuildModeInitiates(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-chat2", "user-1")

	rec := f.perform(t, http.MethodPost, "/api/v1/projects/proj-chat2/messages", "user-1", ChatMessageRequest{
		ClientMsgID: "cmsg-2",
		Mode:        "build",
		Content:     "add a checkout page",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "build-1", body["build_id"])

	// The client message id became the idempotency key.
	require.Len(t, f.starter.reqs, 1)
	assert.Equal(t, "cmsg-2", f.starter.reqs[0].OperationID)
	assert.Equal(t, "chat", f.starter.reqs[0].Source)
	assert.Equal(t, "add a checkout page", f.starter.reqs[0].Prompt)
}

func TestChatMessageRejectsUnknownMode(t *testing.T) {
	f := setupAPI(t)
	seedOwnedProject(t, f, "proj-chat3", "user-1")

	rec := f.perform(t, http.MethodPost, "/api/v1/projects/proj-chat3/messages", "user-1", ChatMessageRequest{
		Mode:    "deploy",
		Content: "x",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatMessageUnknownProjectIs404(t *testing.T) {
	f := setupAPI(t)

	rec := f.perform(t, http.MethodPost, "/api/v1/projects/nope/messages", "user-1", ChatMessageRequest{
		Content: "hello?",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
