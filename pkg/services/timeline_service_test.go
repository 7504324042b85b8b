package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/pkg/events"
	testdb "github.com/appforge/forge/test/database"
)

// recordingPublisher captures broadcasts without a LISTEN connection.
type recordingPublisher struct {
	published []events.MessageNewPayload
}

func (r *recordingPublisher) PublishMessageNew(_ context.Context, _ string, payload events.MessageNewPayload) error {
	r.published = append(r.published, payload)
	return nil
}

func TestAppendMessageAllocatesIncreasingSeq(t *testing.T) {
	client := testdb.NewTestClient(t)
	pub := &recordingPublisher{}
	svc := NewTimelineService(client.Client, client.DB(), pub)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-t", "user-1")

	m1, err := svc.AppendMessage(ctx, AppendMessageRequest{
		ProjectID: "proj-t",
		ActorType: message.ActorTypeClient,
		Content:   "build me a site",
	})
	require.NoError(t, err)

	m2, err := svc.AppendMessage(ctx, AppendMessageRequest{
		ProjectID: "proj-t",
		ActorType: message.ActorTypeSystem,
		Content:   "build_initiated",
	})
	require.NoError(t, err)

	assert.Greater(t, m2.Seq, m1.Seq)
	require.Len(t, pub.published, 2)
	assert.Equal(t, events.EventTypeMessageNew, pub.published[0].Type)
	assert.Equal(t, m1.Seq, pub.published[0].Seq)
}

func TestAppendAssistantReplyDeduplicated(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTimelineService(client.Client, client.DB(), nil)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-d", "user-1")

	parent, err := svc.AppendMessage(ctx, AppendMessageRequest{
		ProjectID: "proj-d",
		ActorType: message.ActorTypeClient,
		Content:   "question",
	})
	require.NoError(t, err)

	first, err := svc.AppendMessage(ctx, AppendMessageRequest{
		ProjectID:       "proj-d",
		ActorType:       message.ActorTypeAssistant,
		Content:         "answer",
		ParentMessageID: parent.ID,
	})
	require.NoError(t, err)

	// The losing replica gets the winner's row back as its own success.
	second, err := svc.AppendMessage(ctx, AppendMessageRequest{
		ProjectID:       "proj-d",
		ActorType:       message.ActorTypeAssistant,
		Content:         "different answer",
		ParentMessageID: parent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "answer", second.Content)

	count, err := client.Message.Query().
		Where(
			message.ProjectIDEQ("proj-d"),
			message.ParentMessageIDEQ(parent.ID),
			message.ActorTypeEQ(message.ActorTypeAssistant),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetTimelineReplaysBySeq(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTimelineService(client.Client, client.DB(), nil)
	ctx := context.Background()

	createTestProject(t, client.Client, "proj-r", "user-1")

	var seqs []int64
	for _, content := range []string{"one", "two", "three"} {
		m, err := svc.AppendMessage(ctx, AppendMessageRequest{
			ProjectID: "proj-r",
			ActorType: message.ActorTypeClient,
			Content:   content,
		})
		require.NoError(t, err)
		seqs = append(seqs, m.Seq)
	}

	msgs, err := svc.GetTimeline(ctx, "proj-r", seqs[0], 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "two", msgs[0].Content)
	assert.Equal(t, "three", msgs[1].Content)

	msgs, err = svc.GetTimeline(ctx, "proj-r", 0, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 3)
}

func TestAppendMessageValidation(t *testing.T) {
	svc := NewTimelineService(nil, nil, nil)

	_, err := svc.AppendMessage(context.Background(), AppendMessageRequest{
		ActorType: message.ActorTypeClient,
		Content:   "x",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.AppendMessage(context.Background(), AppendMessageRequest{
		ProjectID: "p",
		ActorType: message.ActorTypeClient,
	})
	assert.True(t, IsValidationError(err))
}
