package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/appforge/forge/ent"
	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/pkg/database"
	"github.com/appforge/forge/pkg/events"
)

// MessagePublisher is the slice of the event publisher the timeline needs.
type MessagePublisher interface {
	PublishMessageNew(ctx context.Context, projectID string, payload events.MessageNewPayload) error
}

// AppendMessageRequest describes one timeline message.
type AppendMessageRequest struct {
	ProjectID       string
	ActorType       message.ActorType
	Mode            message.Mode
	Content         string
	ParentMessageID string
	BuildID         string
	Response        map[string]interface{}
}

// TimelineService manages the durable per-project message timeline.
//
// seq comes from a process-wide DB sequence and is the replay cursor for
// subscribers. The at-most-one-assistant-reply-per-parent rule is enforced by
// a partial unique index; losing that race re-reads the winner and returns it
// as this caller's own success.
type TimelineService struct {
	client    *ent.Client
	db        *sql.DB
	publisher MessagePublisher
}

// NewTimelineService creates a new TimelineService. publisher may be nil;
// messages are then persisted without live broadcast.
func NewTimelineService(client *ent.Client, db *sql.DB, publisher MessagePublisher) *TimelineService {
	return &TimelineService{client: client, db: db, publisher: publisher}
}

// AppendMessage persists a timeline message and broadcasts it as a durable
// message.new event. Broadcast failures are logged, not returned: the message
// is already durable and subscribers recover it through catchup.
func (s *TimelineService) AppendMessage(httpCtx context.Context, req AppendMessageRequest) (*ent.Message, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("ProjectID", "required")
	}
	if req.ActorType == "" {
		return nil, NewValidationError("ActorType", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("Content", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	seq, err := database.NextMessageSeq(ctx, s.db)
	if err != nil {
		return nil, err
	}

	create := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetSeq(seq).
		SetActorType(req.ActorType).
		SetContent(req.Content).
		SetCreatedAt(time.Now())
	if req.Mode != "" {
		create = create.SetMode(req.Mode)
	}
	if req.ParentMessageID != "" {
		create = create.SetParentMessageID(req.ParentMessageID)
	}
	if req.BuildID != "" {
		create = create.SetBuildID(req.BuildID)
	}
	if req.Response != nil {
		create = create.SetResponse(req.Response)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && req.ActorType == message.ActorTypeAssistant && req.ParentMessageID != "" {
			// Another replica already answered this parent. Return its reply.
			return s.existingAssistantReply(ctx, req.ProjectID, req.ParentMessageID)
		}
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	s.broadcast(ctx, msg)
	return msg, nil
}

// existingAssistantReply loads the reply that won the unique-index race.
func (s *TimelineService) existingAssistantReply(ctx context.Context, projectID, parentID string) (*ent.Message, error) {
	existing, err := s.client.Message.Query().
		Where(
			message.ProjectIDEQ(projectID),
			message.ParentMessageIDEQ(parentID),
			message.ActorTypeEQ(message.ActorTypeAssistant),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing assistant reply: %w", err)
	}
	slog.Debug("Assistant reply race lost, returning existing",
		"project_id", projectID, "parent_message_id", parentID, "message_id", existing.ID)
	return existing, nil
}

// broadcast publishes the persisted message as a durable message.new event.
func (s *TimelineService) broadcast(ctx context.Context, msg *ent.Message) {
	if s.publisher == nil {
		return
	}

	payload := events.MessageNewPayload{
		Type:      events.EventTypeMessageNew,
		MessageID: msg.ID,
		ProjectID: msg.ProjectID,
		Seq:       msg.Seq,
		ActorType: msg.ActorType,
		Mode:      msg.Mode,
		Content:   msg.Content,
		Response:  msg.Response,
		Timestamp: msg.CreatedAt.Format(time.RFC3339Nano),
	}
	if msg.ParentMessageID != nil {
		payload.ParentMessageID = *msg.ParentMessageID
	}

	if err := s.publisher.PublishMessageNew(ctx, msg.ProjectID, payload); err != nil {
		slog.Warn("Failed to broadcast timeline message",
			"project_id", msg.ProjectID, "message_id", msg.ID, "error", err)
	}
}

// GetTimeline retrieves messages for a project after sinceSeq, oldest first.
func (s *TimelineService) GetTimeline(ctx context.Context, projectID string, sinceSeq int64, limit int) ([]*ent.Message, error) {
	if limit <= 0 {
		limit = 100
	}

	msgs, err := s.client.Message.Query().
		Where(
			message.ProjectIDEQ(projectID),
			message.SeqGT(sinceSeq),
		).
		Order(ent.Asc(message.FieldSeq)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	return msgs, nil
}
