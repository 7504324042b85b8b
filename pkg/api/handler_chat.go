package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appforge/forge/ent/message"
	"github.com/appforge/forge/pkg/build"
	"github.com/appforge/forge/pkg/services"
)

// ChatMessageRequest is the HTTP request body for POST /api/v1/projects/:id/messages.
// ClientMsgID is the caller-chosen idempotency key: in build mode it doubles
// as the operation id, so retries of the same message converge on one build.
type ChatMessageRequest struct {
	ClientMsgID string `json:"client_msg_id"`
	Mode        string `json:"mode"`
	Content     string `json:"content"`
}

// ChatMessageResponse is the HTTP response for POST /api/v1/projects/:id/messages.
type ChatMessageResponse struct {
	MessageID string `json:"message_id"`
	Seq       int64  `json:"seq"`
	BuildID   string `json:"build_id,omitempty"`
	VersionID string `json:"version_id,omitempty"`
	JobID     string `json:"job_id,omitempty"`
}

// chatMessageHandler handles POST /api/v1/projects/:id/messages.
// Appends the client message to the durable timeline; in build mode it also
// initiates a build keyed on the client message id.
func (s *Server) chatMessageHandler(c *gin.Context) {
	// 1. Validate project id
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	// 2. Bind and validate request body
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	if len(req.Content) > maxPromptLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content exceeds maximum length of 100,000 characters"})
		return
	}
	mode := message.Mode(req.Mode)
	if mode == "" {
		mode = message.ModeBuild
	}
	if mode != message.ModePlan && mode != message.ModeBuild {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be plan or build"})
		return
	}

	// 3. Extract user, verify ownership
	userID := extractUserID(c)
	proj, err := s.projects.AuthorizeOwner(c.Request.Context(), projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	// 4. Append the client message to the timeline
	msg, err := s.timeline.AppendMessage(c.Request.Context(), services.AppendMessageRequest{
		ProjectID: projectID,
		ActorType: message.ActorTypeClient,
		Mode:      mode,
		Content:   req.Content,
		Response: map[string]interface{}{
			"client_msg_id": req.ClientMsgID,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// 5. Plan mode stops here: the message is durable, nothing is enqueued
	if mode == message.ModePlan {
		c.JSON(http.StatusCreated, &ChatMessageResponse{
			MessageID: msg.ID,
			Seq:       msg.Seq,
		})
		return
	}

	// 6. Build mode: initiate keyed on the client message id
	previousSessionID := ""
	if proj.LastAgentSessionID != nil {
		previousSessionID = *proj.LastAgentSessionID
	}
	result, err := s.initiator.Initiate(c.Request.Context(), build.InitiateRequest{
		UserID:            userID,
		ProjectID:         projectID,
		Prompt:            req.Content,
		IsInitialBuild:    proj.CurrentVersionID == nil,
		PreviousSessionID: previousSessionID,
		OperationID:       req.ClientMsgID,
		Source:            "chat",
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// 7. Return 202 Accepted
	c.JSON(http.StatusAccepted, &ChatMessageResponse{
		MessageID: msg.ID,
		Seq:       msg.Seq,
		BuildID:   result.BuildID,
		VersionID: result.VersionID,
		JobID:     result.JobID,
	})
}
