package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/appforge/forge/pkg/build"
)

// maxPromptLength caps the build prompt at the HTTP boundary.
const maxPromptLength = 100_000

// CreateBuildRequest is the HTTP request body for POST /api/v1/builds.
// ProjectID is optional; when absent a fresh project is provisioned for the
// caller and the build runs as an initial build.
type CreateBuildRequest struct {
	ProjectID     string `json:"project_id"`
	Prompt        string `json:"prompt"`
	Framework     string `json:"framework"`
	OperationID   string `json:"operation_id"`
	BaseVersionID string `json:"base_version_id"`
}

// createBuildHandler handles POST /api/v1/builds.
// Resolves the project, runs the initiation algorithm, and returns 202 with
// the (build, version, job) id triple.
func (s *Server) createBuildHandler(c *gin.Context) {
	// 1. Bind and validate request body
	var req CreateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}
	if len(req.Prompt) > maxPromptLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt exceeds maximum length of 100,000 characters"})
		return
	}

	// 2. Extract user
	userID := extractUserID(c)

	// 3. Resolve the target project; no project id means a fresh one
	projectID := req.ProjectID
	isInitial := false
	previousSessionID := ""
	if projectID == "" {
		projectID = ulid.Make().String()
		if _, err := s.projects.CreateProject(c.Request.Context(), projectID, userID, req.Framework); err != nil {
			respondError(c, err)
			return
		}
		isInitial = true
	} else {
		proj, err := s.projects.AuthorizeOwner(c.Request.Context(), projectID, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		isInitial = proj.CurrentVersionID == nil
		if proj.LastAgentSessionID != nil {
			previousSessionID = *proj.LastAgentSessionID
		}
	}

	// 4. Initiate: admission gates, idempotency, enqueue
	result, err := s.initiator.Initiate(c.Request.Context(), build.InitiateRequest{
		UserID:            userID,
		ProjectID:         projectID,
		Prompt:            req.Prompt,
		Framework:         req.Framework,
		IsInitialBuild:    isInitial,
		BaseVersionID:     req.BaseVersionID,
		PreviousSessionID: previousSessionID,
		OperationID:       req.OperationID,
		Source:            "http",
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// 5. Return 202 Accepted with the resolved ids
	c.JSON(http.StatusAccepted, gin.H{
		"project_id": projectID,
		"build_id":   result.BuildID,
		"version_id": result.VersionID,
		"job_id":     result.JobID,
		"status":     result.Status,
	})
}
