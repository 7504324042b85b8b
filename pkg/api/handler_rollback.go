package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RollbackRequest is the HTTP request body for POST /api/v1/projects/:id/rollback.
type RollbackRequest struct {
	VersionID string `json:"version_id"`
}

// rollbackHandler handles POST /api/v1/projects/:id/rollback.
// Restores the project to a prior version under the rollback lease; a second
// concurrent rollback for the same project gets 409.
func (s *Server) rollbackHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	var req RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.VersionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version_id is required"})
		return
	}

	userID := extractUserID(c)
	if _, err := s.projects.AuthorizeOwner(c.Request.Context(), projectID, userID); err != nil {
		respondError(c, err)
		return
	}

	if err := s.projects.Rollback(c.Request.Context(), projectID, req.VersionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "rolled_back",
		"project_id": projectID,
		"version_id": req.VersionID,
	})
}
