package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appforge/forge/ent"
)

// TimelineResponse is the HTTP response for GET /api/v1/projects/:id/timeline.
type TimelineResponse struct {
	ProjectID string         `json:"project_id"`
	Messages  []*ent.Message `json:"messages"`
}

// timelineHandler handles GET /api/v1/projects/:id/timeline.
// Returns timeline messages after since_seq, oldest first. since_seq=0 (the
// default) replays the whole timeline; clients use their last seen seq as the
// cursor after reconnect.
func (s *Server) timelineHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	userID := extractUserID(c)
	if _, err := s.projects.AuthorizeOwner(c.Request.Context(), projectID, userID); err != nil {
		respondError(c, err)
		return
	}

	sinceSeq, err := strconv.ParseInt(c.DefaultQuery("since_seq", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "since_seq must be an integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	msgs, err := s.timeline.GetTimeline(c.Request.Context(), projectID, sinceSeq, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &TimelineResponse{
		ProjectID: projectID,
		Messages:  msgs,
	})
}
