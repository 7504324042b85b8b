package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminPauseRequest is the HTTP request body for POST /api/v1/admin/pause.
// An empty Queue pauses the global gate, stopping dispatch on every queue.
type AdminPauseRequest struct {
	Queue  string     `json:"queue"`
	Reason string     `json:"reason"`
	Until  *time.Time `json:"until"`
}

// adminPauseHandler handles POST /api/v1/admin/pause.
// In-flight jobs are unaffected; only new dispatch stops.
func (s *Server) adminPauseHandler(c *gin.Context) {
	if s.queues == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue runtime not available"})
		return
	}

	var req AdminPauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}

	if err := s.queues.Pause(c.Request.Context(), req.Queue, req.Reason, req.Until); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "paused",
		"queue":  req.Queue,
		"reason": req.Reason,
	})
}

// AdminResumeRequest is the HTTP request body for POST /api/v1/admin/resume.
type AdminResumeRequest struct {
	Queue string `json:"queue"`
}

// adminResumeHandler handles POST /api/v1/admin/resume.
func (s *Server) adminResumeHandler(c *gin.Context) {
	if s.queues == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue runtime not available"})
		return
	}

	var req AdminResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.queues.Resume(c.Request.Context(), req.Queue); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "resumed",
		"queue":  req.Queue,
	})
}

// adminLimitClearHandler handles POST /api/v1/admin/limit/clear.
// Clears the upstream limit state and resumes the global gate without waiting
// for the reset deadline.
func (s *Server) adminLimitClearHandler(c *gin.Context) {
	if s.limiter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "limit controller not available"})
		return
	}

	if err := s.limiter.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// queueStatsHandler handles GET /api/v1/admin/queues/:queue.
func (s *Server) queueStatsHandler(c *gin.Context) {
	if s.queues == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue runtime not available"})
		return
	}

	queueName := c.Param("queue")
	stats, err := s.queues.Stats(c.Request.Context(), queueName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
