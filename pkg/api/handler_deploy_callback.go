package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appforge/forge/ent"
	entbuild "github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/pkg/events"
)

// DeployCallbackRequest is the HTTP request body for POST /api/v1/deploy/callback.
// DeploymentID is the build ULID handed to the deploy provider when the
// deployment was created; the callback closes the loop on that build.
type DeployCallbackRequest struct {
	DeploymentID string `json:"deployment_id"`
	Status       string `json:"status"`
	URL          string `json:"url"`
}

// deployCallbackHandler handles POST /api/v1/deploy/callback.
// On success the build's version and project transition to deployed with the
// provider-reported preview URL; anything else marks them failed.
func (s *Server) deployCallbackHandler(c *gin.Context) {
	var req DeployCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DeploymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deployment_id is required"})
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	ctx := c.Request.Context()

	b, err := s.db.Build.Get(ctx, req.DeploymentID)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown deployment"})
			return
		}
		respondError(c, err)
		return
	}

	if req.Status != "success" {
		s.finishDeploy(c, b, entbuild.StatusFailed, "")
		return
	}

	v, err := s.versions.GetByBuild(ctx, b.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.projects.MarkDeployed(ctx, b.ProjectID, v.ID, v.DisplayName, req.URL, ""); err != nil {
		respondError(c, err)
		return
	}
	s.finishDeploy(c, b, entbuild.StatusDeployed, req.URL)
}

// finishDeploy records the terminal build status and broadcasts it.
func (s *Server) finishDeploy(c *gin.Context, b *ent.Build, status entbuild.Status, previewURL string) {
	ctx := c.Request.Context()

	update := s.db.Build.UpdateOneID(b.ID).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if status == entbuild.StatusFailed {
		update = update.SetErrorType("deploy_failed").
			SetErrorMessage("deploy provider reported failure")

		if err := s.projects.MarkFailed(ctx, b.ProjectID); err != nil {
			slog.Error("Failed to mark project failed after deploy callback",
				"project_id", b.ProjectID, "build_id", b.ID, "error", err)
		}
	}
	if err := update.Exec(ctx); err != nil {
		respondError(c, err)
		return
	}

	if s.publisher != nil {
		payload := events.BuildStatusPayload{
			Type:      events.EventTypeBuildStatus,
			ProjectID: b.ProjectID,
			BuildID:   b.ID,
			Status:    status,
			Attempt:   b.Attempt,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}
		if status == entbuild.StatusFailed {
			payload.Error = "deploy_failed"
		}
		if err := s.publisher.PublishBuildStatus(ctx, b.ProjectID, payload); err != nil {
			slog.Warn("Failed to publish deploy callback status",
				"project_id", b.ProjectID, "build_id", b.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"build_id":    b.ID,
		"status":      string(status),
		"preview_url": previewURL,
	})
}
