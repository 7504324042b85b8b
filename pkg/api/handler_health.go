package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appforge/forge/pkg/database"
	"github.com/appforge/forge/pkg/version"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
	healthStatusError    = "error"
)

// HealthCheck is one subsystem's entry in a health envelope.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the health envelope returned by the health endpoints.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// healthHandler handles GET /health.
// Minimal unauthenticated probe: only the database is checked, so an
// unhealthy upstream (agent binary, redis) cannot make the orchestrator
// restart the pod.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
		c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:  healthStatusError,
			Version: version.GitCommit,
			Checks: map[string]HealthCheck{
				"database": {Status: healthStatusError, Message: err.Error()},
			},
		})
		return
	}

	c.JSON(http.StatusOK, &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Checks: map[string]HealthCheck{
			"database": {Status: healthStatusHealthy},
		},
	})
}

// adminHealthHandler handles GET /api/v1/admin/health.
// Full envelope over database, worker pools, and the upstream limit state.
// 200 only when fully healthy; degraded and error return 503.
func (s *Server) adminHealthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	degrade := func(to string) {
		// error outranks degraded, degraded outranks healthy
		if status == healthStatusError {
			return
		}
		if to == healthStatusError || status == healthStatusHealthy {
			status = to
		}
	}

	if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
		degrade(healthStatusError)
		checks["database"] = HealthCheck{Status: healthStatusError, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.queues != nil {
		for queueName, pool := range s.queues.Health() {
			name := "queue:" + queueName
			if pool == nil || !pool.IsHealthy {
				msg := "worker pool unhealthy"
				if pool != nil && pool.DBError != "" {
					msg = pool.DBError
				}
				degrade(healthStatusDegraded)
				checks[name] = HealthCheck{Status: healthStatusDegraded, Message: msg}
			} else {
				checks[name] = HealthCheck{Status: healthStatusHealthy}
			}
		}
	}

	if s.limiter != nil {
		limit := s.limiter.Status(reqCtx)
		if limit.Limited {
			degrade(healthStatusDegraded)
			checks["upstream_limit"] = HealthCheck{Status: healthStatusDegraded, Message: limit.Reason}
		} else {
			checks["upstream_limit"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status != healthStatusHealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}
