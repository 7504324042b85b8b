// Package api exposes the worker plane's inbound HTTP surface: build
// initiation, the chat timeline, rollback, the deploy callback, the admin
// pause/resume/health endpoints, and the WebSocket upgrade. Payloads arrive
// pre-authenticated by the fronting proxy; this layer validates shape and
// ownership, then delegates to the services.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appforge/forge/pkg/build"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/database"
	"github.com/appforge/forge/pkg/events"
	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
)

// BuildStarter is the slice of the build initiator the API needs.
type BuildStarter interface {
	Initiate(ctx context.Context, req build.InitiateRequest) (*build.InitiateResult, error)
}

// QueueAdmin is the queue runtime surface driven by the admin endpoints.
type QueueAdmin interface {
	Pause(ctx context.Context, queueName, reason string, until *time.Time) error
	Resume(ctx context.Context, queueName string) error
	Stats(ctx context.Context, queueName string) (*queue.Stats, error)
	Health() map[string]*queue.PoolHealth
}

// LimitAdmin is the limit controller surface driven by the admin endpoints.
type LimitAdmin interface {
	Status(ctx context.Context) limits.Status
	Clear(ctx context.Context) error
}

// StatusPublisher broadcasts build lifecycle transitions triggered at the
// HTTP boundary (deploy callback).
type StatusPublisher interface {
	PublishBuildStatus(ctx context.Context, projectID string, payload events.BuildStatusPayload) error
}

// Server holds the handler dependencies.
type Server struct {
	db          *database.Client
	cfg         *config.Config
	initiator   BuildStarter
	projects    *services.ProjectService
	timeline    *services.TimelineService
	versions    *services.VersionService
	publisher   StatusPublisher
	queues      QueueAdmin
	limiter     LimitAdmin
	connManager *events.ConnectionManager
}

// ServerDeps bundles the Server's collaborators. publisher, queues, limiter,
// and connManager may be nil; the endpoints that need them return 503.
type ServerDeps struct {
	DB          *database.Client
	Config      *config.Config
	Initiator   BuildStarter
	Projects    *services.ProjectService
	Timeline    *services.TimelineService
	Versions    *services.VersionService
	Publisher   StatusPublisher
	Queues      QueueAdmin
	Limiter     LimitAdmin
	ConnManager *events.ConnectionManager
}

// NewServer creates the API server.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		db:          deps.DB,
		cfg:         deps.Config,
		initiator:   deps.Initiator,
		projects:    deps.Projects,
		timeline:    deps.Timeline,
		versions:    deps.Versions,
		publisher:   deps.Publisher,
		queues:      deps.Queues,
		limiter:     deps.Limiter,
		connManager: deps.ConnManager,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/builds", s.createBuildHandler)
		v1.POST("/projects/:id/messages", s.chatMessageHandler)
		v1.GET("/projects/:id/timeline", s.timelineHandler)
		v1.POST("/projects/:id/rollback", s.rollbackHandler)
		v1.POST("/deploy/callback", s.deployCallbackHandler)

		admin := v1.Group("/admin")
		{
			admin.GET("/health", s.adminHealthHandler)
			admin.POST("/pause", s.adminPauseHandler)
			admin.POST("/resume", s.adminResumeHandler)
			admin.POST("/limit/clear", s.adminLimitClearHandler)
			admin.GET("/queues/:queue", s.queueStatsHandler)
		}
	}

	return r
}
