package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/pkg/build"
	"github.com/appforge/forge/pkg/config"
	"github.com/appforge/forge/pkg/database"
	"github.com/appforge/forge/pkg/events"
	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/queue"
	"github.com/appforge/forge/pkg/services"
	testdb "github.com/appforge/forge/test/database"
)

type fakeStarter struct {
	mu     sync.Mutex
	reqs   []build.InitiateRequest
	result *build.InitiateResult
	err    error
}

func (f *fakeStarter) Initiate(_ context.Context, req build.InitiateRequest) (*build.InitiateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &build.InitiateResult{
		BuildID:   "build-1",
		VersionID: "version-1",
		JobID:     "job-1",
		Status:    build.StatusQueued,
	}, nil
}

type pauseCall struct {
	queue  string
	reason string
	until  *time.Time
}

type fakeQueueAdmin struct {
	mu      sync.Mutex
	paused  []pauseCall
	resumed []string
	health  map[string]*queue.PoolHealth
	stats   *queue.Stats
}

func (f *fakeQueueAdmin) Pause(_ context.Context, queueName, reason string, until *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paused = append(f.paused, pauseCall{queue: queueName, reason: reason, until: until})
	return nil
}

func (f *fakeQueueAdmin) Resume(_ context.Context, queueName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumed = append(f.resumed, queueName)
	return nil
}

func (f *fakeQueueAdmin) Stats(_ context.Context, queueName string) (*queue.Stats, error) {
	if f.stats != nil {
		return f.stats, nil
	}
	return &queue.Stats{Queue: queueName}, nil
}

func (f *fakeQueueAdmin) Health() map[string]*queue.PoolHealth {
	return f.health
}

type fakeLimitAdmin struct {
	mu      sync.Mutex
	status  limits.Status
	cleared int
}

func (f *fakeLimitAdmin) Status(_ context.Context) limits.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeLimitAdmin) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
	f.status = limits.Status{}
	return nil
}

type fakeStatusPublisher struct {
	mu       sync.Mutex
	statuses []events.BuildStatusPayload
}

func (f *fakeStatusPublisher) PublishBuildStatus(_ context.Context, _ string, payload events.BuildStatusPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, payload)
	return nil
}

type apiFixture struct {
	router    *gin.Engine
	db        *database.Client
	starter   *fakeStarter
	queues    *fakeQueueAdmin
	limiter   *fakeLimitAdmin
	publisher *fakeStatusPublisher
	projects  *services.ProjectService
	timeline  *services.TimelineService
	versions  *services.VersionService
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })

	f := &apiFixture{
		db:        db,
		starter:   &fakeStarter{},
		queues:    &fakeQueueAdmin{},
		limiter:   &fakeLimitAdmin{},
		publisher: &fakeStatusPublisher{},
		projects:  services.NewProjectService(db.Client, limits.NewLeaseManager(rc, time.Minute)),
		timeline:  services.NewTimelineService(db.Client, db.DB(), nil),
		versions:  services.NewVersionService(db.Client),
	}

	server := NewServer(ServerDeps{
		DB:        db,
		Config:    &config.Config{System: config.DefaultSystemConfig(), Server: config.DefaultServerConfig()},
		Initiator: f.starter,
		Projects:  f.projects,
		Timeline:  f.timeline,
		Versions:  f.versions,
		Publisher: f.publisher,
		Queues:    f.queues,
		Limiter:   f.limiter,
	})
	f.router = server.Router()
	return f
}

// perform runs one request through the router as the given user.
func (f *apiFixture) perform(t *testing.T, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Forwarded-User", userID)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	f := setupAPI(t)

	rec := f.perform(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	require.Equal(t, "healthy", body["status"])
}
