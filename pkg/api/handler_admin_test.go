package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/forge/pkg/limits"
	"github.com/appforge/forge/pkg/queue"
)

func TestAdminPauseGlobalGate(t *testing.T) {
	f := setupAPI(t)
	until := time.Now().Add(time.Hour).UTC()

	rec := f.perform(t, http.MethodPost, "/api/v1/admin/pause", "admin", AdminPauseRequest{
		Reason: "maintenance window",
		Until:  &until,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, f.queues.paused, 1)
	assert.Equal(t, "", f.queues.paused[0].queue)
	assert.Equal(t, "maintenance window", f.queues.paused[0].reason)
	require.NotNil(t, f.queues.paused[0].until)
}

func TestAdminPauseRequiresReason(t *testing.T) {
	f := setupAPI(t)

	rec := f.perform(t, http.MethodPost, "/api/v1/admin/pause", "admin", AdminPauseRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.queues.paused)
}

func TestAdminResume(t *testing.T) {
	f := setupAPI(t)

	rec := f.perform(t, http.MethodPost, "/api/v1/admin/resume", "admin", AdminResumeRequest{
		Queue: "build-stage-one",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"build-stage-one"}, f.queues.resumed)
}

func TestAdminLimitClear(t *testing.T) {
	f := setupAPI(t)
	f.limiter.status = limits.Status{Limited: true, Reason: "usage limit"}

	rec := f.perform(t, http.MethodPost, "/api/v1/admin/limit/clear", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.limiter.cleared)
}

func TestAdminHealthHealthy(t *testing.T) {
	f := setupAPI(t)
	f.queues.health = map[string]*queue.PoolHealth{
		"build-stage-one": {IsHealthy: true},
	}

	rec := f.perform(t, http.MethodGet, "/api/v1/admin/health", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestAdminHealthDegradedOnActiveLimit(t *testing.T) {
	f := setupAPI(t)
	resetAt := time.Now().Add(time.Hour)
	f.limiter.status = limits.Status{Limited: true, Reason: "usage limit", ResetAt: &resetAt}

	rec := f.perform(t, http.MethodGet, "/api/v1/admin/health", "admin", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "degraded", body["status"])
}

func TestAdminHealthDegradedOnUnhealthyPool(t *testing.T) {
	f := setupAPI(t)
	f.queues.health = map[string]*queue.PoolHealth{
		"deploy": {IsHealthy: false, DBError: "connection refused"},
	}

	rec := f.perform(t, http.MethodGet, "/api/v1/admin/health", "admin", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "degraded", body["status"])
}

func TestQueueStats(t *testing.T) {
	f := setupAPI(t)
	f.queues.stats = &queue.Stats{Queue: "deploy", Waiting: 2, Paused: true}

	rec := f.perform(t, http.MethodGet, "/api/v1/admin/queues/deploy", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	assert.Equal(t, "deploy", body["queue"])
	assert.Equal(t, float64(2), body["waiting"])
	assert.Equal(t, true, body["paused"])
}
