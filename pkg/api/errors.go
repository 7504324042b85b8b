package api

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/appforge/forge/pkg/accounting"
	"github.com/appforge/forge/pkg/build"
	"github.com/appforge/forge/pkg/services"
)

// respondError maps service and initiator errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}

	var throttled *build.ThrottledError
	if errors.As(err, &throttled) {
		setRetryAfter(c, throttled.RetryAfter)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many build requests"})
		return
	}

	var limited *build.LimitedError
	if errors.As(err, &limited) {
		setRetryAfter(c, limited.RetryAfter())
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":  "service is rate limited upstream",
			"reason": limited.Reason,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, services.ErrRollbackInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "rollback already in progress"})
	case errors.Is(err, accounting.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "insufficient balance"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// setRetryAfter sets the Retry-After header in whole seconds, minimum 1.
func setRetryAfter(c *gin.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	c.Header("Retry-After", strconv.Itoa(secs))
}
