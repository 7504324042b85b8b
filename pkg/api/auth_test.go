package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExtractUserIDPriority(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "forwarded user wins",
			headers: map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "a@x.io", "X-Remote-User": "bob"},
			want:    "alice",
		},
		{
			name:    "email when no user",
			headers: map[string]string{"X-Forwarded-Email": "a@x.io", "X-Remote-User": "bob"},
			want:    "a@x.io",
		},
		{
			name:    "remote user fallback",
			headers: map[string]string{"X-Remote-User": "bob"},
			want:    "bob",
		},
		{
			name:    "default without headers",
			headers: nil,
			want:    "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractUserID(c))
		})
	}
}
