package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /ws: upgrades to WebSocket and delegates to the
// ConnectionManager, which blocks until the connection closes.
// Cross-origin browsers must match an allowed_ws_origins pattern; with an
// empty list only same-origin connections are accepted.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.System.AllowedWSOrigins,
	})
	if err != nil {
		// Accept already wrote the HTTP error response.
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}
