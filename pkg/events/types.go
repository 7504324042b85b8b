// Package events provides real-time progress delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two delivery tiers exist, distinguished by durability:
//
// DURABLE (events table + NOTIFY):
//
//	The payload is INSERTed into the events table and pg_notify fires in the
//	same transaction. The serial row id becomes the event's sequence number;
//	clients reconnecting with last_event_id replay everything they missed.
//	Timeline messages (message.new), build status transitions, and version
//	announcements use this tier — they must survive disconnects.
//
// EPHEMERAL (NOTIFY only):
//
//	pg_notify fires without any row. Lost on disconnect by design. Typing
//	indicators and high-frequency build progress use this tier; progress is
//	additionally coalesced to at most one frame per second per build (see
//	coalescer.go), keeping the NOTIFY volume flat no matter how chatty the
//	agent is.
//
// Every payload carries a project id; routing is per-project via the
// chat:{project_id} channel.
package events

// Durable event types (stored in DB + NOTIFY).
const (
	// EventTypeMessageNew announces a new timeline message.
	EventTypeMessageNew = "message.new"

	// EventTypeMessageReplay marks catchup re-deliveries of timeline
	// messages so clients can distinguish them from live traffic.
	EventTypeMessageReplay = "message.replay"

	// EventTypeBuildStatus announces a build lifecycle transition.
	EventTypeBuildStatus = "build.status"

	// EventTypeVersionCreated announces a successfully created version.
	EventTypeVersionCreated = "version.created"
)

// Ephemeral event types (NOTIFY only, no DB persistence).
const (
	// EventTypeTyping is the assistant typing indicator.
	EventTypeTyping = "typing"

	// EventTypeProgress carries coalesced agent progress frames.
	EventTypeProgress = "progress"
)

// GlobalBuildsChannel is the channel for build-level status events.
// Admin dashboards subscribe to this for fleet-wide visibility.
const GlobalBuildsChannel = "builds"

// ChatChannel returns the channel name for one project's timeline.
// Format: "chat:{project_id}"
func ChatChannel(projectID string) string {
	return "chat:" + projectID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "mark_delivered", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "chat:proj-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
	EventID     *int   `json:"event_id,omitempty"`      // For mark_delivered
}
