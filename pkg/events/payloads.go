package events

import (
	"github.com/appforge/forge/ent/build"
	"github.com/appforge/forge/ent/message"
)

// MessageNewPayload is the payload for message.new events.
// Published when a timeline message is written (client, assistant, or system).
type MessageNewPayload struct {
	Type            string            `json:"type"`       // always EventTypeMessageNew
	MessageID       string            `json:"message_id"` // message ULID
	ProjectID       string            `json:"project_id"` // owning project
	Seq             int64             `json:"seq"`        // timeline sequence number
	ActorType       message.ActorType `json:"actor_type"` // client, assistant, system
	Mode            message.Mode      `json:"mode,omitempty"`
	Content         string            `json:"content"`
	ParentMessageID string            `json:"parent_message_id,omitempty"`
	Response        map[string]any    `json:"response,omitempty"`
	Timestamp       string            `json:"timestamp"` // RFC3339Nano
}

// BuildStatusPayload is the payload for build.status events.
// Published on every build lifecycle transition.
type BuildStatusPayload struct {
	Type      string       `json:"type"`       // always EventTypeBuildStatus
	ProjectID string       `json:"project_id"` // owning project
	BuildID   string       `json:"build_id"`   // build ULID
	Status    build.Status `json:"status"`     // started, ai_completed, deployed, failed
	Attempt   int          `json:"attempt"`
	Error     string       `json:"error,omitempty"`
	Timestamp string       `json:"timestamp"` // RFC3339Nano
}

// VersionCreatedPayload is the payload for version.created events.
type VersionCreatedPayload struct {
	Type        string `json:"type"`       // always EventTypeVersionCreated
	ProjectID   string `json:"project_id"` // owning project
	VersionID   string `json:"version_id"`
	BuildID     string `json:"build_id"`
	DisplayName string `json:"display_name"` // "v1", "v2", ... — frozen at creation
	Semver      string `json:"semver"`       // major.minor.patch from metadata stage
	Timestamp   string `json:"timestamp"`    // RFC3339Nano
}

// TypingPayload is the payload for typing ephemeral events.
type TypingPayload struct {
	Type      string `json:"type"`       // always EventTypeTyping
	ProjectID string `json:"project_id"` // owning project
	Active    bool   `json:"active"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// ProgressPayload is the payload for progress ephemeral events.
// Frames are coalesced per build before publishing: within each one-second
// window only the latest frame survives.
type ProgressPayload struct {
	Type      string `json:"type"`       // always EventTypeProgress
	ProjectID string `json:"project_id"` // owning project
	BuildID   string `json:"build_id"`
	Phase     string `json:"phase"`   // agent-reported phase label
	Detail    string `json:"detail"`  // latest agent output line
	Percent   int    `json:"percent"` // best-effort, -1 when unknown
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
