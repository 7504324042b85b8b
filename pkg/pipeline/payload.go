// Package pipeline implements the staged build workers: stream (agent
// supervision), metadata (recommendations and docs), and deploy. Each worker
// is a queue handler that owns its stage's lifecycle writes.
package pipeline

import (
	"encoding/json"
	"fmt"
)

// StagePayload is the job payload shared by the pipeline stages. The
// initiator writes it for stage one; the stream worker forwards it, enriched
// with the session id and project path, to the metadata and deploy stages.
type StagePayload struct {
	ProjectID         string `json:"project_id"`
	BuildID           string `json:"build_id"`
	VersionID         string `json:"version_id"`
	UserID            string `json:"user_id"`
	IsInitialBuild    bool   `json:"is_initial_build"`
	PreviousSessionID string `json:"previous_session_id,omitempty"`
	Framework         string `json:"framework,omitempty"`
	BaseVersionID     string `json:"base_version_id,omitempty"`
	SessionID         string `json:"session_id,omitempty"`
	ProjectPath       string `json:"project_path,omitempty"`
}

// decodePayload converts the stored job payload into a StagePayload.
func decodePayload(raw map[string]interface{}) (*StagePayload, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job payload: %w", err)
	}

	var p StagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode job payload: %w", err)
	}
	if p.ProjectID == "" || p.BuildID == "" {
		return nil, fmt.Errorf("job payload missing project_id or build_id")
	}
	return &p, nil
}

// asMap converts the payload back to the queue's JSON map form.
func (p *StagePayload) asMap() map[string]interface{} {
	data, _ := json.Marshal(p)
	var m map[string]interface{}
	_ = json.Unmarshal(data, &m)
	return m
}
