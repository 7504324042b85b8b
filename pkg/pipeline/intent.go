package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DeployIntentFile is the agent-written lane selection file inside the
// hidden metadata directory.
const DeployIntentFile = "deploy-intent.json"

// Deploy lanes.
const (
	LaneStatic = "static"
	LaneEdge   = "edge"
	LaneNode   = "node"
)

// DeployIntent is the agent's runtime lane selection, authoritative for the
// deploy stage.
type DeployIntent struct {
	Framework string   `json:"framework"`
	Lane      string   `json:"lane"`
	Reasons   []string `json:"reasons,omitempty"`
	Evidence  []string `json:"evidence,omitempty"`
}

// ReadDeployIntent loads the intent file from the hidden directory. A
// missing or unreadable file falls back to the static lane: the safest lane
// that can serve whatever the agent wrote.
func ReadDeployIntent(projectPath, hiddenDir string) *DeployIntent {
	path := filepath.Join(projectPath, hiddenDir, DeployIntentFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return &DeployIntent{Lane: LaneStatic}
	}

	var intent DeployIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		return &DeployIntent{Lane: LaneStatic}
	}

	switch intent.Lane {
	case LaneStatic, LaneEdge, LaneNode:
	default:
		intent.Lane = LaneStatic
	}
	return &intent
}

// WriteDeployIntent persists an intent file. Used by tests and tooling; in
// production the agent writes this file.
func WriteDeployIntent(projectPath, hiddenDir string, intent *DeployIntent) error {
	data, err := json.MarshalIndent(intent, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deploy intent: %w", err)
	}
	path := filepath.Join(projectPath, hiddenDir, DeployIntentFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write deploy intent: %w", err)
	}
	return nil
}
