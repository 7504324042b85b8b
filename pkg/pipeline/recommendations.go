package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RecommendationsFile is the metadata-stage output inside the hidden
// metadata directory.
const RecommendationsFile = "recommendations.json"

// ProjectInfoFile is the human-readable documentation written on initial
// builds.
const ProjectInfoFile = "project-info.md"

// ErrSchemaDrift indicates the agent's recommendations output no longer
// matches the expected schema. Non-fatal to the build: the metadata stage
// reports it and moves on.
var ErrSchemaDrift = errors.New("recommendations schema mismatch")

// Recommendation is one improvement suggestion for the generated project.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// VersionSemantics is the semver labeling parsed from the agent's output.
type VersionSemantics struct {
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	Patch      int    `json:"patch"`
	ChangeType string `json:"change_type"`
}

// RecommendationsDoc is the full metadata-stage JSON document. BuildID is
// stamped at write time; it is not part of the agent's output.
type RecommendationsDoc struct {
	BuildID         string           `json:"build_id,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	Version         VersionSemantics `json:"version"`
}

// ParseRecommendations extracts and validates the recommendations document
// from the agent's final output. The agent is instructed to emit only the
// JSON object, but surrounding prose is tolerated by scanning for the
// outermost braces.
func ParseRecommendations(output string) (*RecommendationsDoc, error) {
	raw := extractJSONObject(output)
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON object in output", ErrSchemaDrift)
	}

	var doc RecommendationsDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaDrift, err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *RecommendationsDoc) validate() error {
	if len(d.Recommendations) == 0 {
		return fmt.Errorf("%w: empty recommendations list", ErrSchemaDrift)
	}
	for i, r := range d.Recommendations {
		if r.Title == "" {
			return fmt.Errorf("%w: recommendation %d missing title", ErrSchemaDrift, i)
		}
		switch r.Priority {
		case "high", "medium", "low":
		default:
			return fmt.Errorf("%w: recommendation %d has priority %q", ErrSchemaDrift, i, r.Priority)
		}
	}
	switch d.Version.ChangeType {
	case "major", "minor", "patch":
	default:
		return fmt.Errorf("%w: change_type %q", ErrSchemaDrift, d.Version.ChangeType)
	}
	if d.Version.Major < 0 || d.Version.Minor < 0 || d.Version.Patch < 0 {
		return fmt.Errorf("%w: negative semver component", ErrSchemaDrift)
	}
	return nil
}

// extractJSONObject returns the substring from the first '{' to the last
// '}', or empty when no braces are present.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// RecommendationsExist reports whether the metadata stage already produced
// its output for this build. The stored document carries the build id it was
// generated for; a file left behind by an earlier build of the same project
// does not count and gets regenerated.
func RecommendationsExist(projectPath, hiddenDir, buildID string) bool {
	data, err := os.ReadFile(filepath.Join(projectPath, hiddenDir, RecommendationsFile))
	if err != nil {
		return false
	}
	var doc RecommendationsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	return doc.BuildID != "" && doc.BuildID == buildID
}

// WriteRecommendations persists the validated document.
func WriteRecommendations(projectPath, hiddenDir string, doc *RecommendationsDoc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	path := filepath.Join(projectPath, hiddenDir, RecommendationsFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	return nil
}

// WriteProjectInfo persists the documentation file from the docs prompt.
func WriteProjectInfo(projectPath, hiddenDir, content string) error {
	path := filepath.Join(projectPath, hiddenDir, ProjectInfoFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write project info: %w", err)
	}
	return nil
}
