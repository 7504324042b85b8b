package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecommendations = `{
  "recommendations": [
    {"title": "Add a contact form", "description": "Let visitors reach out", "priority": "high"},
    {"title": "Dark mode", "description": "Respect system theme", "priority": "low"}
  ],
  "version": {"major": 1, "minor": 2, "patch": 0, "change_type": "minor"}
}`

func TestParseRecommendations(t *testing.T) {
	doc, err := ParseRecommendations(validRecommendations)
	require.NoError(t, err)

	require.Len(t, doc.Recommendations, 2)
	assert.Equal(t, "Add a contact form", doc.Recommendations[0].Title)
	assert.Equal(t, "minor", doc.Version.ChangeType)
	assert.Equal(t, 1, doc.Version.Major)
}

func TestParseRecommendationsToleratesSurroundingProse(t *testing.T) {
	doc, err := ParseRecommendations("Here are my recommendations:\n" + validRecommendations + "\nHope that helps!")
	require.NoError(t, err)
	assert.Len(t, doc.Recommendations, 2)
}

func TestParseRecommendationsSchemaDrift(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"no json", "I could not generate recommendations."},
		{"malformed", `{"recommendations": [}`},
		{"empty list", `{"recommendations": [], "version": {"change_type": "patch"}}`},
		{"missing title", `{"recommendations": [{"priority": "high"}], "version": {"change_type": "patch"}}`},
		{"bad priority", `{"recommendations": [{"title": "x", "priority": "urgent"}], "version": {"change_type": "patch"}}`},
		{"bad change type", `{"recommendations": [{"title": "x", "priority": "high"}], "version": {"change_type": "huge"}}`},
		{"negative semver", `{"recommendations": [{"title": "x", "priority": "high"}], "version": {"major": -1, "change_type": "patch"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecommendations(tt.output)
			assert.ErrorIs(t, err, ErrSchemaDrift)
		})
	}
}

func TestWriteAndDetectRecommendations(t *testing.T) {
	projectPath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(projectPath, ".forge"), 0o755))

	assert.False(t, RecommendationsExist(projectPath, ".forge", "bld-1"))

	doc, err := ParseRecommendations(validRecommendations)
	require.NoError(t, err)
	doc.BuildID = "bld-1"
	require.NoError(t, WriteRecommendations(projectPath, ".forge", doc))

	// The document only counts for the build that produced it.
	assert.True(t, RecommendationsExist(projectPath, ".forge", "bld-1"))
	assert.False(t, RecommendationsExist(projectPath, ".forge", "bld-2"))
}

func TestDeployIntentDefaultsToStatic(t *testing.T) {
	projectPath := t.TempDir()

	// Missing file.
	intent := ReadDeployIntent(projectPath, ".forge")
	assert.Equal(t, LaneStatic, intent.Lane)

	// Unknown lane.
	require.NoError(t, os.MkdirAll(filepath.Join(projectPath, ".forge"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectPath, ".forge", DeployIntentFile),
		[]byte(`{"framework": "rails", "lane": "mainframe"}`), 0o644))
	intent = ReadDeployIntent(projectPath, ".forge")
	assert.Equal(t, LaneStatic, intent.Lane)
	assert.Equal(t, "rails", intent.Framework)
}

func TestDeployIntentRoundTrip(t *testing.T) {
	projectPath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(projectPath, ".forge"), 0o755))

	want := &DeployIntent{
		Framework: "nextjs",
		Lane:      LaneNode,
		Reasons:   []string{"server components"},
		Evidence:  []string{"app/page.tsx"},
	}
	require.NoError(t, WriteDeployIntent(projectPath, ".forge", want))

	got := ReadDeployIntent(projectPath, ".forge")
	assert.Equal(t, want, got)
}

func TestDecodePayload(t *testing.T) {
	p, err := decodePayload(map[string]interface{}{
		"project_id":       "proj-1",
		"build_id":         "bld-1",
		"user_id":          "user-1",
		"is_initial_build": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "proj-1", p.ProjectID)
	assert.True(t, p.IsInitialBuild)

	_, err = decodePayload(map[string]interface{}{"project_id": "proj-1"})
	assert.Error(t, err)
}
