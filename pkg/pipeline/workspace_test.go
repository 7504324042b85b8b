package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureWorkspaceCreatesLayout(t *testing.T) {
	base := t.TempDir()
	projectPath := filepath.Join(base, "user-1", "proj-1")

	require.NoError(t, EnsureWorkspace(projectPath, ".forge", ".gitignore"))

	info, err := os.Stat(filepath.Join(projectPath, ".forge"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	data, err := os.ReadFile(filepath.Join(projectPath, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".forge/")
}

func TestEnsureWorkspaceIgnoreEntryIdempotent(t *testing.T) {
	projectPath := t.TempDir()

	require.NoError(t, EnsureWorkspace(projectPath, ".forge", ".gitignore"))
	require.NoError(t, EnsureWorkspace(projectPath, ".forge", ".gitignore"))

	data, err := os.ReadFile(filepath.Join(projectPath, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, ".forge/\n", string(data))
}

func TestEnsureWorkspaceAppendsToExistingIgnore(t *testing.T) {
	projectPath := t.TempDir()
	// No trailing newline: the entry must still land on its own line.
	require.NoError(t, os.WriteFile(filepath.Join(projectPath, ".gitignore"), []byte("node_modules"), 0o644))

	require.NoError(t, EnsureWorkspace(projectPath, ".forge", ".gitignore"))

	data, err := os.ReadFile(filepath.Join(projectPath, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "node_modules\n.forge/\n", string(data))
}

func TestListProjectFilesExcludesHiddenDir(t *testing.T) {
	projectPath := t.TempDir()
	require.NoError(t, EnsureWorkspace(projectPath, ".forge", ".gitignore"))
	require.NoError(t, os.WriteFile(filepath.Join(projectPath, "index.html"), []byte("<html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(projectPath, ".forge", "deploy-intent.json"), []byte("{}"), 0o644))

	files, err := ListProjectFiles(projectPath, ".forge")
	require.NoError(t, err)

	assert.Contains(t, files, "index.html")
	assert.Contains(t, files, ".gitignore")
	for _, f := range files {
		assert.NotContains(t, f, ".forge")
	}
}

func TestListProjectFilesMissingDir(t *testing.T) {
	files, err := ListProjectFiles(filepath.Join(t.TempDir(), "nope"), ".forge")
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestListProjectFilesCapped(t *testing.T) {
	projectPath := t.TempDir()
	for i := 0; i < maxScannedFiles+20; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(projectPath, fmt.Sprintf("f%03d.txt", i)), nil, 0o644))
	}

	files, err := ListProjectFiles(projectPath, ".forge")
	require.NoError(t, err)
	assert.Len(t, files, maxScannedFiles)
}

func TestAuditPlacementReportsWithoutMoving(t *testing.T) {
	parent := t.TempDir()
	projectPath := filepath.Join(parent, "proj-1")
	require.NoError(t, os.MkdirAll(projectPath, 0o755))

	misplaced := filepath.Join(parent, "index.html")
	require.NoError(t, os.WriteFile(misplaced, []byte("<html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "notes.txt"), []byte("x"), 0o644))

	violations := AuditPlacement(projectPath)
	require.Len(t, violations, 1)
	assert.Equal(t, misplaced, violations[0].Path)
	assert.False(t, violations[0].System)

	// Never moved, only reported.
	_, err := os.Stat(misplaced)
	assert.NoError(t, err)
}

func TestAuditPlacementFlagsSystemPatterns(t *testing.T) {
	parent := t.TempDir()
	projectPath := filepath.Join(parent, "proj-1")
	require.NoError(t, os.MkdirAll(projectPath, 0o755))

	// A project-class name that also matches a worker pattern.
	require.NoError(t, os.WriteFile(filepath.Join(parent, "forge-agent-recommendations.json"), []byte("{}"), 0o644))

	violations := AuditPlacement(projectPath)
	require.Len(t, violations, 1)
	assert.True(t, violations[0].System)
}
