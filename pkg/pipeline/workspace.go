package pipeline

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// maxScannedFiles bounds the pre-existing file scan fed into resume prompts.
const maxScannedFiles = 200

// systemPatterns match files that belong to the worker plane itself. Files
// matching these are NEVER moved during placement audits, only reported.
var systemPatterns = []string{
	"forge-agent",
	".env",
	"docker-compose",
	"Dockerfile",
	".ssh",
	"id_rsa",
}

// projectFilePatterns identify project-class artifacts that should live
// inside the project directory.
var projectFilePatterns = []string{
	"index.html",
	"package.json",
	"deploy-intent.json",
	"recommendations.json",
	"project-info.md",
}

// EnsureWorkspace creates the project directory and its hidden metadata
// directory, and guarantees the ignore file lists the hidden directory.
func EnsureWorkspace(projectPath, hiddenDir, ignoreFile string) error {
	if err := os.MkdirAll(filepath.Join(projectPath, hiddenDir), 0o755); err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return ensureIgnoreEntry(filepath.Join(projectPath, ignoreFile), hiddenDir)
}

// ensureIgnoreEntry appends the hidden dir to the ignore file if missing.
func ensureIgnoreEntry(ignorePath, hiddenDir string) error {
	entry := hiddenDir + "/"

	data, err := os.ReadFile(ignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read ignore file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == entry || trimmed == hiddenDir {
			return nil
		}
	}

	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer func() { _ = f.Close() }()

	prefix := ""
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		prefix = "\n"
	}
	if _, err := f.WriteString(prefix + entry + "\n"); err != nil {
		return fmt.Errorf("failed to append ignore entry: %w", err)
	}
	return nil
}

// ListProjectFiles returns relative paths of files under projectPath,
// excluding the hidden metadata directory, capped at maxScannedFiles.
func ListProjectFiles(projectPath, hiddenDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(projectPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(projectPath, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if rel == hiddenDir || strings.HasPrefix(rel, hiddenDir+string(filepath.Separator)) {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, rel)
		if len(files) >= maxScannedFiles {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan project files: %w", err)
	}
	return files, nil
}

// PlacementViolation describes a project-class file found outside the
// project directory.
type PlacementViolation struct {
	Path   string
	System bool
}

// AuditPlacement scans the parent of projectPath for project-class files the
// agent may have misplaced. Files matching system/worker patterns are never
// touched; everything found is reported and left in place.
func AuditPlacement(projectPath string) []PlacementViolation {
	parent := filepath.Dir(projectPath)
	entries, err := os.ReadDir(parent)
	if err != nil {
		slog.Warn("Placement audit skipped, parent unreadable", "dir", parent, "error", err)
		return nil
	}

	var violations []PlacementViolation
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !matchesAny(name, projectFilePatterns) {
			continue
		}
		violations = append(violations, PlacementViolation{
			Path:   filepath.Join(parent, name),
			System: matchesAny(name, systemPatterns),
		})
	}
	return violations
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
