package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeForgeYAML(t *testing.T, content string) string {
	t.Helper()
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "forge.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return configDir
}

func TestInitialize(t *testing.T) {
	configDir := writeForgeYAML(t, `
queue:
  stream_concurrency: 5
agent:
  binary_path: /usr/local/bin/forge-agent
workspace:
  base_dir: /srv/projects
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User-provided values override defaults
	assert.Equal(t, 5, cfg.Queue.StreamConcurrency)
	assert.Equal(t, "/usr/local/bin/forge-agent", cfg.Agent.BinaryPath)
	assert.Equal(t, "/srv/projects", cfg.Workspace.BaseDir)

	// Unset values keep defaults
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 15*time.Second, cfg.Queue.HeartbeatInterval)
	assert.Equal(t, ".forge", cfg.Workspace.HiddenDir)
	assert.True(t, cfg.Accounting.Enabled)
	assert.Equal(t, configDir, cfg.ConfigDir())
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeForgeYAML(t, `{{{`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := writeForgeYAML(t, `
queue:
  max_attempts: -1
`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("AGENT_BIN", "/opt/forge/agent")

	configDir := writeForgeYAML(t, `
agent:
  binary_path: "{{.AGENT_BIN}}"
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "/opt/forge/agent", cfg.Agent.BinaryPath)
}

func TestInitializeAccountingDisabled(t *testing.T) {
	configDir := writeForgeYAML(t, `
accounting:
  enabled: false
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.False(t, cfg.Accounting.Enabled)
}
