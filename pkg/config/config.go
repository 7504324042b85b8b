// Package config loads and validates the forge worker-plane configuration.
//
// Configuration comes from forge.yaml in the config directory, with
// {{.ENV_VAR}} template expansion and built-in defaults merged underneath
// user-provided values.
package config

// Config is the umbrella configuration object returned by Initialize()
// and handed to subsystems via dependency injection.
type Config struct {
	configDir string

	Queue      *QueueConfig
	Agent      *AgentConfig
	Workspace  *WorkspaceConfig
	Accounting *AccountingConfig
	Limits     *LimitsConfig
	System     *SystemConfig
	Server     *ServerConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
