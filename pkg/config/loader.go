package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ForgeYAMLConfig represents the complete forge.yaml file structure
type ForgeYAMLConfig struct {
	Queue      *QueueConfig      `yaml:"queue"`
	Agent      *AgentConfig      `yaml:"agent"`
	Workspace  *WorkspaceConfig  `yaml:"workspace"`
	Accounting *AccountingConfig `yaml:"accounting"`
	Limits     *LimitsConfig     `yaml:"limits"`
	System     *SystemConfig     `yaml:"system"`
	Server     *ServerConfig     `yaml:"server"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load forge.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-provided values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"stream_concurrency", cfg.Queue.StreamConcurrency,
		"agent_binary", cfg.Agent.BinaryPath,
		"accounting_enabled", cfg.Accounting.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	forgeConfig, err := loader.loadForgeYAML()
	if err != nil {
		return nil, NewLoadError("forge.yaml", err)
	}

	// Start each section with defaults, then merge user config on top so
	// unset fields keep their defaults.
	queueCfg := DefaultQueueConfig()
	if forgeConfig.Queue != nil {
		if err := mergo.Merge(queueCfg, forgeConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	agentCfg := DefaultAgentConfig()
	if forgeConfig.Agent != nil {
		if err := mergo.Merge(agentCfg, forgeConfig.Agent, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge agent config: %w", err)
		}
	}

	workspaceCfg := DefaultWorkspaceConfig()
	if forgeConfig.Workspace != nil {
		if err := mergo.Merge(workspaceCfg, forgeConfig.Workspace, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge workspace config: %w", err)
		}
	}

	accountingCfg := DefaultAccountingConfig()
	if forgeConfig.Accounting != nil {
		if err := mergo.Merge(accountingCfg, forgeConfig.Accounting, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge accounting config: %w", err)
		}
		// mergo cannot distinguish "false" from "unset" for booleans, so
		// enabled is taken verbatim from YAML when the section is present.
		accountingCfg.Enabled = forgeConfig.Accounting.Enabled
	}

	limitsCfg := DefaultLimitsConfig()
	if forgeConfig.Limits != nil {
		if err := mergo.Merge(limitsCfg, forgeConfig.Limits, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge limits config: %w", err)
		}
	}

	systemCfg := DefaultSystemConfig()
	if forgeConfig.System != nil {
		if err := mergo.Merge(systemCfg, forgeConfig.System, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge system config: %w", err)
		}
	}

	serverCfg := DefaultServerConfig()
	if forgeConfig.Server != nil {
		if err := mergo.Merge(serverCfg, forgeConfig.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	return &Config{
		configDir:  configDir,
		Queue:      queueCfg,
		Agent:      agentCfg,
		Workspace:  workspaceCfg,
		Accounting: accountingCfg,
		Limits:     limitsCfg,
		System:     systemCfg,
		Server:     serverCfg,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadForgeYAML() (*ForgeYAMLConfig, error) {
	var config ForgeYAMLConfig

	if err := l.loadYAML("forge.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
