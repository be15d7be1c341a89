package netgym

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration, loadable from a YAML file. It keeps
// the upstream section split: env_config describes the environment variant
// and session, rl_config describes the agent.
type Config struct {
	EnvConfig EnvConfig `yaml:"env_config"`
	RLConfig  RLConfig  `yaml:"rl_config"`
}

// EnvConfig selects and parameterizes the environment variant.
type EnvConfig struct {
	Env             string `yaml:"env"`
	Address         string `yaml:"address"`
	ClientID        int    `yaml:"client_id"`
	Steps           int    `yaml:"steps"`
	HistoryCapacity int    `yaml:"history_capacity"`
}

// RLConfig selects and seeds the agent.
type RLConfig struct {
	Agent string `yaml:"agent"`
	Seed  int64  `yaml:"seed"`
}

// ValidEnvs is the set of recognized environment variant names.
// Shared by Validate and NewAdapter to avoid duplication.
var ValidEnvs = map[string]bool{"apb": true, "ts": true, "obss": true}

// LoadConfig reads and strictly parses a YAML config file; unknown fields
// are errors so typos do not silently fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Validate checks variant names and parameter ranges.
func (c *Config) Validate() error {
	if !ValidEnvs[c.EnvConfig.Env] {
		return fmt.Errorf("unknown environment %q", c.EnvConfig.Env)
	}
	if c.EnvConfig.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.EnvConfig.Steps)
	}
	if c.EnvConfig.HistoryCapacity < 0 {
		return fmt.Errorf("history_capacity must be non-negative, got %d", c.EnvConfig.HistoryCapacity)
	}
	return nil
}
