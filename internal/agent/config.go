// Package agent aggregates the btpowerd configuration.
package agent

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hwctl/btpowerd/internal/lifecycle"
	"github.com/hwctl/btpowerd/internal/powerrail"
	"github.com/hwctl/btpowerd/internal/supervisor"
)

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "info"

// DefaultConfigPath is the default config file path.
const DefaultConfigPath = "/etc/btpowerd/config.yaml"

// AgentConfig is the top-level configuration for btpowerd. It aggregates all
// subsystem configurations and is populated from a YAML configuration file
// via ParseConfig.
type AgentConfig struct {
	// LogLevel is the log level: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	PowerRail  powerrail.Config  `yaml:"power_rail"`
	Supervisor supervisor.Config `yaml:"supervisor"`
	Lifecycle  lifecycle.Config  `yaml:"lifecycle"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *AgentConfig) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.PowerRail.ApplyDefaults()
	c.Supervisor.ApplyDefaults()
	c.Lifecycle.ApplyDefaults()
}

// Validate checks that required fields are set and values are acceptable.
func (c *AgentConfig) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("agent: config: invalid log level %q", c.LogLevel)
	}
	if err := c.PowerRail.Validate(); err != nil {
		return err
	}
	if err := c.Supervisor.Validate(); err != nil {
		return err
	}
	if err := c.Lifecycle.Validate(); err != nil {
		return err
	}
	return nil
}

// ParseConfig reads the YAML configuration file, applies defaults, and
// validates. An unconfigured host is allowed to run on pure defaults: a
// missing file at the default path is not an error, a missing file at an
// explicitly chosen path is.
func ParseConfig(path string) (*AgentConfig, error) {
	var cfg AgentConfig

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("agent: parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultConfigPath:
	default:
		return nil, fmt.Errorf("agent: read config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
