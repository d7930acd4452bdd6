package powerrail

import (
	"errors"
	"fmt"
)

// Backend names for Config.Backend.
const (
	// BackendFile drives a single board-specific power control file.
	BackendFile = "file"

	// BackendRfkill discovers the bluetooth slot under the rfkill class
	// directory and drives its state file.
	BackendRfkill = "rfkill"
)

// DefaultSysfsDir is the default rfkill class directory.
const DefaultSysfsDir = "/sys/class/rfkill"

// DefaultMaxSlots is the default upper bound on the rfkill discovery scan.
const DefaultMaxSlots = 128

// Config holds the configuration for the power rail backend.
// Config is passed as a constructor argument — no file I/O in this package
// outside the rail operations themselves.
type Config struct {
	// Backend selects the rail implementation: "file" or "rfkill".
	// Default: "rfkill"
	Backend string `yaml:"backend"`

	// Path is the power control file. Required for the file backend,
	// ignored by the rfkill backend.
	Path string `yaml:"path"`

	// SysfsDir is the rfkill class directory scanned during discovery.
	// Default: /sys/class/rfkill
	SysfsDir string `yaml:"sysfs_dir"`

	// MaxSlots caps the rfkill discovery scan; exhausting it is a
	// discovery failure, not a reason to keep scanning.
	// Default: 128
	MaxSlots int `yaml:"max_slots"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendRfkill
	}
	if c.SysfsDir == "" {
		c.SysfsDir = DefaultSysfsDir
	}
	if c.MaxSlots == 0 {
		c.MaxSlots = DefaultMaxSlots
	}
}

// Validate checks that required fields are set and values are acceptable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.Path == "" {
			return errors.New("powerrail: config: Path is required for the file backend")
		}
	case BackendRfkill:
		if c.MaxSlots <= 0 {
			return errors.New("powerrail: config: MaxSlots must be positive")
		}
	default:
		return fmt.Errorf("powerrail: config: unknown backend %q (must be \"file\" or \"rfkill\")", c.Backend)
	}
	return nil
}
