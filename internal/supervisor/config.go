package supervisor

import "fmt"

// Backend names for Config.Backend.
const (
	// BackendSystemctl shells out to the systemctl binary.
	BackendSystemctl = "systemctl"

	// BackendDBus talks to the systemd manager API on the system bus.
	BackendDBus = "dbus"
)

// Config holds the configuration for the service supervisor client.
type Config struct {
	// Backend selects the control mechanism: "systemctl" or "dbus".
	// Default: "systemctl"
	Backend string `yaml:"backend"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendSystemctl
	}
}

// Validate checks that configuration values are acceptable.
func (c *Config) Validate() error {
	if c.Backend != BackendSystemctl && c.Backend != BackendDBus {
		return fmt.Errorf("supervisor: config: unknown backend %q (must be \"systemctl\" or \"dbus\")", c.Backend)
	}
	return nil
}
