package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAttachService is the default firmware attach unit.
	DefaultAttachService = "hciattach"

	// DefaultMainService is the default protocol stack unit.
	DefaultMainService = "bluetoothd"

	// DefaultBringUpAttempts is the default bound on the bring-up poll.
	DefaultBringUpAttempts = 1000

	// DefaultBringUpRetryDelay is the default spacing between bring-up
	// attempts.
	DefaultBringUpRetryDelay = 10 * time.Millisecond

	// DefaultStopSettleDelay is the default wait after stopping the main
	// service before the device is brought down.
	DefaultStopSettleDelay = 500 * time.Millisecond

	// DefaultStartSettleDelay is the default wait after starting the main
	// service before Enable returns.
	DefaultStartSettleDelay = 5 * time.Second
)

// Duration is a time.Duration that parses from YAML strings like "10ms".
type Duration time.Duration

// UnmarshalYAML accepts either a duration string or a plain integer
// nanosecond count.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("lifecycle: config: parse duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("lifecycle: config: parse duration: %w", err)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config holds the lifecycle sequencing knobs. The delay defaults are
// empirical hardware-timing constants from the reference platform; boards
// with slower firmware download may need larger values.
type Config struct {
	// DeviceIndex selects which HCI device to manage. The process manages
	// exactly one device for its whole lifetime.
	// Default: 0
	DeviceIndex int `yaml:"device_index"`

	// AttachService is the unit performing firmware download and
	// transport setup. The kernel device accepts bring-up only once this
	// unit's work completes.
	// Default: "hciattach"
	AttachService string `yaml:"attach_service"`

	// MainService is the unit running the protocol stack daemon.
	// Default: "bluetoothd"
	MainService string `yaml:"main_service"`

	// BringUpAttempts bounds the bring-up poll.
	// Default: 1000
	BringUpAttempts int `yaml:"bring_up_attempts"`

	// BringUpRetryDelay spaces bring-up attempts.
	// Default: 10ms
	BringUpRetryDelay Duration `yaml:"bring_up_retry_delay"`

	// StopSettleDelay runs after the main service stops, before the
	// device is brought down.
	// Default: 500ms
	StopSettleDelay Duration `yaml:"stop_settle_delay"`

	// StartSettleDelay lets the main service finish its own
	// initialization before Enable returns.
	// Default: 5s
	StartSettleDelay Duration `yaml:"start_settle_delay"`
}

// ApplyDefaults sets default values for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.AttachService == "" {
		c.AttachService = DefaultAttachService
	}
	if c.MainService == "" {
		c.MainService = DefaultMainService
	}
	if c.BringUpAttempts == 0 {
		c.BringUpAttempts = DefaultBringUpAttempts
	}
	if c.BringUpRetryDelay == 0 {
		c.BringUpRetryDelay = Duration(DefaultBringUpRetryDelay)
	}
	if c.StopSettleDelay == 0 {
		c.StopSettleDelay = Duration(DefaultStopSettleDelay)
	}
	if c.StartSettleDelay == 0 {
		c.StartSettleDelay = Duration(DefaultStartSettleDelay)
	}
}

// Validate checks that configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.DeviceIndex < 0 {
		return errors.New("lifecycle: config: DeviceIndex must not be negative")
	}
	if c.AttachService == "" {
		return errors.New("lifecycle: config: AttachService is required")
	}
	if c.MainService == "" {
		return errors.New("lifecycle: config: MainService is required")
	}
	if c.BringUpAttempts <= 0 {
		return errors.New("lifecycle: config: BringUpAttempts must be positive")
	}
	if c.BringUpRetryDelay < 0 || c.StopSettleDelay < 0 || c.StartSettleDelay < 0 {
		return errors.New("lifecycle: config: delays must not be negative")
	}
	return nil
}
