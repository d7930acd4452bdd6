// Package powerrail controls the radio's power supply line through sysfs.
package powerrail

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// State is the observed power rail state.
type State int

const (
	// StateUnknown means the backend reported a byte it does not
	// recognize. It is distinct from StateOff and must not be
	// conflated with it.
	StateUnknown State = iota

	// StateOff means the rail is switched off.
	StateOff

	// StateOn means the rail is switched on.
	StateOn
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateOn:
		return "on"
	default:
		return "unknown"
	}
}

// Rail abstracts the power rail for testability. Implementations do not
// retry; retries, if any, are a caller concern.
type Rail interface {
	// SetPower switches the rail on or off.
	SetPower(on bool) error

	// GetPower reads the current rail state. An unrecognized state byte
	// reports StateUnknown without an error.
	GetPower() (State, error)
}

// ErrShortTransfer means fewer bytes were moved than the protocol requires.
var ErrShortTransfer = errors.New("powerrail: short transfer")

// ErrAdapterNotFound means rfkill discovery exhausted the slot scan without
// finding a bluetooth slot.
var ErrAdapterNotFound = errors.New("powerrail: no bluetooth rfkill slot found")

// New returns the Rail selected by cfg.Backend. Config defaults are applied
// and the configuration is validated.
func New(cfg Config, logger *slog.Logger) (Rail, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case BackendFile:
		return NewFileRail(cfg, logger), nil
	case BackendRfkill:
		return NewRfkillRail(cfg, logger), nil
	}
	return nil, fmt.Errorf("powerrail: unknown backend %q", cfg.Backend)
}

// writeStateByte writes exactly one byte to a sysfs attribute file.
func writeStateByte(path string, b byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("powerrail: open for write: %w", err)
	}
	defer f.Close()

	n, err := f.Write([]byte{b})
	if err != nil {
		return fmt.Errorf("powerrail: write %s: %w", path, err)
	}
	if n != 1 {
		return fmt.Errorf("powerrail: write %s: %w", path, ErrShortTransfer)
	}
	return nil
}

// readStateByte reads exactly one byte from a sysfs attribute file.
func readStateByte(path string) (byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("powerrail: open for read: %w", err)
	}
	defer f.Close()

	var buf [1]byte
	n, err := f.Read(buf[:])
	if n != 1 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("powerrail: read %s: %w", path, err)
		}
		return 0, fmt.Errorf("powerrail: read %s: %w", path, ErrShortTransfer)
	}
	return buf[0], nil
}
