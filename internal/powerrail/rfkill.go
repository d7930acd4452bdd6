package powerrail

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// rfkillType is the declared device type of the slot we bind to.
const rfkillType = "bluetooth"

// RfkillRail drives the power rail through the state file of the first
// bluetooth slot under the rfkill class directory. The slot is discovered
// lazily on first use and the binding is reused for the life of the rail;
// failed discovery is never cached.
type RfkillRail struct {
	cfg    Config
	logger *slog.Logger

	mu        sync.Mutex
	slot      int
	statePath string // empty until discovery succeeds
}

// NewRfkillRail returns an unresolved RfkillRail. No I/O happens until the
// first SetPower or GetPower call.
func NewRfkillRail(cfg Config, logger *slog.Logger) *RfkillRail {
	cfg.ApplyDefaults()
	return &RfkillRail{
		cfg:    cfg,
		logger: logger.With("component", "powerrail"),
		slot:   -1,
	}
}

// SetPower switches the bound slot's state file. The rfkill protocol is one
// ASCII byte: '1' for on, '0' for off.
func (r *RfkillRail) SetPower(on bool) error {
	path, err := r.resolve()
	if err != nil {
		return err
	}
	b := byte('0')
	if on {
		b = '1'
	}
	if err := writeStateByte(path, b); err != nil {
		return err
	}
	r.logger.Debug("power rail set",
		"backend", BackendRfkill,
		"on", on,
	)
	return nil
}

// GetPower reads the bound slot's state file.
func (r *RfkillRail) GetPower() (State, error) {
	path, err := r.resolve()
	if err != nil {
		return StateUnknown, err
	}
	b, err := readStateByte(path)
	if err != nil {
		return StateUnknown, err
	}
	switch b {
	case '1':
		return StateOn, nil
	case '0':
		return StateOff, nil
	}
	return StateUnknown, nil
}

// resolve returns the bound state file path, scanning the rfkill class
// directory on first use. Slots are numbered contiguously by the kernel, so
// the scan stops at the first missing slot; MaxSlots bounds it regardless.
func (r *RfkillRail) resolve() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.statePath != "" {
		return r.statePath, nil
	}

	for id := 0; id < r.cfg.MaxSlots; id++ {
		slotDir := filepath.Join(r.cfg.SysfsDir, fmt.Sprintf("rfkill%d", id))
		data, err := os.ReadFile(filepath.Join(slotDir, "type"))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				break
			}
			return "", fmt.Errorf("powerrail: read slot type: %w", err)
		}
		if strings.TrimSpace(string(data)) != rfkillType {
			continue
		}

		r.slot = id
		r.statePath = filepath.Join(slotDir, "state")
		r.logger.Info("rfkill slot bound",
			"slot", id,
			"state_path", r.statePath,
		)
		return r.statePath, nil
	}

	return "", ErrAdapterNotFound
}
