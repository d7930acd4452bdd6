// Package lifecycle sequences the radio power lifecycle: the power rail, the
// supervised attach and stack daemons, and the kernel device object.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/hwctl/btpowerd/internal/hci"
	"github.com/hwctl/btpowerd/internal/powerrail"
	"github.com/hwctl/btpowerd/internal/supervisor"
)

// Status is the tri-state result of a lifecycle query.
type Status int

const (
	// StatusUnknown means the hardware state could not be determined.
	StatusUnknown Status = iota

	// StatusDisabled means the radio is not operationally up.
	StatusDisabled

	// StatusEnabled means the radio is powered and the device is up.
	StatusEnabled
)

func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// Manager drives the power rail, the supervised daemons, and the kernel
// device through the enable and disable sequences. Operations are not
// reentrant: callers must not overlap invocations against the same device.
type Manager struct {
	rail     powerrail.Rail
	services supervisor.ServiceController
	channels hci.Opener
	cfg      Config
	logger   *slog.Logger

	// sleep is injectable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewManager creates a new Manager. Config defaults are applied
// automatically.
func NewManager(rail powerrail.Rail, services supervisor.ServiceController, channels hci.Opener, cfg Config, logger *slog.Logger) *Manager {
	cfg.ApplyDefaults()
	return &Manager{
		rail:     rail,
		services: services,
		channels: channels,
		cfg:      cfg,
		logger:   logger.With("component", "lifecycle"),
		sleep:    sleepCtx,
	}
}

// Enable powers the radio, starts the attach daemon, waits for the kernel
// device to accept bring-up, then starts the main daemon. The first failing
// stage aborts the sequence and completed stages are not rolled back;
// callers unwind with Disable.
func (m *Manager) Enable(ctx context.Context) error {
	if err := m.rail.SetPower(true); err != nil {
		return stageErr(StagePowerOn, err)
	}
	m.logger.Info("power rail on")

	if err := m.services.Start(ctx, m.cfg.AttachService); err != nil {
		return stageErr(StageAttachStart, err)
	}
	m.logger.Info("attach service started", "unit", m.cfg.AttachService)

	if err := m.waitBringUp(ctx); err != nil {
		return err
	}

	if err := m.services.Start(ctx, m.cfg.MainService); err != nil {
		return stageErr(StageMainStart, err)
	}
	m.logger.Info("main service started", "unit", m.cfg.MainService)

	if err := m.sleep(ctx, time.Duration(m.cfg.StartSettleDelay)); err != nil {
		return stageErr(StageMainStart, err)
	}
	return nil
}

// waitBringUp polls the device until it accepts bring-up. Firmware attach is
// asynchronous and the kernel offers no completion signal, so bounded
// polling is the only option. Each attempt uses a fresh channel; failure to
// open one is fatal.
func (m *Manager) waitBringUp(ctx context.Context) error {
	for attempt := 1; attempt <= m.cfg.BringUpAttempts; attempt++ {
		ch, err := m.channels.Open()
		if err != nil {
			return stageErr(StageBringUp, err)
		}
		err = ch.BringUp(m.cfg.DeviceIndex)
		ch.Close()
		if err == nil {
			m.logger.Info("device up",
				"device", m.cfg.DeviceIndex,
				"attempts", attempt,
			)
			return nil
		}

		if err := m.sleep(ctx, time.Duration(m.cfg.BringUpRetryDelay)); err != nil {
			return stageErr(StageBringUp, err)
		}
	}
	return stageErr(StageBringUp, ErrBringUpTimeout)
}

// Disable stops the main daemon, detaches the kernel device, stops the
// attach daemon, and powers the radio off. Bring-down is best effort:
// teardown must not get stuck on a device that refuses to detach.
func (m *Manager) Disable(ctx context.Context) error {
	if err := m.services.Stop(ctx, m.cfg.MainService); err != nil {
		return stageErr(StageMainStop, err)
	}
	m.logger.Info("main service stopped", "unit", m.cfg.MainService)

	if err := m.sleep(ctx, time.Duration(m.cfg.StopSettleDelay)); err != nil {
		return stageErr(StageMainStop, err)
	}

	ch, err := m.channels.Open()
	if err != nil {
		return stageErr(StageBringDown, err)
	}
	if err := ch.BringDown(m.cfg.DeviceIndex); err != nil {
		m.logger.Warn("device bring-down failed",
			"device", m.cfg.DeviceIndex,
			"error", err,
		)
	}
	ch.Close()

	if err := m.services.Stop(ctx, m.cfg.AttachService); err != nil {
		return stageErr(StageAttachStop, err)
	}
	m.logger.Info("attach service stopped", "unit", m.cfg.AttachService)

	if err := m.rail.SetPower(false); err != nil {
		return stageErr(StagePowerOff, err)
	}
	m.logger.Info("power rail off")
	return nil
}

// Status recomputes the radio state from hardware on every call; nothing is
// cached between calls. A device that is powered but has not attached yet is
// disabled, not an error.
func (m *Manager) Status() Status {
	power, err := m.rail.GetPower()
	if err != nil {
		m.logger.Warn("power state read failed", "error", err)
		return StatusUnknown
	}
	if power != powerrail.StateOn {
		return StatusDisabled
	}

	ch, err := m.channels.Open()
	if err != nil {
		m.logger.Warn("control channel unavailable", "error", err)
		return StatusUnknown
	}
	defer ch.Close()

	flags, err := ch.QueryInfo(m.cfg.DeviceIndex)
	if err != nil {
		return StatusDisabled
	}
	if flags.IsUp() {
		return StatusEnabled
	}
	return StatusDisabled
}

// sleepCtx sleeps for d or until ctx is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
