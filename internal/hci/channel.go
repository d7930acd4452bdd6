// Package hci issues device-level control operations over the kernel's raw
// HCI control socket.
package hci

import "errors"

// hciUpBit is the HCI_UP bit in the device flags.
const hciUpBit = 0

// DeviceFlags is the flags bitmask from a device info query.
type DeviceFlags uint32

// IsUp reports whether the device is attached and operationally usable.
func (f DeviceFlags) IsUp() bool {
	return f&(1<<hciUpBit) != 0
}

// Channel is one short-lived control socket. Callers own the channel for the
// duration of one call sequence and must Close it on every path.
type Channel interface {
	// BringUp attaches the device at the given index. It fails until the
	// transport below the device is ready.
	BringUp(index int) error

	// BringDown detaches the device at the given index.
	BringDown(index int) error

	// QueryInfo returns the device flags for the given index.
	QueryInfo(index int) (DeviceFlags, error)

	// Close releases the underlying socket.
	Close() error
}

// Opener creates control channels. Abstracted for testability.
type Opener interface {
	Open() (Channel, error)
}

// ErrSocketUnavailable means the control socket could not be created. It is
// always fatal to the calling sequence.
var ErrSocketUnavailable = errors.New("hci: control socket unavailable")
