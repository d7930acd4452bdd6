//go:build linux

package hci

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// HCI ioctl requests from the kernel's hci_sock.h.
const (
	hciDevUp      = 0x400448c9 // _IOW('H', 201, int)
	hciDevDown    = 0x400448ca // _IOW('H', 202, int)
	hciGetDevInfo = 0x800448d3 // _IOR('H', 211, int)
)

// devStats mirrors struct hci_dev_stats.
type devStats struct {
	ErrRX  uint32
	ErrTX  uint32
	CmdTX  uint32
	EvtRX  uint32
	ACLTX  uint32
	ACLRX  uint32
	SCOTX  uint32
	SCORX  uint32
	ByteRX uint32
	ByteTX uint32
}

// devInfo mirrors struct hci_dev_info. The kernel fills it on HCIGETDEVINFO;
// the layout must match the C struct byte for byte.
type devInfo struct {
	DevID      uint16
	Name       [8]byte
	BDAddr     [6]byte
	Flags      uint32
	Type       uint8
	Features   [8]uint8
	PktType    uint32
	LinkPolicy uint32
	LinkMode   uint32
	ACLMTU     uint16
	ACLPkts    uint16
	SCOMTU     uint16
	SCOPkts    uint16
	Stat       devStats
}

// RawOpener implements Opener using a raw AF_BLUETOOTH socket per channel.
type RawOpener struct{}

// NewRawOpener returns an Opener backed by the kernel HCI control socket.
func NewRawOpener() *RawOpener {
	return &RawOpener{}
}

// Open creates one raw HCI control socket.
func (RawOpener) Open() (Channel, error) {
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.BTPROTO_HCI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSocketUnavailable, err)
	}
	return &rawChannel{fd: fd}, nil
}

// rawChannel owns one control socket descriptor.
type rawChannel struct {
	fd int
}

func (c *rawChannel) BringUp(index int) error {
	if err := c.ioctlInt(hciDevUp, index); err != nil {
		return fmt.Errorf("hci: bring up hci%d: %w", index, err)
	}
	return nil
}

func (c *rawChannel) BringDown(index int) error {
	if err := c.ioctlInt(hciDevDown, index); err != nil {
		return fmt.Errorf("hci: bring down hci%d: %w", index, err)
	}
	return nil
}

func (c *rawChannel) QueryInfo(index int) (DeviceFlags, error) {
	info := devInfo{DevID: uint16(index)}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(c.fd), hciGetDevInfo, uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return 0, fmt.Errorf("hci: query hci%d info: %w", index, errno)
	}
	return DeviceFlags(info.Flags), nil
}

func (c *rawChannel) Close() error {
	return unix.Close(c.fd)
}

// ioctlInt issues an ioctl whose argument is the device index itself, not a
// pointer.
func (c *rawChannel) ioctlInt(req uintptr, index int) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(c.fd), req, uintptr(index))
	if errno != 0 {
		return errno
	}
	return nil
}
