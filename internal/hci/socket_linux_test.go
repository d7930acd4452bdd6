//go:build linux

package hci

import (
	"errors"
	"testing"
	"unsafe"
)

// The kernel writes a struct hci_dev_info into devInfo; a layout drift would
// corrupt the flags field silently.
func TestDevInfo_MatchesKernelLayout(t *testing.T) {
	if size := unsafe.Sizeof(devInfo{}); size != 92 {
		t.Errorf("sizeof(devInfo) = %d, want 92", size)
	}
	if off := unsafe.Offsetof(devInfo{}.Flags); off != 16 {
		t.Errorf("offsetof(Flags) = %d, want 16", off)
	}
	if off := unsafe.Offsetof(devInfo{}.PktType); off != 32 {
		t.Errorf("offsetof(PktType) = %d, want 32", off)
	}
	if off := unsafe.Offsetof(devInfo{}.Stat); off != 52 {
		t.Errorf("offsetof(Stat) = %d, want 52", off)
	}
}

func TestRawOpener_ImplementsOpener(t *testing.T) {
	var _ Opener = NewRawOpener()
}

// Open either yields a closable channel or a tagged failure, depending on
// whether the kernel has bluetooth support. Both are acceptable in CI.
func TestRawOpener_Open(t *testing.T) {
	ch, err := NewRawOpener().Open()
	if err != nil {
		if !errors.Is(err, ErrSocketUnavailable) {
			t.Errorf("Open() = %v, want wrapped ErrSocketUnavailable", err)
		}
		return
	}
	if err := ch.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
