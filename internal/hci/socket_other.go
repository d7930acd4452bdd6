//go:build !linux

package hci

import "fmt"

// RawOpener is only functional on Linux; elsewhere every Open fails.
type RawOpener struct{}

// NewRawOpener returns an Opener whose Open always fails on this platform.
func NewRawOpener() *RawOpener {
	return &RawOpener{}
}

func (RawOpener) Open() (Channel, error) {
	return nil, fmt.Errorf("%w: not supported on this platform", ErrSocketUnavailable)
}
