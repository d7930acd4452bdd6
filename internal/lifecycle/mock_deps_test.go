package lifecycle

import (
	"context"
	"sync"

	"github.com/hwctl/btpowerd/internal/hci"
	"github.com/hwctl/btpowerd/internal/powerrail"
)

// mockCall records a single method invocation on a test double.
type mockCall struct {
	Method string
	Args   []interface{}
}

// mockRail is a test double for powerrail.Rail. It records all calls and
// supports configurable returns.
type mockRail struct {
	mu sync.Mutex

	calls []mockCall

	setPowerErr error
	getState    powerrail.State
	getErr      error
}

func (m *mockRail) SetPower(on bool) error {
	m.mu.Lock()
	m.calls = append(m.calls, mockCall{Method: "SetPower", Args: []interface{}{on}})
	err := m.setPowerErr
	m.mu.Unlock()
	return err
}

func (m *mockRail) GetPower() (powerrail.State, error) {
	m.mu.Lock()
	m.calls = append(m.calls, mockCall{Method: "GetPower"})
	state, err := m.getState, m.getErr
	m.mu.Unlock()
	return state, err
}

func (m *mockRail) callCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// mockServices is a test double for supervisor.ServiceController. Errors are
// configurable per unit name.
type mockServices struct {
	mu sync.Mutex

	calls []mockCall

	startErr map[string]error
	stopErr  map[string]error
}

func (m *mockServices) Start(_ context.Context, unit string) error {
	m.mu.Lock()
	m.calls = append(m.calls, mockCall{Method: "Start", Args: []interface{}{unit}})
	err := m.startErr[unit]
	m.mu.Unlock()
	return err
}

func (m *mockServices) Stop(_ context.Context, unit string) error {
	m.mu.Lock()
	m.calls = append(m.calls, mockCall{Method: "Stop", Args: []interface{}{unit}})
	err := m.stopErr[unit]
	m.mu.Unlock()
	return err
}

func (m *mockServices) callNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for _, c := range m.calls {
		names = append(names, c.Method+":"+c.Args[0].(string))
	}
	return names
}

// mockChannel is a test double for hci.Channel.
type mockChannel struct {
	opener *mockOpener

	bringUpErr   error
	bringDownErr error
	queryFlags   hci.DeviceFlags
	queryErr     error
}

func (c *mockChannel) BringUp(index int) error {
	c.opener.record("BringUp", index)
	return c.bringUpErr
}

func (c *mockChannel) BringDown(index int) error {
	c.opener.record("BringDown", index)
	return c.bringDownErr
}

func (c *mockChannel) QueryInfo(index int) (hci.DeviceFlags, error) {
	c.opener.record("QueryInfo", index)
	return c.queryFlags, c.queryErr
}

func (c *mockChannel) Close() error {
	c.opener.record("Close")
	return nil
}

// mockOpener is a test double for hci.Opener. Every Open yields a fresh
// mockChannel; bring-up succeeds starting at attempt succeedAt (0 means
// never).
type mockOpener struct {
	mu sync.Mutex

	calls     []mockCall
	opens     int
	openErr   error
	succeedAt int

	bringDownErr error
	queryFlags   hci.DeviceFlags
	queryErr     error
}

func (o *mockOpener) Open() (hci.Channel, error) {
	o.mu.Lock()
	o.opens++
	attempt := o.opens
	o.calls = append(o.calls, mockCall{Method: "Open"})
	err := o.openErr
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	ch := &mockChannel{
		opener:       o,
		bringDownErr: o.bringDownErr,
		queryFlags:   o.queryFlags,
		queryErr:     o.queryErr,
	}
	if o.succeedAt == 0 || attempt < o.succeedAt {
		ch.bringUpErr = errDeviceNotReady
	}
	return ch, nil
}

func (o *mockOpener) record(method string, args ...interface{}) {
	o.mu.Lock()
	o.calls = append(o.calls, mockCall{Method: method, Args: args})
	o.mu.Unlock()
}

func (o *mockOpener) openCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.opens
}

// closeBalance returns opens minus closes; zero means every channel was
// released.
func (o *mockOpener) closeBalance() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := o.opens
	for _, c := range o.calls {
		if c.Method == "Close" {
			n--
		}
	}
	return n
}
