package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	systemdBusName      = "org.freedesktop.systemd1"
	systemdObjectPath   = dbus.ObjectPath("/org/freedesktop/systemd1")
	systemdManagerIface = "org.freedesktop.systemd1.Manager"
)

// DBusController implements ServiceController through the systemd manager
// API on the system bus.
type DBusController struct {
	conn   *dbus.Conn
	logger *slog.Logger
}

// NewDBusController connects to the system bus and returns a
// ServiceController driving the systemd manager object.
func NewDBusController(logger *slog.Logger) (*DBusController, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("supervisor: connect to system bus: %w", err)
	}
	return &DBusController{
		conn:   conn,
		logger: logger.With("component", "supervisor"),
	}, nil
}

func (c *DBusController) Start(ctx context.Context, unit string) error {
	return c.call(ctx, "StartUnit", unit)
}

func (c *DBusController) Stop(ctx context.Context, unit string) error {
	return c.call(ctx, "StopUnit", unit)
}

// Close releases the bus connection.
func (c *DBusController) Close() error {
	return c.conn.Close()
}

func (c *DBusController) call(ctx context.Context, method, unit string) error {
	obj := c.conn.Object(systemdBusName, systemdObjectPath)

	var job dbus.ObjectPath
	err := obj.CallWithContext(ctx, systemdManagerIface+"."+method, 0, unitName(unit), "replace").Store(&job)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrServiceControl, method, unit, err)
	}
	c.logger.Debug("service control",
		"backend", BackendDBus,
		"method", method,
		"unit", unit,
		"job", string(job),
	)
	return nil
}

// unitName appends the .service suffix when the unit has no explicit type.
func unitName(unit string) string {
	if strings.Contains(unit, ".") {
		return unit
	}
	return unit + ".service"
}
