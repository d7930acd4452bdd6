// Package supervisor starts and stops OS-supervised services.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ServiceController abstracts service control for testability. Exactly one
// attempt per invocation; retries are a caller concern.
type ServiceController interface {
	// Start starts the named service unit.
	Start(ctx context.Context, unit string) error

	// Stop stops the named service unit.
	Stop(ctx context.Context, unit string) error
}

// ErrServiceControl means the service-control mechanism rejected or could
// not process the request.
var ErrServiceControl = errors.New("supervisor: service control failed")

// New returns the ServiceController selected by cfg.Backend. Config defaults
// are applied and the configuration is validated.
func New(cfg Config, logger *slog.Logger) (ServiceController, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case BackendSystemctl:
		return NewSystemctlController(logger), nil
	case BackendDBus:
		return NewDBusController(logger)
	}
	return nil, fmt.Errorf("supervisor: unknown backend %q", cfg.Backend)
}
