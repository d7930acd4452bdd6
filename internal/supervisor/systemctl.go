package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// SystemctlController implements ServiceController by calling the systemctl
// binary.
type SystemctlController struct {
	logger *slog.Logger
}

// NewSystemctlController returns a ServiceController that calls the real
// systemctl binary.
func NewSystemctlController(logger *slog.Logger) *SystemctlController {
	return &SystemctlController{logger: logger.With("component", "supervisor")}
}

func (c *SystemctlController) Start(ctx context.Context, unit string) error {
	return c.run(ctx, "start", unit)
}

func (c *SystemctlController) Stop(ctx context.Context, unit string) error {
	return c.run(ctx, "stop", unit)
}

func (c *SystemctlController) run(ctx context.Context, verb, unit string) error {
	cmd := exec.CommandContext(ctx, "systemctl", verb, unit)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: systemctl %s %s: %s: %v", ErrServiceControl, verb, unit, strings.TrimSpace(string(output)), err)
	}
	c.logger.Debug("service control",
		"backend", BackendSystemctl,
		"verb", verb,
		"unit", unit,
	)
	return nil
}
