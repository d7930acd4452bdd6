package cmd

import (
	"log/slog"
	"os"

	"github.com/hwctl/btpowerd/internal/agent"
	"github.com/hwctl/btpowerd/internal/hci"
	"github.com/hwctl/btpowerd/internal/lifecycle"
	"github.com/hwctl/btpowerd/internal/powerrail"
	"github.com/hwctl/btpowerd/internal/supervisor"
)

// loadConfig parses the config file and applies CLI flag overrides.
func loadConfig() (*agent.AgentConfig, *slog.Logger, error) {
	cfg, err := agent.ParseConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, setupLogger(cfg.LogLevel), nil
}

// newManager wires the lifecycle manager from configuration.
func newManager(cfg *agent.AgentConfig, logger *slog.Logger) (*lifecycle.Manager, error) {
	rail, err := powerrail.New(cfg.PowerRail, logger)
	if err != nil {
		return nil, err
	}
	services, err := supervisor.New(cfg.Supervisor, logger)
	if err != nil {
		return nil, err
	}
	return lifecycle.NewManager(rail, services, hci.NewRawOpener(), cfg.Lifecycle, logger), nil
}

func setupLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
