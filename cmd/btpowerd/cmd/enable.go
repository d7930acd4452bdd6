package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hwctl/btpowerd/internal/lifecycle"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Power on and bring up the radio",
	Long: "Switch the power rail on, start the firmware attach daemon, wait for the\n" +
		"kernel device to come up, then start the protocol stack daemon.",
	RunE: runEnable,
}

func init() {
	rootCmd.AddCommand(enableCmd)
}

func runEnable(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return fmt.Errorf("btpowerd enable: %w", err)
	}

	mgr, err := newManager(cfg, logger)
	if err != nil {
		return fmt.Errorf("btpowerd enable: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := mgr.Enable(ctx); err != nil {
		var stage *lifecycle.StageError
		if errors.As(err, &stage) {
			logger.Error("enable failed",
				"stage", stage.Stage,
				"error", stage.Err,
			)
		}
		return fmt.Errorf("btpowerd enable: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "radio enabled")
	return nil
}
