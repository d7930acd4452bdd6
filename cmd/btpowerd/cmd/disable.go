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

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Bring down and power off the radio",
	Long: "Stop the protocol stack daemon, bring the kernel device down, stop the\n" +
		"firmware attach daemon, then switch the power rail off.",
	RunE: runDisable,
}

func init() {
	rootCmd.AddCommand(disableCmd)
}

func runDisable(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return fmt.Errorf("btpowerd disable: %w", err)
	}

	mgr, err := newManager(cfg, logger)
	if err != nil {
		return fmt.Errorf("btpowerd disable: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := mgr.Disable(ctx); err != nil {
		var stage *lifecycle.StageError
		if errors.As(err, &stage) {
			logger.Error("disable failed",
				"stage", stage.Stage,
				"error", stage.Err,
			)
		}
		return fmt.Errorf("btpowerd disable: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "radio disabled")
	return nil
}
