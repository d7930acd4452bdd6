package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the radio state",
	Long:  "Query the power rail and the kernel device and print enabled, disabled, or unknown.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return fmt.Errorf("btpowerd status: %w", err)
	}

	mgr, err := newManager(cfg, logger)
	if err != nil {
		return fmt.Errorf("btpowerd status: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), mgr.Status())
	return nil
}
