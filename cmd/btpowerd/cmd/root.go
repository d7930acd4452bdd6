// Package cmd implements the btpowerd CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hwctl/btpowerd/internal/agent"
)

var (
	cfgFile  string
	logLevel string
)

// Build info set from main.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets the version info from build-time ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("btpowerd version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

var rootCmd = &cobra.Command{
	Use:   "btpowerd",
	Short: "btpowerd manages the Bluetooth radio power lifecycle",
	Long: "btpowerd powers the Bluetooth radio on and off through the kernel control\n" +
		"interface, coordinating the power rail, the firmware attach daemon, and the\n" +
		"protocol stack daemon in the order the hardware requires.",
	// No Run function — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", agent.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error; overrides config)")

	rootCmd.Version = buildVersion
	rootCmd.SetVersionTemplate(fmt.Sprintf("btpowerd version {{.Version}}\ncommit: %s\nbuilt: %s\n", buildCommit, buildDate))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
