package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string
var logLevel string

// rootCmd represents the base command for the meetingbar application
var rootCmd = &cobra.Command{
	Use:   "meetingbar",
	Short: "Shows the time until your next meeting in a status bar",
	Long: `meetingbar polls Google Calendar for events starting within the next
24 hours across a configured set of calendars and prints a compact,
urgency-colored "time until next meeting" block for a status-bar host.

Calendars are configured by display name in
$XDG_CONFIG_HOME/meetingbar/config.yaml or via MEETINGBAR_CALENDARS.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetingbar version %s\n" .Version}}`)

	// If no subcommand is provided, run the status command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "status")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/meetingbar/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
