package main

import (
	"github.com/spf13/cobra"
)

// Global flag values. Each has a matching config key; the flag wins
// when both are set (see resolve in config.go).
var (
	flagConfigFile string
	flagGatewayURL string
	flagStateDir   string
	flagNATSURL    string
)

var rootCmd = &cobra.Command{
	Use:   "folioctl",
	Short: "folioctl talks to the portfolio backend",
	Long: `folioctl is a terminal client for the portfolio backend. It submits
contact forms with attachments, schedules meetings, and relays chat
messages, persisting drafts and saved contact info between runs the
way the web frontend does.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(flagConfigFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ~/.folioctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagGatewayURL, "gateway-url", "", "backend base URL (default: http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "directory for drafts and saved info (default: ~/.folioctl)")
	rootCmd.PersistentFlags().StringVar(&flagNATSURL, "nats-url", "", "NATS server URL for chat listen")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(meetingCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(draftCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("folioctl v0.1.0")
	},
}
