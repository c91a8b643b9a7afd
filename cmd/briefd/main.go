// Package main implements the briefd CLI: a daily briefing daemon and
// one-shot briefing renderer over Todoist, Google Calendar, GitHub, a local
// habit tracker, and Open-Meteo.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
)

// configPath is the --config flag value; empty means the default path.
var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "briefd",
	Short: "Personal daily briefing daemon",
	Long: `briefd synthesizes a daily briefing from your task list, calendar,
code activity, habits, and the weather: ranked priorities, suggested time
blocks, schedule conflicts, and contextual advice.

Run "briefd brief" for a one-shot briefing in the terminal, or
"briefd serve" to expose the briefing over HTTP.`,
	Version: fmt.Sprintf("%s (%s)", version, gitCommit),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Missing .env is fine; tokens can come from the config file.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/briefd/config.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(habitCmd)
}
