package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pepealonso95/zeromail/internal/config"
)

// rootCmd represents the base command for the zeromail application
var rootCmd = &cobra.Command{
	Use:   "zeromail",
	Short: "Scheduling companion for the zeromail email client",
	Long: `zeromail is the scheduling companion for the zeromail email client. It
renders a 7-day half-hour scheduling grid over your Google Calendar, creates
events from grid gestures, and searches your contacts and lead provider.

It can run as:
  - A standalone CLI tool rendering the week grid (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// configPath is the --config flag value shared by all subcommands
var configPath string

// loadConfig loads the configuration file, honoring the --config flag.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "zeromail version %s\n" .Version}}`)

	// If no subcommand is provided, render the week grid by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "week")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.config/zeromail/config.yaml)")
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
