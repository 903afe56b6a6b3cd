package cmd

import (
	"github.com/spf13/cobra"

	"setup-devenv/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the optional path to a YAML config file overriding the
// built-in defaults. Passed via `--config` or `-c`.
var configPath string

// rootCmd is the base command for the CLI tool `setup-devenv`.
var rootCmd = &cobra.Command{
	Use:   "setup-devenv",
	Short: "Ubuntu developer environment bootstrapper",

	// PersistentPreRun runs before any subcommand; it initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes global flags and starts command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (optional)")

	_ = rootCmd.Execute()
}
