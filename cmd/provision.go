package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"setup-devenv/internal/config"
	"setup-devenv/internal/logger"
	"setup-devenv/internal/provision"
	"setup-devenv/internal/state"
)

// provisionCmd runs the full bootstrap pipeline: packages, shell framework,
// theme, fonts, and editor config, in that order. The first failing step
// aborts the process with exit code 1; nothing after it runs.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Run the full setup: packages, Oh-My-Zsh, theme, fonts, editor config",
	Run: func(cmd *cobra.Command, args []string) {
		p := newProvisioner()
		runSteps(p, p.ProvisionAll)
	},
}

// provisionPackagesCmd runs only the apt package step.
var provisionPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Update, upgrade, and install apt packages only",
	Run: func(cmd *cobra.Command, args []string) {
		p := newProvisioner()
		runSteps(p, p.InstallPackages)
	},
}

// provisionShellCmd runs the Oh-My-Zsh and theme steps.
var provisionShellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Install Oh-My-Zsh and the Powerlevel10k theme only",
	Run: func(cmd *cobra.Command, args []string) {
		p := newProvisioner()
		runSteps(p, p.InstallShellFramework, p.InstallTheme)
	},
}

// provisionFontsCmd runs only the font step.
var provisionFontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Download and install the configured Nerd Fonts only",
	Run: func(cmd *cobra.Command, args []string) {
		p := newProvisioner()
		runSteps(p, p.InstallFonts)
	},
}

// provisionEditorCmd runs only the editor config step.
var provisionEditorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Install the LazyVim starter config only",
	Run: func(cmd *cobra.Command, args []string) {
		p := newProvisioner()
		runSteps(p, p.InstallEditorConfig)
	},
}

// newProvisioner loads config and state and builds a Provisioner wired for
// real execution. Config and home-resolution failures are fatal: nothing
// can run without them.
func newProvisioner() *provision.Provisioner {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Error("ERROR: cannot resolve home directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error("ERROR: %v\n", err)
		os.Exit(1)
	}

	paths := config.DefaultPaths(home)
	st := state.Load(paths.StateFile)
	return provision.New(cfg, paths, st)
}

// runSteps executes the given steps in order, fail-fast. State is saved in
// either case so fonts and steps recorded by completed work survive a later
// failure.
func runSteps(p *provision.Provisioner, steps ...func() error) {
	for _, step := range steps {
		if err := step(); err != nil {
			state.Save(p.Paths.StateFile, p.State)
			logger.Error("ERROR: %v\n", err)
			os.Exit(1)
		}
	}
	state.Save(p.Paths.StateFile, p.State)
}

// init adds the provision command tree to the root command.
func init() {
	provisionCmd.AddCommand(provisionPackagesCmd)
	provisionCmd.AddCommand(provisionShellCmd)
	provisionCmd.AddCommand(provisionFontsCmd)
	provisionCmd.AddCommand(provisionEditorCmd)
	rootCmd.AddCommand(provisionCmd)
}
