package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"setup-devenv/internal/config"
	"setup-devenv/internal/logger"
	"setup-devenv/internal/provision"
	"setup-devenv/internal/state"
)

// statusCmd reports which components are present on disk and what the state
// file recorded. Presence is judged by the same directory-existence checks
// that gate the provision steps, so status and provision always agree.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which components are installed and what was recorded",
	Run: func(cmd *cobra.Command, args []string) {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Error("ERROR: cannot resolve home directory: %v\n", err)
			os.Exit(1)
		}
		paths := config.DefaultPaths(home)
		st := state.Load(paths.StateFile)

		report := func(name, path string) {
			if provision.DirExists(path) {
				logger.Info("[INFO] %-18s installed (%s)\n", name, path)
			} else {
				logger.Warn("[WARN] %-18s not installed (%s)\n", name, path)
			}
		}
		report("Oh-My-Zsh", paths.OhMyZsh)
		report("Powerlevel10k", filepath.Join(paths.ThemesDir, "powerlevel10k"))
		report("Neovim config", paths.EditorConfig)

		if len(st.Fonts) == 0 {
			logger.Warn("[WARN] No fonts recorded.\n")
		}
		for name, fs := range st.Fonts {
			logger.Info("[INFO] Font %s: %d files from %s\n", name, len(fs.Files), fs.URL)
		}
		for step, when := range st.Steps {
			logger.Debug("[DEBUG] Step %s completed at %s\n", step, when)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
