package provision

import (
	"io"
	"os"

	"setup-devenv/internal/config"
	"setup-devenv/internal/state"
)

// Provisioner drives the bootstrap pipeline. It bundles the configuration,
// the resolved filesystem paths, the state record, the command runner used
// for external tools (apt, git, sh), and the reader the interactive prompt
// reads from. Runner and Input exist as fields so tests can substitute a
// fake runner and scripted input.
type Provisioner struct {
	Config config.Config
	Paths  config.Paths
	State  *state.State
	Runner CommandRunner
	Input  io.Reader
}

// New builds a Provisioner wired for real execution: commands run through
// os/exec and the prompt reads from stdin.
func New(cfg config.Config, paths config.Paths, st *state.State) *Provisioner {
	return &Provisioner{
		Config: cfg,
		Paths:  paths,
		State:  st,
		Runner: execRunner{},
		Input:  os.Stdin,
	}
}

// ProvisionAll runs the full pipeline in order, stopping at the first
// failure. Each step may terminate the whole run; there is no retry and no
// rollback, matching the fail-fast contract.
func (p *Provisioner) ProvisionAll() error {
	steps := []func() error{
		p.InstallPackages,
		p.InstallShellFramework,
		p.InstallTheme,
		p.InstallFonts,
		p.InstallEditorConfig,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	p.PrintSummary()
	return nil
}

// DirExists reports whether path exists and is a directory. This is the
// idempotence check guarding the shell, theme, and editor steps; the status
// command uses it too so both always agree.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
