package provision

import (
	"path/filepath"
	"strings"
	"testing"

	"setup-devenv/internal/config"
	"setup-devenv/internal/state"
)

// fakeRunner records every command instead of executing it. An optional
// onRun hook lets a test fail selected commands or simulate side effects
// such as a git clone creating its target directory.
type fakeRunner struct {
	commands [][]string
	onRun    func(name string, args []string) error
}

func (f *fakeRunner) Run(name string, args ...string) error {
	f.commands = append(f.commands, append([]string{name}, args...))
	if f.onRun != nil {
		return f.onRun(name, args)
	}
	return nil
}

// ran reports whether any recorded command starts with name.
func (f *fakeRunner) ran(name string) bool {
	for _, cmd := range f.commands {
		if cmd[0] == name {
			return true
		}
	}
	return false
}

// newTestProvisioner builds a Provisioner rooted in a temp home directory
// with a fake runner and empty scripted input.
func newTestProvisioner(t *testing.T) (*Provisioner, *fakeRunner) {
	t.Helper()

	home := t.TempDir()
	paths := config.Paths{
		OhMyZsh:      filepath.Join(home, ".oh-my-zsh"),
		ThemesDir:    filepath.Join(home, ".oh-my-zsh", "custom", "themes"),
		Zshrc:        filepath.Join(home, ".zshrc"),
		FontsDir:     filepath.Join(home, ".local", "share", "fonts"),
		EditorConfig: filepath.Join(home, ".config", "nvim"),
		StateFile:    filepath.Join(home, ".setup-devenv.state.json"),
	}

	runner := &fakeRunner{}
	p := &Provisioner{
		Config: config.DefaultConfig(),
		Paths:  paths,
		State:  state.Load(paths.StateFile),
		Runner: runner,
		Input:  strings.NewReader(""),
	}
	return p, runner
}
