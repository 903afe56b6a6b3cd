package config

import (
	"os"
	"path/filepath"
)

// Paths holds every filesystem location the bootstrapper touches. All of
// them live under the invoking user's home directory; the themes directory
// additionally honors the ZSH_CUSTOM environment variable the same way
// Oh-My-Zsh itself does.
type Paths struct {
	OhMyZsh      string // Oh-My-Zsh install directory, existence-guards step 2
	ThemesDir    string // custom themes directory the theme is cloned into
	Zshrc        string // shell startup file whose ZSH_THEME line is patched
	FontsDir     string // user-local font directory
	EditorConfig string // Neovim config directory, existence-guards step 5
	StateFile    string // JSON state file recording what was installed
}

// DefaultPaths resolves the standard locations for a given home directory.
// When ZSH_CUSTOM is set it replaces ~/.oh-my-zsh/custom as the base of the
// themes directory, mirroring ${ZSH_CUSTOM:-$HOME/.oh-my-zsh/custom}/themes.
func DefaultPaths(home string) Paths {
	customBase := filepath.Join(home, ".oh-my-zsh", "custom")
	if override := os.Getenv("ZSH_CUSTOM"); override != "" {
		customBase = override
	}

	return Paths{
		OhMyZsh:      filepath.Join(home, ".oh-my-zsh"),
		ThemesDir:    filepath.Join(customBase, "themes"),
		Zshrc:        filepath.Join(home, ".zshrc"),
		FontsDir:     filepath.Join(home, ".local", "share", "fonts"),
		EditorConfig: filepath.Join(home, ".config", "nvim"),
		StateFile:    filepath.Join(home, ".setup-devenv.state.json"),
	}
}
