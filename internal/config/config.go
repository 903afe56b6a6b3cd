package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure describing everything the bootstrapper
// installs: apt packages, the shell framework and theme, font archives, and
// the editor starter config. All fields have built-in defaults; a YAML file
// only needs to list the keys it wants to override.
type Config struct {
	Packages []string     `yaml:"packages"`
	Shell    ShellConfig  `yaml:"shell"`
	Fonts    []Font       `yaml:"fonts"`
	Editor   EditorConfig `yaml:"editor"`
}

// ShellConfig describes the Oh-My-Zsh installation and the theme to apply.
// - InstallURL: the remote unattended installer script, fetched over HTTPS.
// - ThemeRepo: git remote of the Powerlevel10k theme (shallow-cloned).
// - Theme: value written into the ZSH_THEME line of ~/.zshrc.
type ShellConfig struct {
	InstallURL string `yaml:"install_url"`
	ThemeRepo  string `yaml:"theme_repo"`
	Theme      string `yaml:"theme"`
}

// Font represents a downloadable font archive (.zip, .tar.xz, ...) with a
// logical name and a direct download URL.
type Font struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// EditorConfig describes the editor starter configuration to clone.
type EditorConfig struct {
	Repo string `yaml:"repo"`
}

// DefaultConfig returns the built-in configuration used when no config file
// is given. The package list and URLs match what the bootstrapper has always
// installed; a config file can override any subset of them.
func DefaultConfig() Config {
	return Config{
		Packages: []string{
			"zsh", "git", "curl", "wget", "unzip", "fontconfig",
			"neovim", "ripgrep", "fd-find", "build-essential",
		},
		Shell: ShellConfig{
			InstallURL: "https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh",
			ThemeRepo:  "https://github.com/romkatv/powerlevel10k.git",
			Theme:      "powerlevel10k/powerlevel10k",
		},
		Fonts: []Font{
			{
				Name: "Meslo",
				URL:  "https://github.com/ryanoasis/nerd-fonts/releases/download/v3.1.1/Meslo.zip",
			},
		},
		Editor: EditorConfig{
			Repo: "https://github.com/LazyVim/starter.git",
		},
	}
}

// LoadConfig reads a YAML config file and merges it over the built-in
// defaults. A missing file is not an error: the defaults are returned as-is,
// so the tool runs with zero configuration. A file that exists but cannot be
// parsed is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Unmarshal over the defaults: keys absent from the file keep their
	// default values, present keys replace them.
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
