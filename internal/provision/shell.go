package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"setup-devenv/internal/logger"
)

// themeLineRe matches a ZSH_THEME assignment at the start of a line. Only
// the first match is rewritten; the file is assumed to carry exactly one.
var themeLineRe = regexp.MustCompile(`(?m)^ZSH_THEME=".*"`)

// InstallShellFramework installs Oh-My-Zsh via its unattended remote
// installer. If the install directory already exists the step is skipped:
// Oh-My-Zsh manages its own updates through `omz update`.
//
// The installer script is fetched over HTTPS and piped to sh, so it runs
// with the invoking user's privileges. --unattended suppresses prompts and
// keeps the installer from changing the default login shell.
func (p *Provisioner) InstallShellFramework() error {
	if DirExists(p.Paths.OhMyZsh) {
		logger.Info("[INFO] Oh-My-Zsh already installed at %s. Skipping (run `omz update` to update).\n", p.Paths.OhMyZsh)
		return nil
	}

	logger.Info("[INFO] Installing Oh-My-Zsh...\n")
	script := fmt.Sprintf(`sh -c "$(curl -fsSL %s)" "" --unattended`, p.Config.Shell.InstallURL)
	if err := p.Runner.Run("sh", "-c", script); err != nil {
		return fmt.Errorf("Oh-My-Zsh installation failed: %w", err)
	}

	p.State.MarkStep("shell")
	logger.Info("[INFO] Oh-My-Zsh installed.\n")
	return nil
}

// InstallTheme clones the Powerlevel10k theme into the custom themes
// directory and patches the ZSH_THEME line in ~/.zshrc. If the theme
// directory already exists both the clone and the patch are skipped: the
// patch is applied only on a fresh install.
func (p *Provisioner) InstallTheme() error {
	target := filepath.Join(p.Paths.ThemesDir, "powerlevel10k")
	if DirExists(target) {
		logger.Info("[INFO] Powerlevel10k already installed at %s. Skipping.\n", target)
		return nil
	}

	logger.Info("[INFO] Cloning Powerlevel10k theme...\n")
	if err := p.Runner.Run("git", "clone", "--depth=1", p.Config.Shell.ThemeRepo, target); err != nil {
		return fmt.Errorf("theme clone failed: %w", err)
	}

	if err := p.patchZshrc(); err != nil {
		return err
	}

	p.State.MarkStep("theme")
	logger.Info("[INFO] Powerlevel10k installed and configured.\n")
	return nil
}

// patchZshrc rewrites the first ZSH_THEME line in the shell startup file
// with the configured theme. A file without any ZSH_THEME line is an error
// rather than a silent no-op: a patch that changed nothing would leave the
// theme installed but never activated.
func (p *Provisioner) patchZshrc() error {
	data, err := os.ReadFile(p.Paths.Zshrc)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", p.Paths.Zshrc, err)
	}

	loc := themeLineRe.FindIndex(data)
	if loc == nil {
		return fmt.Errorf("no ZSH_THEME line found in %s", p.Paths.Zshrc)
	}

	replacement := fmt.Sprintf("ZSH_THEME=%q", p.Config.Shell.Theme)
	patched := append([]byte{}, data[:loc[0]]...)
	patched = append(patched, replacement...)
	patched = append(patched, data[loc[1]:]...)

	if err := os.WriteFile(p.Paths.Zshrc, patched, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.Paths.Zshrc, err)
	}

	logger.Debug("[DEBUG] Set ZSH_THEME to %s in %s\n", p.Config.Shell.Theme, p.Paths.Zshrc)
	return nil
}
