package provision

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"setup-devenv/internal/logger"
)

// InstallEditorConfig clones the LazyVim starter configuration into the
// Neovim config directory and strips its version-control metadata so the
// user can track the config themselves.
//
// This is the only destructive branch in the pipeline: when a config
// directory already exists the user is asked before it is replaced. Any
// answer other than y/Y (including an empty line or EOF) declines, leaving
// the existing config untouched.
func (p *Provisioner) InstallEditorConfig() error {
	dir := p.Paths.EditorConfig

	if DirExists(dir) {
		if !p.confirm(fmt.Sprintf("Neovim config already exists at %s. Replace it with the LazyVim starter? [y/N]: ", dir)) {
			logger.Info("[INFO] Keeping existing Neovim config. Skipping.\n")
			return nil
		}
		logger.Warn("[WARN] Removing existing Neovim config at %s\n", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove existing config %s: %w", dir, err)
		}
	}

	logger.Info("[INFO] Cloning LazyVim starter config...\n")
	if err := p.Runner.Run("git", "clone", p.Config.Editor.Repo, dir); err != nil {
		return fmt.Errorf("editor config clone failed: %w", err)
	}

	// Detach the starter from its upstream history.
	if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
		return fmt.Errorf("failed to remove .git from %s: %w", dir, err)
	}

	p.State.MarkStep("editor")
	logger.Info("[INFO] LazyVim starter installed.\n")
	return nil
}

// confirm prints a prompt and reads one line from the provisioner's input.
// Only a trimmed, case-insensitive "y" confirms.
func (p *Provisioner) confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(p.Input).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
