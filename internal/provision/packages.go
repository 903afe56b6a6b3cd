package provision

import (
	"fmt"

	"setup-devenv/internal/logger"
)

// InstallPackages refreshes the apt package index, upgrades installed
// packages, and installs the configured package list. This step is always
// effectful (apt decides what is actually outdated); any non-zero exit from
// apt aborts the whole run.
func (p *Provisioner) InstallPackages() error {
	logger.Info("[INFO] Updating package index...\n")
	if err := p.Runner.Run("sudo", "apt-get", "update"); err != nil {
		return fmt.Errorf("package index update failed: %w", err)
	}

	logger.Info("[INFO] Upgrading installed packages...\n")
	if err := p.Runner.Run("sudo", "apt-get", "upgrade", "-y"); err != nil {
		return fmt.Errorf("package upgrade failed: %w", err)
	}

	logger.Info("[INFO] Installing packages: %v\n", p.Config.Packages)
	args := append([]string{"apt-get", "install", "-y"}, p.Config.Packages...)
	if err := p.Runner.Run("sudo", args...); err != nil {
		return fmt.Errorf("package installation failed: %w", err)
	}

	p.State.MarkStep("packages")
	logger.Info("[INFO] Packages installed.\n")
	return nil
}
