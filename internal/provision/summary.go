package provision

import (
	"setup-devenv/internal/logger"
)

// PrintSummary lists the follow-up steps that are deliberately left to the
// user: they are either interactive by nature or need a fresh login session.
func (p *Provisioner) PrintSummary() {
	logger.Info("\n[INFO] Setup complete. Remaining manual steps:\n")
	logger.Info("  1. Make zsh your default shell:  chsh -s $(which zsh)\n")
	logger.Info("  2. Start nvim once to let LazyVim install its plugins.\n")
	logger.Info("  3. Run `p10k configure` in a new zsh session to set up the prompt.\n")
	logger.Info("  4. Set your terminal font to the installed Nerd Font (e.g. MesloLGS NF).\n")
}
