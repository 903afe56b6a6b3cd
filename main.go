package main

import (
	"setup-devenv/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// setup-devenv is an Ubuntu developer environment bootstrapper that:
//   - Refreshes and upgrades system packages via apt, then installs a fixed
//     set of development packages (zsh, git, neovim, fontconfig, ...)
//   - Installs Oh-My-Zsh with its unattended installer, guarded by a
//     directory-existence check so repeated runs skip cleanly
//   - Clones the Powerlevel10k theme into the Oh-My-Zsh custom themes
//     directory and patches the ZSH_THEME line in ~/.zshrc
//   - Downloads a Nerd Font archive and extracts it into the user font
//     directory (~/.local/share/fonts)
//   - Clones the LazyVim starter config into ~/.config/nvim, asking for
//     confirmation before replacing an existing config
//
// Error handling strategy:
//   - Every step is fail-fast: the first failing external command aborts the
//     whole run with exit code 1 and an ERROR message. Artifacts from
//     already-completed steps are left in place; re-running is the recovery
//     path, and the existence guards make re-runs safe.
//   - A JSON state file records installed fonts and completed steps for the
//     `status` command; it never gates execution.
func main() {
	cmd.Execute()
}
