package provision

import (
	"fmt"
	"os/exec"
	"strings"

	"setup-devenv/internal/logger"
)

// CommandRunner executes an external command and returns an error when it
// exits non-zero. The default implementation shells out with os/exec; tests
// substitute a fake that records the invocations instead of running them.
type CommandRunner interface {
	Run(name string, args ...string) error
}

// execRunner is the production CommandRunner backed by os/exec.
type execRunner struct{}

// Run executes the command, capturing combined stdout/stderr. On failure the
// captured output is folded into the returned error so the user sees what
// apt or git actually printed.
func (execRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, output)
	}
	logger.Debug("[DEBUG] Command output:\n%s\n", output)
	return nil
}
