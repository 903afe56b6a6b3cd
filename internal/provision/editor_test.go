package provision

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cloneStarter is a fakeRunner hook that mimics what git clone produces:
// the target directory with the starter files and a .git metadata dir.
func cloneStarter(t *testing.T) func(name string, args []string) error {
	t.Helper()
	return func(name string, args []string) error {
		if name != "git" {
			return nil
		}
		target := args[len(args)-1]
		if err := os.MkdirAll(filepath.Join(target, ".git"), 0755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(target, "init.lua"), []byte("-- LazyVim\n"), 0644)
	}
}

func TestInstallEditorConfig_FreshInstallClonesAndStripsGit(t *testing.T) {
	p, runner := newTestProvisioner(t)
	runner.onRun = cloneStarter(t)

	err := p.InstallEditorConfig()
	require.NoError(t, err)

	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{"git", "clone", p.Config.Editor.Repo, p.Paths.EditorConfig}, runner.commands[0])

	assert.FileExists(t, filepath.Join(p.Paths.EditorConfig, "init.lua"))
	assert.NoDirExists(t, filepath.Join(p.Paths.EditorConfig, ".git"))
	assert.Contains(t, p.State.Steps, "editor")
}

func TestInstallEditorConfig_DeclinedPromptLeavesConfigUntouched(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "no\n", "yes\n"} {
		p, runner := newTestProvisioner(t)
		p.Input = strings.NewReader(answer)

		require.NoError(t, os.MkdirAll(p.Paths.EditorConfig, 0755))
		existing := filepath.Join(p.Paths.EditorConfig, "init.vim")
		require.NoError(t, os.WriteFile(existing, []byte("my config\n"), 0644))

		err := p.InstallEditorConfig()
		require.NoError(t, err, "answer %q", answer)

		// No clone, no deletion: contents identical.
		assert.Empty(t, runner.commands, "answer %q", answer)
		data, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "my config\n", string(data))
	}
}

func TestInstallEditorConfig_EOFDeclines(t *testing.T) {
	p, runner := newTestProvisioner(t)
	p.Input = strings.NewReader("") // immediate EOF, no newline

	require.NoError(t, os.MkdirAll(p.Paths.EditorConfig, 0755))

	err := p.InstallEditorConfig()
	require.NoError(t, err)
	assert.Empty(t, runner.commands)
}

func TestInstallEditorConfig_ConfirmedPromptReplacesConfig(t *testing.T) {
	for _, answer := range []string{"y\n", "Y\n", " y \n"} {
		p, runner := newTestProvisioner(t)
		p.Input = strings.NewReader(answer)
		runner.onRun = cloneStarter(t)

		require.NoError(t, os.MkdirAll(p.Paths.EditorConfig, 0755))
		old := filepath.Join(p.Paths.EditorConfig, "init.vim")
		require.NoError(t, os.WriteFile(old, []byte("my config\n"), 0644))

		err := p.InstallEditorConfig()
		require.NoError(t, err, "answer %q", answer)

		// Entirely replaced by the starter, version-control metadata stripped.
		assert.NoFileExists(t, old, "answer %q", answer)
		assert.FileExists(t, filepath.Join(p.Paths.EditorConfig, "init.lua"))
		assert.NoDirExists(t, filepath.Join(p.Paths.EditorConfig, ".git"))
	}
}

func TestInstallEditorConfig_CloneFailureIsFatal(t *testing.T) {
	p, runner := newTestProvisioner(t)
	runner.onRun = func(name string, args []string) error {
		return os.ErrPermission
	}

	err := p.InstallEditorConfig()
	require.Error(t, err)
	assert.NotContains(t, p.State.Steps, "editor")
}
