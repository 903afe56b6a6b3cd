package provision

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallPackages_RunsAptSequence(t *testing.T) {
	p, runner := newTestProvisioner(t)

	err := p.InstallPackages()
	require.NoError(t, err)

	require.Len(t, runner.commands, 3)
	assert.Equal(t, []string{"sudo", "apt-get", "update"}, runner.commands[0])
	assert.Equal(t, []string{"sudo", "apt-get", "upgrade", "-y"}, runner.commands[1])

	install := runner.commands[2]
	assert.Equal(t, []string{"sudo", "apt-get", "install", "-y"}, install[:4])
	assert.Equal(t, p.Config.Packages, install[4:])

	assert.Contains(t, p.State.Steps, "packages")
}

func TestInstallPackages_FailsFastOnUpdateError(t *testing.T) {
	p, runner := newTestProvisioner(t)
	runner.onRun = func(name string, args []string) error {
		return errors.New("exit status 100")
	}

	err := p.InstallPackages()
	require.Error(t, err)

	// Only the update ran; upgrade and install were never attempted.
	assert.Len(t, runner.commands, 1)
	assert.NotContains(t, p.State.Steps, "packages")
}

func TestProvisionAll_AbortsBeforeLaterStepsOnPackageFailure(t *testing.T) {
	p, runner := newTestProvisioner(t)
	runner.onRun = func(name string, args []string) error {
		if name == "sudo" {
			return errors.New("exit status 100")
		}
		return nil
	}

	err := p.ProvisionAll()
	require.Error(t, err)

	// No shell installer, no clones, no font download side effects.
	assert.False(t, runner.ran("sh"))
	assert.False(t, runner.ran("git"))
	assert.Empty(t, p.State.Fonts)
}
