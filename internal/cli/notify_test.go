package cli

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runCLI executes the root command with args, discarding output, and
// returns the resulting error.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestNotify_InvalidArguments(t *testing.T) {
	tests := map[string][]string{
		"missing event":        {"notify"},
		"unknown event":        {"notify", "--event", "reboot"},
		"unknown mode":         {"notify", "--event", "stop", "--mode", "wobble"},
		"negative flash count": {"notify", "--event", "stop", "--flash-count", "-1"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			err := runCLI(t, args...)
			assert.Error(t, err)
			assert.NotEqual(t, ExitSuccess, ExitCode(err))
		})
	}
}

func TestNotify_InvalidArgumentExitCode(t *testing.T) {
	err := runCLI(t, "notify", "--event", "reboot")

	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestNotify_SuppressedExitsZero(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Chdir(t.TempDir())
	// Master disable through the env overlay keeps the test hermetic:
	// resolution suppresses before any window or audio work happens.
	t.Setenv("CCNOTIFY_ENABLED", "false")

	err := runCLI(t, "notify", "--event", "stop")

	assert.NoError(t, err)
	assert.Equal(t, ExitSuccess, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInvalidArguments, ExitCode(NewExitError(ExitInvalidArguments, assert.AnError)))
	assert.Equal(t, ExitSaveFailed, ExitCode(assert.AnError), "unclassified errors map to save-failed")
}
