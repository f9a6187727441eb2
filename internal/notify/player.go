package notify

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Player plays one sound resource to completion. Play is blocking;
// Beep is the final fallback and is assumed never to fail.
type Player interface {
	Play(path string) error
	Beep()
}

// NewPlayer creates a platform-specific sound player based on the
// current OS. Platforms without a known audio tool get a beep-only
// player.
func NewPlayer() Player {
	switch runtime.GOOS {
	case "darwin":
		return newDarwinPlayer()
	case "linux":
		return newLinuxPlayer()
	case "windows":
		return newWindowsPlayer()
	default:
		return &beepOnlyPlayer{}
	}
}

// toolAvailable checks if a command-line tool is available in PATH.
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// beepOnlyPlayer has no audio backend and always falls through to the
// terminal bell.
type beepOnlyPlayer struct{}

func (p *beepOnlyPlayer) Play(path string) error {
	return fmt.Errorf("no audio backend for %s", runtime.GOOS)
}

func (p *beepOnlyPlayer) Beep() {
	fmt.Print("\a")
}
