//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// darwinPlayer plays sounds with afplay.
type darwinPlayer struct {
	available bool
}

func newDarwinPlayer() Player {
	return &darwinPlayer{available: toolAvailable("afplay")}
}

func newLinuxPlayer() Player   { return &beepOnlyPlayer{} }
func newWindowsPlayer() Player { return &beepOnlyPlayer{} }

// Play runs afplay and blocks until playback completes.
func (p *darwinPlayer) Play(path string) error {
	if !p.available {
		return fmt.Errorf("afplay not available")
	}
	return exec.Command("afplay", path).Run()
}

// Beep rings the terminal bell.
func (p *darwinPlayer) Beep() {
	fmt.Print("\a")
}
