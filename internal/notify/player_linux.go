//go:build linux

package notify

import (
	"fmt"
	"os/exec"
)

// linuxPlayer plays sounds with paplay, falling back to aplay on
// systems without PulseAudio.
type linuxPlayer struct {
	tool string
}

func newLinuxPlayer() Player {
	for _, tool := range []string{"paplay", "aplay"} {
		if toolAvailable(tool) {
			return &linuxPlayer{tool: tool}
		}
	}
	return &beepOnlyPlayer{}
}

func newDarwinPlayer() Player  { return &beepOnlyPlayer{} }
func newWindowsPlayer() Player { return &beepOnlyPlayer{} }

// Play runs the audio tool and blocks until playback completes.
func (p *linuxPlayer) Play(path string) error {
	if err := exec.Command(p.tool, path).Run(); err != nil {
		return fmt.Errorf("%s: %w", p.tool, err)
	}
	return nil
}

// Beep rings the terminal bell.
func (p *linuxPlayer) Beep() {
	fmt.Print("\a")
}
