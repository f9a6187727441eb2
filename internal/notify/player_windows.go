//go:build windows

package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// windowsPlayer plays sounds through PowerShell's SoundPlayer and beeps
// through the console.
type windowsPlayer struct {
	available bool
}

func newWindowsPlayer() Player {
	return &windowsPlayer{available: toolAvailable("powershell")}
}

func newDarwinPlayer() Player { return &beepOnlyPlayer{} }
func newLinuxPlayer() Player  { return &beepOnlyPlayer{} }

// Play blocks until the clip finishes (PlaySync).
func (p *windowsPlayer) Play(path string) error {
	if !p.available {
		return fmt.Errorf("powershell not available")
	}
	script := fmt.Sprintf(`
$player = New-Object System.Media.SoundPlayer
$player.SoundLocation = '%s'
$player.PlaySync()
`, escapeForPowerShell(path))
	return exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script).Run()
}

// Beep plays the classic 800 Hz / 200 ms console beep, falling back to
// the terminal bell if PowerShell is missing.
func (p *windowsPlayer) Beep() {
	if !p.available {
		fmt.Print("\a")
		return
	}
	_ = exec.Command("powershell", "-NoProfile", "-Command", "[Console]::Beep(800, 200)").Run()
}

// escapeForPowerShell escapes special characters for single-quoted
// PowerShell strings.
func escapeForPowerShell(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\'':
			b.WriteString("''")
		case '`', '$':
			b.WriteByte('`')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
