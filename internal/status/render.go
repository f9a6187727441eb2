package status

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	onIcon   = color.New(color.FgGreen).Sprint("[+]")
	offIcon  = "[ ]"
	faint    = color.New(color.Faint).SprintFunc()
	warnText = color.New(color.FgYellow).SprintFunc()
)

func icon(on bool) string {
	if on {
		return onIcon
	}
	return offIcon
}

// Render writes the human-readable status display.
func Render(w io.Writer, v View) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Claude Code Notification Status")
	fmt.Fprintln(w, strings.Repeat("=", 35))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration Files:")
	if v.GlobalPresent {
		fmt.Fprintf(w, "  %s Global:  %s\n", onIcon, v.GlobalPath)
	} else {
		fmt.Fprintf(w, "  %s Global:  %s %s\n", offIcon, v.GlobalPath, faint("(not found, using defaults)"))
	}
	if v.ProjectPresent {
		fmt.Fprintf(w, "  %s Project: %s\n", onIcon, v.ProjectPath)
	} else {
		fmt.Fprintf(w, "  %s Project: %s %s\n", offIcon, v.ProjectPath, faint("(not found)"))
	}
	fmt.Fprintln(w)

	writeSwitch(w, "Notifications", v.Enabled)
	if v.Enabled.Value {
		writeSwitch(w, "Sound", v.SoundEnabled)
		writeSwitch(w, "Window Highlight", v.HighlightEnabled)

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Event Settings:")
		for _, ev := range v.Events {
			var details []string
			if ev.Sound.Value {
				details = append(details, "sound")
			}
			if ev.Highlight.Value {
				details = append(details, "highlight")
			}
			detail := "none"
			if len(details) > 0 {
				detail = strings.Join(details, ", ")
			}
			fmt.Fprintf(w, "  %s %s: %s %s\n", icon(ev.Enabled.Value), ev.Name, detail,
				faint(fmt.Sprintf("(mode=%s, flash=%d)", ev.HighlightMode, ev.FlashCount)))
		}
	}

	if v.ProjectOverrides {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Note: project config is overriding global settings.")
		fmt.Fprintln(w, "      Delete the project config file to remove the overrides.")
	}

	for _, warning := range v.Warnings {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", warnText("Warning:"), warning)
	}
	fmt.Fprintln(w)
}

func writeSwitch(w io.Writer, label string, s BoolSetting) {
	state := "Enabled"
	if !s.Value {
		state = "Disabled"
	}
	fmt.Fprintf(w, "  %s %s: %s %s\n", icon(s.Value), label, state, faint("(from: "+string(s.Source)+")"))
}
