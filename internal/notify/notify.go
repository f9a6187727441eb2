package notify

import "github.com/schoolboyqueue/ccnotify/internal/config"

// Event is the name of a Claude Code event that can trigger a
// notification.
type Event string

const (
	// EventStop fires when a session stops.
	EventStop Event = config.EventStop
	// EventToolComplete fires when a tool invocation finishes.
	EventToolComplete Event = config.EventToolComplete
	// EventPermission fires when Claude Code asks for permission.
	EventPermission Event = config.EventPermission
	// EventError fires on an error.
	EventError Event = config.EventError
)

// ValidEvent checks if the given string is a known event name.
func ValidEvent(s string) bool {
	return config.KnownEvent(s)
}

// HighlightMode selects the window highlight effect.
type HighlightMode string

const (
	// ModeFlash flashes the window title bar and taskbar button.
	ModeFlash HighlightMode = "flash"
	// ModeFocus brings the window to the foreground.
	ModeFocus HighlightMode = "focus"
	// ModeTopmost pins the window above others, un-pinning shortly after.
	ModeTopmost HighlightMode = "topmost"
	// ModeAll combines focus and flash.
	ModeAll HighlightMode = "all"
)

// ValidHighlightMode checks if the given string is a valid mode.
func ValidHighlightMode(s string) bool {
	switch HighlightMode(s) {
	case ModeFlash, ModeFocus, ModeTopmost, ModeAll:
		return true
	default:
		return false
	}
}

// Overrides carries the per-invocation CLI flags that take precedence
// over the resolved configuration. ModeSet and FlashCountSet report
// whether the user passed the flag explicitly.
type Overrides struct {
	NoSound       bool
	NoHighlight   bool
	Mode          HighlightMode
	ModeSet       bool
	FlashCount    int
	FlashCountSet bool
	SoundPath     string
	Workdir       string
	ToolName      string
}

// Action is the resolved decision for one event dispatch. A suppressed
// action requests neither sound nor highlight and dispatching it is a
// no-op.
type Action struct {
	Event      Event
	Sound      bool
	Highlight  bool
	Mode       HighlightMode
	FlashCount int

	// SoundPath is the explicit --sound override, empty for the
	// standard per-event resolution chain.
	SoundPath string
	// Workdir biases window-title matching toward the project name.
	Workdir string
}

// Suppressed reports whether the action requests no effect at all.
func (a Action) Suppressed() bool {
	return !a.Sound && !a.Highlight
}
