package notify

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/schoolboyqueue/ccnotify/internal/logging"
)

// WindowHandle identifies a native window. Zero is never a valid
// handle.
type WindowHandle uintptr

// WindowLocator finds the terminal window hosting the Claude Code
// session. Implementations live in internal/window; the dispatch logic
// depends only on this interface so it can be tested without a window
// system.
type WindowLocator interface {
	// Locate returns a candidate window, biased toward titles
	// containing components of workdir when it is non-empty. ok is
	// false when no suitable window exists, which is not an error.
	Locate(workdir string) (handle WindowHandle, ok bool)
}

// WindowHighlighter applies a highlight effect to a window. The call
// must issue an asynchronous OS request and return without waiting for
// any animation to finish.
type WindowHighlighter interface {
	Highlight(handle WindowHandle, mode HighlightMode, flashCount int) error
}

// Outcome reports what a dispatch actually did.
type Outcome struct {
	SoundPlayed      bool
	HighlightApplied bool
}

// Dispatcher executes resolved actions against the window and sound
// capabilities.
type Dispatcher struct {
	locator     WindowLocator
	highlighter WindowHighlighter
	player      Player
	sounds      *SoundSource
	log         *log.Logger

	// gate short-circuits dispatch in environments where notifying is
	// pointless (CI, no TTY). Overridden in tests.
	gate func() bool
}

// NewDispatcher wires the dispatch logic to its capabilities.
func NewDispatcher(locator WindowLocator, highlighter WindowHighlighter, player Player, sounds *SoundSource) *Dispatcher {
	return &Dispatcher{
		locator:     locator,
		highlighter: highlighter,
		player:      player,
		sounds:      sounds,
		log:         logging.New("notify"),
		gate:        interactiveSession,
	}
}

// Dispatch executes an action. A suppressed action returns immediately
// with no side effects; this path is hot (every hook invocation passes
// through it) and must stay cheap.
//
// The highlight is requested first: it is inherently asynchronous at
// the OS level, so it overlaps with the blocking sound playback that
// follows instead of adding to total latency. A missing window skips
// highlighting silently, and a broken sound file falls through the
// candidate chain to the system beep. Dispatch itself never fails.
func (d *Dispatcher) Dispatch(action Action) Outcome {
	if action.Suppressed() {
		return Outcome{}
	}
	if !d.gate() {
		d.log.Debug("non-interactive session, skipping notification", "event", action.Event)
		return Outcome{}
	}

	var out Outcome
	if action.Highlight {
		if handle, ok := d.locator.Locate(action.Workdir); ok {
			if err := d.highlighter.Highlight(handle, action.Mode, action.FlashCount); err != nil {
				d.log.Warn("window highlight failed", "mode", action.Mode, "err", err)
			} else {
				out.HighlightApplied = true
			}
		} else {
			d.log.Debug("no terminal window found, skipping highlight")
		}
	}
	if action.Sound {
		out.SoundPlayed = d.playWithFallback(action)
	}
	return out
}

// playWithFallback walks the sound candidate chain and plays the first
// resource that works, ending in the system beep. Always succeeds.
func (d *Dispatcher) playWithFallback(action Action) bool {
	for _, path := range d.sounds.Candidates(action.Event, action.SoundPath) {
		if err := d.player.Play(path); err != nil {
			d.log.Warn("sound playback failed, trying next fallback", "path", path, "err", err)
			continue
		}
		d.log.Debug("played sound", "path", path)
		return true
	}
	d.log.Debug("no playable sound resource, using system beep")
	d.player.Beep()
	return true
}

// interactiveSession reports whether notifying the user makes sense:
// not in CI, and at least one stdio stream is a terminal.
func interactiveSession() bool {
	if isCI() {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) ||
		term.IsTerminal(int(os.Stderr.Fd())) ||
		term.IsTerminal(int(os.Stdin.Fd()))
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
