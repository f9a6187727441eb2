package notify

import "github.com/schoolboyqueue/ccnotify/internal/config"

// Resolve computes the effective Action for one event from the merged
// configuration and the CLI overrides. CLI flags always win over
// config, never the reverse.
//
// The decision order is: master switch, per-event switch, category
// switches ANDed with the per-event flags and the negative CLI flags.
// If neither sound nor highlight survives, the action is suppressed.
// An explicit --mode replaces the configured mode; an explicit,
// positive --flash-count replaces the configured count.
func Resolve(cfg config.Effective, event Event, ov Overrides) Action {
	cfg = cfg.Normalize()

	if !cfg.Enabled {
		return Action{Event: event}
	}
	pol, ok := cfg.Events[string(event)]
	if !ok || !pol.Enabled {
		return Action{Event: event}
	}

	sound := cfg.SoundEnabled && pol.Sound && !ov.NoSound
	highlight := cfg.HighlightEnabled && pol.Highlight && !ov.NoHighlight
	if !sound && !highlight {
		return Action{Event: event}
	}

	mode := HighlightMode(pol.HighlightMode)
	if ov.ModeSet && ValidHighlightMode(string(ov.Mode)) {
		mode = ov.Mode
	}
	flashCount := pol.FlashCount
	if ov.FlashCountSet && ov.FlashCount > 0 {
		flashCount = ov.FlashCount
	}

	return Action{
		Event:      event,
		Sound:      sound,
		Highlight:  highlight,
		Mode:       mode,
		FlashCount: flashCount,
		SoundPath:  ov.SoundPath,
		Workdir:    ov.Workdir,
	}
}
