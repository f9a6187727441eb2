package config

// Defaults returns the compiled-in configuration document. Every field
// is populated, so merging any user document over it always yields a
// fully-specified result.
func Defaults() Document {
	return Document{
		Enabled:          Bool(true),
		SoundEnabled:     Bool(true),
		HighlightEnabled: Bool(true),
		Events: map[string]EventSetting{
			EventStop: {
				Enabled:       Bool(true),
				Sound:         Bool(true),
				Highlight:     Bool(true),
				FlashCount:    Int(5),
				HighlightMode: String("flash"),
			},
			EventToolComplete: {
				Enabled:       Bool(true),
				Sound:         Bool(true),
				Highlight:     Bool(true),
				FlashCount:    Int(3),
				HighlightMode: String("flash"),
			},
			EventPermission: {
				Enabled:       Bool(true),
				Sound:         Bool(false),
				Highlight:     Bool(true),
				FlashCount:    Int(0),
				HighlightMode: String("focus"),
			},
			EventError: {
				Enabled:       Bool(true),
				Sound:         Bool(true),
				Highlight:     Bool(true),
				FlashCount:    Int(5),
				HighlightMode: String("flash"),
			},
		},
	}
}

// DefaultPolicy returns the compiled-in effective policy for one event.
// Used to fill in fields that an otherwise-valid document left invalid.
func DefaultPolicy(event string) EventPolicy {
	ev, ok := Defaults().Events[event]
	if !ok {
		return EventPolicy{Enabled: true, Sound: true, Highlight: true, FlashCount: 5, HighlightMode: "flash"}
	}
	return EventPolicy{
		Enabled:       *ev.Enabled,
		Sound:         *ev.Sound,
		Highlight:     *ev.Highlight,
		FlashCount:    *ev.FlashCount,
		HighlightMode: *ev.HighlightMode,
	}
}
