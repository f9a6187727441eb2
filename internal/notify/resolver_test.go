// Package notify tests for config-to-action resolution.
// Related: internal/notify/resolver.go
// Tags: notify, resolve

package notify

import (
	"testing"

	"github.com/schoolboyqueue/ccnotify/internal/config"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		global  *config.Document
		project *config.Document
		event   Event
		ov      Overrides
		want    Action
	}{
		"permission default is silent focus": {
			event: EventPermission,
			want: Action{
				Event:      EventPermission,
				Sound:      false,
				Highlight:  true,
				Mode:       ModeFocus,
				FlashCount: 0,
			},
		},
		"stop default flashes with sound": {
			event: EventStop,
			want: Action{
				Event:      EventStop,
				Sound:      true,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
			},
		},
		"global sound_enabled false silences stop but keeps flash": {
			global: &config.Document{SoundEnabled: config.Bool(false)},
			event:  EventStop,
			want: Action{
				Event:      EventStop,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
			},
		},
		"project per-event sound off leaves highlight untouched": {
			project: &config.Document{
				Events: map[string]config.EventSetting{
					config.EventStop: {Sound: config.Bool(false)},
				},
			},
			event: EventStop,
			want: Action{
				Event:      EventStop,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
			},
		},
		"master disable suppresses everything": {
			project: &config.Document{Enabled: config.Bool(false)},
			event:   EventError,
			want:    Action{Event: EventError},
		},
		"per-event disable suppresses that event": {
			project: &config.Document{
				Events: map[string]config.EventSetting{
					config.EventToolComplete: {Enabled: config.Bool(false)},
				},
			},
			event: EventToolComplete,
			want:  Action{Event: EventToolComplete},
		},
		"no-sound flag beats config": {
			event: EventStop,
			ov:    Overrides{NoSound: true},
			want: Action{
				Event:      EventStop,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
			},
		},
		"no-sound and no-highlight together suppress": {
			event: EventStop,
			ov:    Overrides{NoSound: true, NoHighlight: true},
			want:  Action{Event: EventStop},
		},
		"mode flag replaces configured mode": {
			event: EventStop,
			ov:    Overrides{Mode: ModeTopmost, ModeSet: true},
			want: Action{
				Event:      EventStop,
				Sound:      true,
				Highlight:  true,
				Mode:       ModeTopmost,
				FlashCount: 5,
			},
		},
		"invalid mode flag is ignored": {
			event: EventStop,
			ov:    Overrides{Mode: "wobble", ModeSet: true},
			want: Action{
				Event:      EventStop,
				Sound:      true,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
			},
		},
		"flash count flag replaces configured count": {
			event: EventError,
			ov:    Overrides{FlashCount: 9, FlashCountSet: true},
			want: Action{
				Event:      EventError,
				Sound:      true,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 9,
			},
		},
		"zero flash count flag keeps configured count": {
			event: EventError,
			ov:    Overrides{FlashCount: 0, FlashCountSet: true},
			want: Action{
				Event:      EventError,
				Sound:      true,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
			},
		},
		"invalid configured values are normalized before use": {
			project: &config.Document{
				Events: map[string]config.EventSetting{
					config.EventStop: {
						FlashCount:    config.Int(-2),
						HighlightMode: config.String("spin"),
					},
				},
			},
			event: EventStop,
			want: Action{
				Event:      EventStop,
				Sound:      true,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
			},
		},
		"sound path and workdir pass through": {
			event: EventStop,
			ov:    Overrides{SoundPath: "custom.wav", Workdir: "/work/proj"},
			want: Action{
				Event:      EventStop,
				Sound:      true,
				Highlight:  true,
				Mode:       ModeFlash,
				FlashCount: 5,
				SoundPath:  "custom.wav",
				Workdir:    "/work/proj",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			eff := config.EffectiveFrom(tc.global, tc.project)
			got := Resolve(eff, tc.event, tc.ov)
			if got != tc.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestActionSuppressed(t *testing.T) {
	t.Parallel()

	if !(Action{Event: EventStop}).Suppressed() {
		t.Error("empty action should be suppressed")
	}
	if (Action{Event: EventStop, Highlight: true}).Suppressed() {
		t.Error("highlight-only action should not be suppressed")
	}
	if (Action{Event: EventStop, Sound: true}).Suppressed() {
		t.Error("sound-only action should not be suppressed")
	}
}
