package config

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvOverlay builds an override document from CCNOTIFY_* environment
// variables. Only the top-level switches are addressable this way
// (CCNOTIFY_ENABLED, CCNOTIFY_SOUND_ENABLED, CCNOTIFY_HIGHLIGHT_ENABLED);
// per-event keys contain underscores themselves and cannot be mapped
// unambiguously from an environment name.
//
// The overlay participates in the normal merge chain as the outermost
// override, mirroring the env > project > global > defaults priority.
func EnvOverlay() *Document {
	k := koanf.New(".")
	_ = k.Load(env.Provider("CCNOTIFY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CCNOTIFY_"))
	}), nil)
	raw := k.Raw()
	if len(raw) == 0 {
		return nil
	}
	doc := FromMap(raw)
	// Anything that is not a recognized switch is noise from unrelated
	// CCNOTIFY_-prefixed variables, not user config. Drop it so a stray
	// variable cannot end up persisted through a toggle round trip.
	doc.Extra = nil
	doc.Events = nil
	if doc.Enabled == nil && doc.SoundEnabled == nil && doc.HighlightEnabled == nil {
		return nil
	}
	return &doc
}
