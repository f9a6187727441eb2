package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EventPolicy is the fully-resolved per-event policy after merging.
type EventPolicy struct {
	Enabled       bool   `json:"enabled"`
	Sound         bool   `json:"sound"`
	Highlight     bool   `json:"highlight"`
	FlashCount    int    `json:"flash_count" validate:"min=0"`
	HighlightMode string `json:"highlight_mode" validate:"oneof=flash focus topmost all"`
}

// Effective is the fully-resolved configuration: defaults merged with
// the global document, then the project document, then any overlays
// (the CCNOTIFY_* environment layer). Only the fixed event names appear
// in Events; unknown names in the source documents are carried through
// the documents themselves but never resolved.
type Effective struct {
	Enabled          bool                   `json:"enabled"`
	SoundEnabled     bool                   `json:"sound_enabled"`
	HighlightEnabled bool                   `json:"highlight_enabled"`
	Events           map[string]EventPolicy `json:"events" validate:"dive"`
}

// EffectiveFrom merges the configuration tiers in precedence order:
// defaults < global < project < overlays. A nil document means that
// tier is absent and contributes nothing.
func EffectiveFrom(global, project *Document, overlays ...*Document) Effective {
	merged := Merge(Defaults(), global)
	merged = Merge(merged, project)
	for _, o := range overlays {
		merged = Merge(merged, o)
	}

	eff := Effective{
		Enabled:          derefBool(merged.Enabled, true),
		SoundEnabled:     derefBool(merged.SoundEnabled, true),
		HighlightEnabled: derefBool(merged.HighlightEnabled, true),
		Events:           make(map[string]EventPolicy, len(EventNames)),
	}
	for _, name := range EventNames {
		def := DefaultPolicy(name)
		ev, ok := merged.Events[name]
		if !ok {
			eff.Events[name] = def
			continue
		}
		eff.Events[name] = EventPolicy{
			Enabled:       derefBool(ev.Enabled, def.Enabled),
			Sound:         derefBool(ev.Sound, def.Sound),
			Highlight:     derefBool(ev.Highlight, def.Highlight),
			FlashCount:    derefInt(ev.FlashCount, def.FlashCount),
			HighlightMode: derefStr(ev.HighlightMode, def.HighlightMode),
		}
	}
	return eff
}

// Validate checks the effective configuration against the schema rules.
// The dispatch path never fails on an invalid document (it normalizes
// instead); status surfaces the returned error informationally.
func (e Effective) Validate() error {
	if err := validator.New().Struct(e); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Normalize returns a copy with any out-of-range values replaced by the
// compiled-in default for that field. Availability over strictness: a
// malformed value must never stop a notification from dispatching.
func (e Effective) Normalize() Effective {
	out := e
	out.Events = make(map[string]EventPolicy, len(e.Events))
	for name, pol := range e.Events {
		def := DefaultPolicy(name)
		if pol.FlashCount < 0 {
			pol.FlashCount = def.FlashCount
		}
		switch pol.HighlightMode {
		case "flash", "focus", "topmost", "all":
		default:
			pol.HighlightMode = def.HighlightMode
		}
		out.Events[name] = pol
	}
	return out
}

func derefBool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func derefInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func derefStr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
