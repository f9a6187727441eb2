// Package config manages the two-tier notification configuration:
// a global document under the user's home directory and a project-local
// document, deep-merged over compiled-in defaults at read time.
package config

import (
	"encoding/json"
	"strconv"
)

// Known event names. The events table is limited to this set; anything
// else found in a document is carried opaquely but never resolved.
const (
	EventStop         = "stop"
	EventToolComplete = "tool_complete"
	EventPermission   = "permission"
	EventError        = "error"
)

// EventNames lists the known event names in display order.
var EventNames = []string{EventStop, EventToolComplete, EventPermission, EventError}

// KnownEvent reports whether name is one of the fixed event names.
func KnownEvent(name string) bool {
	for _, n := range EventNames {
		if n == name {
			return true
		}
	}
	return false
}

// Document is one persisted configuration document. Every field is
// optional so that a sparse project override can be told apart from an
// explicit setting; nil means "key absent in this tier".
//
// Unknown top-level keys are captured in Extra and written back on save
// so that user-added fields survive a round trip.
type Document struct {
	Enabled          *bool                   `json:"enabled,omitempty"`
	SoundEnabled     *bool                   `json:"sound_enabled,omitempty"`
	HighlightEnabled *bool                   `json:"highlight_enabled,omitempty"`
	Events           map[string]EventSetting `json:"events,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// EventSetting is the per-event policy within a document. As with
// Document, nil fields mean the key is absent at this tier.
type EventSetting struct {
	Enabled       *bool   `json:"enabled,omitempty"`
	Sound         *bool   `json:"sound,omitempty"`
	Highlight     *bool   `json:"highlight,omitempty"`
	FlashCount    *int    `json:"flash_count,omitempty"`
	HighlightMode *string `json:"highlight_mode,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Bool, Int and String build the optional fields used in document
// patches and the defaults table.
func Bool(b bool) *bool { return &b }

func Int(i int) *int { return &i }

func String(s string) *string { return &s }

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	out.Enabled = clonePtr(d.Enabled)
	out.SoundEnabled = clonePtr(d.SoundEnabled)
	out.HighlightEnabled = clonePtr(d.HighlightEnabled)
	if d.Events != nil {
		out.Events = make(map[string]EventSetting, len(d.Events))
		for name, ev := range d.Events {
			out.Events[name] = ev.Clone()
		}
	}
	out.Extra = cloneRaw(d.Extra)
	return out
}

// Clone returns a deep copy of the event setting.
func (e EventSetting) Clone() EventSetting {
	out := e
	out.Enabled = clonePtr(e.Enabled)
	out.Sound = clonePtr(e.Sound)
	out.Highlight = clonePtr(e.Highlight)
	out.FlashCount = clonePtr(e.FlashCount)
	out.HighlightMode = clonePtr(e.HighlightMode)
	out.Extra = cloneRaw(e.Extra)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRaw(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// FromMap builds a Document from a loosely-typed map as produced by the
// koanf JSON parser (numbers arrive as float64) or the env provider
// (everything arrives as a string). Values of the wrong shape are
// treated as absent rather than failing the whole document.
func FromMap(m map[string]any) Document {
	var d Document
	for key, val := range m {
		switch key {
		case "enabled":
			d.Enabled = coerceBool(val)
		case "sound_enabled":
			d.SoundEnabled = coerceBool(val)
		case "highlight_enabled":
			d.HighlightEnabled = coerceBool(val)
		case "events":
			events, ok := val.(map[string]any)
			if !ok {
				continue
			}
			d.Events = make(map[string]EventSetting, len(events))
			for name, raw := range events {
				setting, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				d.Events[name] = eventSettingFromMap(setting)
			}
		default:
			if d.Extra == nil {
				d.Extra = make(map[string]json.RawMessage)
			}
			if raw, err := json.Marshal(val); err == nil {
				d.Extra[key] = raw
			}
		}
	}
	return d
}

func eventSettingFromMap(m map[string]any) EventSetting {
	var e EventSetting
	for key, val := range m {
		switch key {
		case "enabled":
			e.Enabled = coerceBool(val)
		case "sound":
			e.Sound = coerceBool(val)
		case "highlight":
			e.Highlight = coerceBool(val)
		case "flash_count":
			e.FlashCount = coerceInt(val)
		case "highlight_mode":
			if s, ok := val.(string); ok {
				e.HighlightMode = String(s)
			}
		default:
			if e.Extra == nil {
				e.Extra = make(map[string]json.RawMessage)
			}
			if raw, err := json.Marshal(val); err == nil {
				e.Extra[key] = raw
			}
		}
	}
	return e
}

func coerceBool(val any) *bool {
	switch v := val.(type) {
	case bool:
		return Bool(v)
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return Bool(b)
		}
	}
	return nil
}

func coerceInt(val any) *int {
	switch v := val.(type) {
	case int:
		return Int(v)
	case int64:
		return Int(int(v))
	case float64:
		return Int(int(v))
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return Int(i)
		}
	}
	return nil
}

// ToMap renders the document back to a plain map for serialization,
// merging Extra keys alongside the typed fields.
func (d Document) ToMap() map[string]any {
	out := make(map[string]any)
	for key, raw := range d.Extra {
		out[key] = json.RawMessage(raw)
	}
	if d.Enabled != nil {
		out["enabled"] = *d.Enabled
	}
	if d.SoundEnabled != nil {
		out["sound_enabled"] = *d.SoundEnabled
	}
	if d.HighlightEnabled != nil {
		out["highlight_enabled"] = *d.HighlightEnabled
	}
	if d.Events != nil {
		events := make(map[string]any, len(d.Events))
		for name, ev := range d.Events {
			events[name] = ev.toMap()
		}
		out["events"] = events
	}
	return out
}

func (e EventSetting) toMap() map[string]any {
	out := make(map[string]any)
	for key, raw := range e.Extra {
		out[key] = json.RawMessage(raw)
	}
	if e.Enabled != nil {
		out["enabled"] = *e.Enabled
	}
	if e.Sound != nil {
		out["sound"] = *e.Sound
	}
	if e.Highlight != nil {
		out["highlight"] = *e.Highlight
	}
	if e.FlashCount != nil {
		out["flash_count"] = *e.FlashCount
	}
	if e.HighlightMode != nil {
		out["highlight_mode"] = *e.HighlightMode
	}
	return out
}

// Has reports whether the document supplies a value at the given key
// path, e.g. ["sound_enabled"] or ["events", "stop", "flash_count"].
// Used for provenance, so presence matters even when the value equals
// another tier's value.
func (d Document) Has(keyPath []string) bool {
	if len(keyPath) == 0 {
		return false
	}
	switch keyPath[0] {
	case "enabled":
		return len(keyPath) == 1 && d.Enabled != nil
	case "sound_enabled":
		return len(keyPath) == 1 && d.SoundEnabled != nil
	case "highlight_enabled":
		return len(keyPath) == 1 && d.HighlightEnabled != nil
	case "events":
		if len(keyPath) == 1 {
			return d.Events != nil
		}
		ev, ok := d.Events[keyPath[1]]
		if !ok {
			return false
		}
		if len(keyPath) == 2 {
			return true
		}
		return ev.has(keyPath[2])
	default:
		_, ok := d.Extra[keyPath[0]]
		return len(keyPath) == 1 && ok
	}
}

func (e EventSetting) has(field string) bool {
	switch field {
	case "enabled":
		return e.Enabled != nil
	case "sound":
		return e.Sound != nil
	case "highlight":
		return e.Highlight != nil
	case "flash_count":
		return e.FlashCount != nil
	case "highlight_mode":
		return e.HighlightMode != nil
	default:
		_, ok := e.Extra[field]
		return ok
	}
}
