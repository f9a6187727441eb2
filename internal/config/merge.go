package config

import "encoding/json"

// Merge deep-merges override into base and returns the result. The
// merge is right-biased and recursive for the events table: an override
// that sets only events.stop.sound leaves the sibling fields of that
// event untouched. Scalar keys present in the override win outright;
// base keys absent from the override pass through unchanged.
func Merge(base Document, override *Document) Document {
	result := base.Clone()
	if override == nil {
		return result
	}
	if override.Enabled != nil {
		result.Enabled = clonePtr(override.Enabled)
	}
	if override.SoundEnabled != nil {
		result.SoundEnabled = clonePtr(override.SoundEnabled)
	}
	if override.HighlightEnabled != nil {
		result.HighlightEnabled = clonePtr(override.HighlightEnabled)
	}
	if override.Events != nil {
		if result.Events == nil {
			result.Events = make(map[string]EventSetting, len(override.Events))
		}
		for name, ev := range override.Events {
			if existing, ok := result.Events[name]; ok {
				result.Events[name] = mergeEvent(existing, ev)
			} else {
				result.Events[name] = ev.Clone()
			}
		}
	}
	// Unknown keys are opaque, so the override replaces them wholesale.
	for key, raw := range override.Extra {
		if result.Extra == nil {
			result.Extra = make(map[string]json.RawMessage)
		}
		result.Extra[key] = append(json.RawMessage(nil), raw...)
	}
	return result
}

func mergeEvent(base, override EventSetting) EventSetting {
	result := base.Clone()
	if override.Enabled != nil {
		result.Enabled = clonePtr(override.Enabled)
	}
	if override.Sound != nil {
		result.Sound = clonePtr(override.Sound)
	}
	if override.Highlight != nil {
		result.Highlight = clonePtr(override.Highlight)
	}
	if override.FlashCount != nil {
		result.FlashCount = clonePtr(override.FlashCount)
	}
	if override.HighlightMode != nil {
		result.HighlightMode = clonePtr(override.HighlightMode)
	}
	for key, raw := range override.Extra {
		if result.Extra == nil {
			result.Extra = make(map[string]json.RawMessage)
		}
		result.Extra[key] = append(json.RawMessage(nil), raw...)
	}
	return result
}
