package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap_CoercesLooseTypes(t *testing.T) {
	t.Parallel()

	// JSON parsing delivers float64 numbers; the env provider delivers
	// strings. Both must land in the typed fields.
	doc := FromMap(map[string]any{
		"enabled":       true,
		"sound_enabled": "false",
		"events": map[string]any{
			"stop": map[string]any{
				"flash_count":    float64(7),
				"highlight_mode": "focus",
				"sound":          "true",
			},
			"error": map[string]any{
				"flash_count": "4",
			},
		},
	})

	require.NotNil(t, doc.Enabled)
	assert.True(t, *doc.Enabled)
	require.NotNil(t, doc.SoundEnabled)
	assert.False(t, *doc.SoundEnabled)
	assert.Nil(t, doc.HighlightEnabled)

	stop := doc.Events[EventStop]
	assert.Equal(t, 7, *stop.FlashCount)
	assert.Equal(t, "focus", *stop.HighlightMode)
	assert.True(t, *stop.Sound)
	assert.Equal(t, 4, *doc.Events[EventError].FlashCount)
}

func TestFromMap_WrongShapeIsAbsent(t *testing.T) {
	t.Parallel()

	doc := FromMap(map[string]any{
		"enabled": float64(1),
		"events": map[string]any{
			"stop": map[string]any{
				"flash_count":    "not a number",
				"highlight_mode": float64(3),
			},
		},
	})

	assert.Nil(t, doc.Enabled)
	assert.Nil(t, doc.Events[EventStop].FlashCount)
	assert.Nil(t, doc.Events[EventStop].HighlightMode)
}

func TestFromMap_UnknownKeysLandInExtra(t *testing.T) {
	t.Parallel()

	doc := FromMap(map[string]any{
		"theme": "dark",
		"events": map[string]any{
			"stop": map[string]any{
				"volume": float64(80),
			},
		},
	})

	require.Contains(t, doc.Extra, "theme")
	assert.JSONEq(t, `"dark"`, string(doc.Extra["theme"]))
	require.Contains(t, doc.Events[EventStop].Extra, "volume")
	assert.JSONEq(t, `80`, string(doc.Events[EventStop].Extra["volume"]))
}

func TestToMap_RoundTripsThroughFromMap(t *testing.T) {
	t.Parallel()

	original := Document{
		Enabled:      Bool(false),
		SoundEnabled: Bool(true),
		Events: map[string]EventSetting{
			EventPermission: {
				Highlight:     Bool(true),
				HighlightMode: String("focus"),
				FlashCount:    Int(0),
			},
		},
		Extra: map[string]json.RawMessage{
			"custom": json.RawMessage(`{"nested":true}`),
		},
	}

	// Serialize and re-parse the way the store does.
	data, err := json.Marshal(original.ToMap())
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	restored := FromMap(parsed)

	assert.False(t, *restored.Enabled)
	assert.True(t, *restored.SoundEnabled)
	assert.Nil(t, restored.HighlightEnabled)
	perm := restored.Events[EventPermission]
	assert.True(t, *perm.Highlight)
	assert.Equal(t, "focus", *perm.HighlightMode)
	assert.Equal(t, 0, *perm.FlashCount)
	assert.JSONEq(t, `{"nested":true}`, string(restored.Extra["custom"]))
}

func TestDocument_Has(t *testing.T) {
	t.Parallel()

	doc := Document{
		SoundEnabled: Bool(false),
		Events: map[string]EventSetting{
			EventStop: {FlashCount: Int(5)},
		},
		Extra: map[string]json.RawMessage{"theme": json.RawMessage(`"dark"`)},
	}

	tests := map[string]struct {
		path []string
		want bool
	}{
		"present top-level":   {[]string{"sound_enabled"}, true},
		"absent top-level":    {[]string{"enabled"}, false},
		"present event field": {[]string{"events", "stop", "flash_count"}, true},
		"absent event field":  {[]string{"events", "stop", "sound"}, false},
		"absent event":        {[]string{"events", "error", "sound"}, false},
		"events container":    {[]string{"events"}, true},
		"extra key":           {[]string{"theme"}, true},
		"unknown key":         {[]string{"nope"}, false},
		"empty path":          {nil, false},
		"event presence":      {[]string{"events", "stop"}, true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, doc.Has(tc.path))
		})
	}
}

func TestKnownEvent(t *testing.T) {
	t.Parallel()

	for _, name := range EventNames {
		assert.True(t, KnownEvent(name), name)
	}
	assert.False(t, KnownEvent("build_complete"))
	assert.False(t, KnownEvent(""))
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	original := Defaults()
	clone := original.Clone()

	*clone.Enabled = false
	*clone.Events[EventStop].FlashCount = 99

	assert.True(t, *original.Enabled)
	assert.Equal(t, 5, *original.Events[EventStop].FlashCount)
}
