// Package config tests for the recursive two-tier document merge.
// Related: internal/config/merge.go
// Tags: config, merge

package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_NilOverrideIsIdentity(t *testing.T) {
	t.Parallel()
	base := Defaults()

	result := Merge(base, nil)

	assert.Equal(t, base, result)
}

func TestMerge_OverrideLeafWins(t *testing.T) {
	t.Parallel()
	base := Defaults()
	override := Document{SoundEnabled: Bool(false)}

	result := Merge(base, &override)

	require.NotNil(t, result.SoundEnabled)
	assert.False(t, *result.SoundEnabled)
	// Base keys absent from the override pass through unchanged.
	require.NotNil(t, result.Enabled)
	assert.True(t, *result.Enabled)
	require.NotNil(t, result.HighlightEnabled)
	assert.True(t, *result.HighlightEnabled)
}

func TestMerge_PartialEventOverridePreservesSiblings(t *testing.T) {
	t.Parallel()
	base := Defaults()
	override := Document{
		Events: map[string]EventSetting{
			EventStop: {Sound: Bool(false)},
		},
	}

	result := Merge(base, &override)

	stop := result.Events[EventStop]
	require.NotNil(t, stop.Sound)
	assert.False(t, *stop.Sound)
	// Siblings keep their base values instead of being erased.
	require.NotNil(t, stop.Highlight)
	assert.True(t, *stop.Highlight)
	require.NotNil(t, stop.FlashCount)
	assert.Equal(t, 5, *stop.FlashCount)
	require.NotNil(t, stop.HighlightMode)
	assert.Equal(t, "flash", *stop.HighlightMode)
}

func TestMerge_OverrideSuppliesNewKey(t *testing.T) {
	t.Parallel()
	base := Document{Enabled: Bool(true)}
	override := Document{
		Events: map[string]EventSetting{
			EventError: {FlashCount: Int(9)},
		},
	}

	result := Merge(base, &override)

	require.Contains(t, result.Events, EventError)
	assert.Equal(t, 9, *result.Events[EventError].FlashCount)
	assert.True(t, *result.Enabled)
}

func TestMerge_UnknownEventNamePassesThrough(t *testing.T) {
	t.Parallel()
	base := Defaults()
	override := Document{
		Events: map[string]EventSetting{
			"custom_event": {Enabled: Bool(true), FlashCount: Int(2)},
		},
	}

	result := Merge(base, &override)

	require.Contains(t, result.Events, "custom_event")
	assert.Equal(t, 2, *result.Events["custom_event"].FlashCount)
	// The known events are untouched.
	assert.Equal(t, 3, *result.Events[EventToolComplete].FlashCount)
}

func TestMerge_UnknownTopLevelKeysOverrideWholesale(t *testing.T) {
	t.Parallel()
	base := Document{
		Extra: map[string]json.RawMessage{
			"custom": json.RawMessage(`{"a":1}`),
			"kept":   json.RawMessage(`true`),
		},
	}
	override := Document{
		Extra: map[string]json.RawMessage{
			"custom": json.RawMessage(`{"b":2}`),
		},
	}

	result := Merge(base, &override)

	assert.JSONEq(t, `{"b":2}`, string(result.Extra["custom"]))
	assert.JSONEq(t, `true`, string(result.Extra["kept"]))
}

func TestMerge_DoesNotAliasBase(t *testing.T) {
	t.Parallel()
	base := Defaults()
	override := Document{
		Events: map[string]EventSetting{
			EventStop: {FlashCount: Int(1)},
		},
	}

	result := Merge(base, &override)
	*result.Events[EventStop].FlashCount = 42

	assert.Equal(t, 5, *base.Events[EventStop].FlashCount)
	assert.Equal(t, 1, *override.Events[EventStop].FlashCount)
}

func TestMerge_FullChainPrecedence(t *testing.T) {
	t.Parallel()
	global := Document{SoundEnabled: Bool(false), HighlightEnabled: Bool(false)}
	project := Document{HighlightEnabled: Bool(true)}

	result := Merge(Merge(Defaults(), &global), &project)

	assert.False(t, *result.SoundEnabled, "global override survives")
	assert.True(t, *result.HighlightEnabled, "project wins over global")
	assert.True(t, *result.Enabled, "default survives where neither tier speaks")
}
