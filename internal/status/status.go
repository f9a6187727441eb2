// Package status computes and renders the merged configuration view
// with per-key provenance. The structured View is separate from its
// terminal rendering so the computation can be tested without capturing
// output.
package status

import (
	"fmt"

	"github.com/schoolboyqueue/ccnotify/internal/config"
)

// BoolSetting is one effective boolean value plus the tier it came
// from.
type BoolSetting struct {
	Value  bool
	Source config.Tier
}

// EventView is the resolved state of one event.
type EventView struct {
	Name      string
	Enabled   BoolSetting
	Sound     BoolSetting
	Highlight BoolSetting

	FlashCount    int
	HighlightMode string
}

// View is the full status report.
type View struct {
	GlobalPath     string
	ProjectPath    string
	GlobalPresent  bool
	ProjectPresent bool

	Enabled          BoolSetting
	SoundEnabled     BoolSetting
	HighlightEnabled BoolSetting
	Events           []EventView

	// ProjectOverrides is set when a project document is present and
	// therefore shadowing global settings.
	ProjectOverrides bool

	// Warnings carries informational findings (e.g. schema violations
	// in an otherwise-parseable document).
	Warnings []string
}

// Report merges the two documents over defaults and annotates every
// switch with its provenance. Either document may be nil (absent tier).
func Report(global, project *config.Document, globalPath, projectPath string) View {
	eff := config.EffectiveFrom(global, project)

	v := View{
		GlobalPath:       globalPath,
		ProjectPath:      projectPath,
		GlobalPresent:    global != nil,
		ProjectPresent:   project != nil,
		ProjectOverrides: project != nil,
		Enabled:          boolSetting(eff.Enabled, global, project, "enabled"),
		SoundEnabled:     boolSetting(eff.SoundEnabled, global, project, "sound_enabled"),
		HighlightEnabled: boolSetting(eff.HighlightEnabled, global, project, "highlight_enabled"),
	}

	for _, name := range config.EventNames {
		pol := eff.Events[name]
		v.Events = append(v.Events, EventView{
			Name:          name,
			Enabled:       boolSetting(pol.Enabled, global, project, "events."+name+".enabled"),
			Sound:         boolSetting(pol.Sound, global, project, "events."+name+".sound"),
			Highlight:     boolSetting(pol.Highlight, global, project, "events."+name+".highlight"),
			FlashCount:    pol.FlashCount,
			HighlightMode: pol.HighlightMode,
		})
	}

	if err := eff.Validate(); err != nil {
		v.Warnings = append(v.Warnings, fmt.Sprintf("configuration has invalid values (defaults apply): %v", err))
	}
	return v
}

func boolSetting(value bool, global, project *config.Document, path string) BoolSetting {
	return BoolSetting{Value: value, Source: config.Source(global, project, path)}
}
