package config

import (
	"errors"
	"strings"
)

// Tier identifies which configuration tier supplied an effective value.
type Tier string

const (
	TierProject Tier = "project"
	TierGlobal  Tier = "global"
	TierDefault Tier = "default"
)

// ErrEmptyKeyPath is returned when an empty key path is provided.
var ErrEmptyKeyPath = errors.New("empty key path")

// ParseKeyPath splits a dotted key path into its component parts.
// For example, "events.stop.sound" becomes ["events", "stop", "sound"].
func ParseKeyPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyKeyPath
	}
	return strings.Split(path, "."), nil
}

// Source reports which tier owns the key at the given dotted path.
// Ownership is tested in the project document first, then the global
// document, else the value comes from the compiled-in defaults. A key
// present in the project document wins even when its value equals the
// global one.
func Source(global, project *Document, path string) Tier {
	keyPath, err := ParseKeyPath(path)
	if err != nil {
		return TierDefault
	}
	if project != nil && project.Has(keyPath) {
		return TierProject
	}
	if global != nil && global.Has(keyPath) {
		return TierGlobal
	}
	return TierDefault
}
