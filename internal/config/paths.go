package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = "notification_config.json"

// GlobalPath returns the user-level config location,
// ~/.claude/notification_config.json.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".claude", configFileName), nil
}

// ProjectPath returns the project-level config location relative to the
// current working directory: .claude/notification_config.json.
func ProjectPath() string {
	return filepath.Join(".claude", configFileName)
}

// SoundDir returns the project-relative directory holding one sound
// resource per event plus the generic fallback file.
func SoundDir() string {
	return filepath.Join(".claude", "sounds")
}
