package notify

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/schoolboyqueue/ccnotify/internal/logging"
)

// eventSoundFiles maps each event to its sound resource in the project
// sound directory.
var eventSoundFiles = map[Event]string{
	EventStop:         "complete.mp3",
	EventToolComplete: "tool_complete.mp3",
	EventPermission:   "permission.mp3",
	EventError:        "error.mp3",
}

// genericSoundFile is the shared fallback played when the per-event
// file is missing.
const genericSoundFile = "notice.mp3"

// supportedAudioExtensions contains file extensions accepted for sound
// resources, including custom --sound overrides.
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".m4a":  true,
}

// SoundSource resolves the playable candidates for an event, in
// fallback order. It never returns an error; an empty candidate list
// means the dispatcher should go straight to the system beep.
type SoundSource struct {
	dir string
	log *log.Logger
}

// NewSoundSource returns a SoundSource rooted at dir, the
// project-relative folder holding one file per event plus the generic
// fallback.
func NewSoundSource(dir string) *SoundSource {
	return &SoundSource{dir: dir, log: logging.New("sound")}
}

// Candidates returns the resolution chain for an event: the explicit
// override path first, then the per-event file, then the generic
// fallback. Entries that do not exist or have an unsupported format are
// filtered out up front so playback failures are limited to broken
// files, not missing ones.
func (s *SoundSource) Candidates(event Event, override string) []string {
	var out []string
	if override != "" {
		if s.valid(override) {
			out = append(out, override)
		} else {
			s.log.Warn("custom sound file unusable, falling back", "path", override)
		}
	}
	if name, ok := eventSoundFiles[event]; ok {
		if path := filepath.Join(s.dir, name); s.valid(path) {
			out = append(out, path)
		}
	}
	if path := filepath.Join(s.dir, genericSoundFile); s.valid(path) {
		out = append(out, path)
	}
	return out
}

// valid checks that path names an existing regular file with a
// supported audio extension.
func (s *SoundSource) valid(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return supportedAudioExtensions[strings.ToLower(filepath.Ext(path))]
}
