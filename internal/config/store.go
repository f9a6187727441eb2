package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/schoolboyqueue/ccnotify/internal/logging"
)

// Store loads and saves configuration documents. Loading is fail-open:
// a missing or unparseable file degrades to "absent" so a broken config
// can never stop a notification from dispatching. Saving is atomic
// (write-temp-then-rename) so a crash mid-write cannot leave a partial
// file behind.
type Store struct {
	log *log.Logger
}

// NewStore returns a Store logging through the shared component logger.
func NewStore() *Store {
	return &Store{log: logging.New("config")}
}

// Load reads the document at path. The second return value reports
// presence: false means the file does not exist or could not be parsed,
// and the caller should treat that tier as absent.
func (s *Store) Load(path string) (Document, bool) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("cannot stat config file, treating as absent", "path", path, "err", err)
		}
		return Document{}, false
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		s.log.Warn("failed to parse config file, treating as absent", "path", path, "err", err)
		return Document{}, false
	}
	return FromMap(k.Raw()), true
}

// Save serializes the document to path, creating parent directories as
// needed and replacing any prior content atomically.
func (s *Store) Save(path string, doc Document) error {
	content, err := json.MarshalIndent(doc.ToMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	content = append(content, '\n')
	if err := writeAtomically(path, content); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Apply loads the document at path (or starts from the compiled-in
// defaults when the file is absent or unreadable), applies patch, and
// saves the result. Untouched keys, including unknown ones, survive.
func (s *Store) Apply(path string, patch func(*Document)) error {
	doc, ok := s.Load(path)
	if !ok {
		doc = Defaults()
	}
	patch(&doc)
	return s.Save(path, doc)
}

// writeAtomically writes content to path via a temp file and rename.
func writeAtomically(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmpFile, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	tmpPath = "" // Prevent cleanup since rename succeeded
	return nil
}
