// Package storage persists the user's Notion preference as a small JSON
// file in the add-in data directory.
//
// The file is the add-in's only state. It is written whole on every save and
// meant to be hand-editable, so loading is deliberately forgiving: a missing
// file is created with defaults, and an unreadable or malformed one yields
// the default preference instead of an error.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bradandersonjr/fusion-notion-notes/internal/models"
)

// ConfigFilename is the name of the preference file inside the data
// directory.
const ConfigFilename = "notion_config.json"

// Store reads and writes the preference file.
type Store struct {
	path string
}

// NewStore creates a Store whose preference file lives in dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, ConfigFilename)}
}

// Path returns the location of the backing file, for logs and status output.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored preference. It never fails: a missing file is
// created with defaults (best effort), and an unreadable or malformed one is
// logged and replaced by defaults in memory, leaving the file on disk for
// the user to fix.
func (s *Store) Load() models.Preference {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			def := models.DefaultPreference()
			if err := s.Save(def); err != nil {
				slog.Warn("could not create default preference file", "path", s.path, "error", err)
			}
			return def
		}
		slog.Warn("could not read preference file, using defaults", "path", s.path, "error", err)
		return models.DefaultPreference()
	}

	// Pointer fields distinguish a key that is absent from one that is
	// empty; a file missing either key is treated as malformed.
	var raw struct {
		DatabaseURL *string `json:"database_url"`
		OpenMethod  *string `json:"default_open_method"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("preference file is not valid JSON, using defaults", "path", s.path, "error", err)
		return models.DefaultPreference()
	}
	if raw.DatabaseURL == nil || raw.OpenMethod == nil {
		slog.Warn("preference file is missing required keys, using defaults", "path", s.path)
		return models.DefaultPreference()
	}

	return models.Preference{
		DatabaseURL: *raw.DatabaseURL,
		OpenMethod:  models.OpenMethod(*raw.OpenMethod).Normalize(),
	}
}

// Save writes the preference file whole, creating the data directory if
// needed. The file is always overwritten in a single write.
func (s *Store) Save(pref models.Preference) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %q: %w", dir, err)
	}

	pref.OpenMethod = pref.OpenMethod.Normalize()

	data, err := json.MarshalIndent(pref, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preference: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preference file %q: %w", s.path, err)
	}
	return nil
}
