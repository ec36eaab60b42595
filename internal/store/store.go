// Package store persists the journal's entry list.
//
// The default backend is a single human-readable JSON file rewritten in
// full on every mutation. A SQLite backend with the same load-all /
// rewrite-all semantics can be selected in the config file.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/ecotrack/internal/config"
	"github.com/theirongolddev/ecotrack/internal/model"
)

// Store reads and writes the full ordered entry sequence.
//
// Load returns the stored entries in insertion order. A missing store is
// not an error: it yields an empty list. A corrupt store is returned as an
// error; callers treat it as empty history after notifying the user.
//
// Save overwrites the entire store with the given sequence. No
// transactional guarantee is made for the JSON backend; a failed write may
// leave partial content behind.
type Store interface {
	Load() ([]model.Entry, error)
	Save(entries []model.Entry) error
}

// Open returns the store selected by the configuration.
func Open(cfg config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case "", config.BackendJSON:
		return NewJSONStore(cfg.Storage.DataFile), nil
	case config.BackendSQLite:
		return OpenSQLite(cfg.Storage.DataFile)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// JSONStore persists entries as a JSON array in a single file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a JSON file store at the given path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the full entry list. A missing file yields an empty list.
func (s *JSONStore) Load() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return entries, nil
}

// Save rewrites the store with the given entries.
func (s *JSONStore) Save(entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
