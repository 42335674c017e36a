package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/daylist/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

const DefaultFileName = "daylist.json"

type Store struct {
	path string
}

// New returns a store for path. An empty path means DefaultFileName in the
// working directory.
func New(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) Load(_ context.Context) (model.Snapshot, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Snapshot{Entries: []model.Entry{}}, nil
		}
		return model.Snapshot{}, fmt.Errorf("read file: %w", err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if snap.Entries == nil {
		snap.Entries = []model.Entry{}
	}
	return snap, nil
}

// Save writes to a temp file next to the target and renames it over.
func (s *Store) Save(_ context.Context, snap model.Snapshot) error {
	if snap.Entries == nil {
		snap.Entries = []model.Entry{}
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
