package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store binds a data file path to the in-memory snapshot loaded from it.
// One command invocation loads the snapshot once, mutates it through the
// rule methods and saves it back after every mutation.
type Store struct {
	path string
	Data *Data
}

// Open loads the snapshot at path. A missing file is an empty store, not
// an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path, Data: &Data{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, path, err)
	}

	if err := json.Unmarshal(raw, s.Data); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrStorage, path, err)
	}

	return s, nil
}

// Save writes the snapshot back to disk, creating the parent directory
// when needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("%w: creating directory: %v", ErrStorage, err)
	}

	raw, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding data: %v", ErrStorage, err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStorage, s.path, err)
	}

	return nil
}
