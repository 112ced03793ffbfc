package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bluez/tripwise"
)

// TripsFile is the file name holding the trip list inside the data dir.
const TripsFile = "trips.jsonl"

// FileStore persists the trip list as a JSONL file, one trip per line.
type FileStore struct {
	dir string
}

// NewFileStore returns a store writing under the given data directory. The
// directory is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string { return filepath.Join(s.dir, TripsFile) }

// Save writes the full trip list, replacing the previous file.
func (s *FileStore) Save(trips []*tripwise.Trip) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	f, err := os.Create(s.path())
	if err != nil {
		return fmt.Errorf("could not open trips file %q for writing: %w", s.path(), err)
	}
	defer f.Close()
	return tripwise.EncodeTrips(f, trips)
}

// Load reads the trip list back. A missing file is no prior state and loads
// as an empty list; a malformed file is an error for the caller to downgrade.
func (s *FileStore) Load() ([]*tripwise.Trip, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return []*tripwise.Trip{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open trips file %q: %w", s.path(), err)
	}
	defer f.Close()

	trips, err := tripwise.DecodeTrips(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode trips file %q: %w", s.path(), err)
	}
	return trips, nil
}
