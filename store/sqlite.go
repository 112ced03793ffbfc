package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/bluez/tripwise"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS trips (
	id       TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	doc      TEXT NOT NULL
);
`

// SQLiteStore persists the trip list in a SQLite database, one canonical
// JSON document per trip. The document is the same shape the file store
// writes, so the two backends stay interchangeable.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening trips db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Save replaces the stored trip list with the given one, atomically.
func (s *SQLiteStore) Save(trips []*tripwise.Trip) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM trips"); err != nil {
		return err
	}
	for i, t := range trips {
		doc, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to marshal trip %q: %w", t.Name, err)
		}
		_, err = tx.Exec("INSERT INTO trips (id, position, doc) VALUES (?, ?, ?)",
			t.ID.String(), i, string(doc))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the trip list back in saved order. A malformed document is an
// error for the caller to downgrade to empty state.
func (s *SQLiteStore) Load() ([]*tripwise.Trip, error) {
	rows, err := s.db.Query("SELECT doc FROM trips ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	trips := make([]*tripwise.Trip, 0)
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var t tripwise.Trip
		if err := json.Unmarshal([]byte(doc), &t); err != nil {
			return nil, fmt.Errorf("could not decode stored trip: %w", err)
		}
		trips = append(trips, &t)
	}
	return trips, rows.Err()
}
