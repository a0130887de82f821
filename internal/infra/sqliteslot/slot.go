// Package sqliteslot provides a SQLite-backed implementation of domain.Slot.
// Each slot is one row of a key/value table, so several named slots can share
// a database file.
package sqliteslot

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/runoshun/tasklist/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// Slot stores a snapshot in the row identified by key.
type Slot struct {
	db  *sql.DB
	key string
}

// Open opens (or creates) the database at dbPath and ensures the slots table
// exists. The caller is responsible for calling Close.
func Open(dbPath, key string) (*Slot, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Slot{db: db, key: key}, nil
}

// Close releases the underlying database connection.
func (s *Slot) Close() error { return s.db.Close() }

// Key returns the slot name.
func (s *Slot) Key() string { return s.key }

// Read returns the stored snapshot, or (nil, nil) if the row does not exist.
func (s *Slot) Read() ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", s.key, err)
	}
	return value, nil
}

// Write replaces the stored snapshot.
func (s *Slot) Write(data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", s.key, err)
	}
	return nil
}

// Ensure Slot implements domain.Slot.
var _ domain.Slot = (*Slot)(nil)
