// Package fileslot provides a file-based implementation of domain.Slot.
package fileslot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/runoshun/tasklist/internal/domain"
)

// Slot stores a snapshot in a single file.
// Reads take a shared lock and writes an exclusive one, so two processes
// opened on the same data directory never observe a half-written file.
type Slot struct {
	path     string
	lockPath string
}

// New creates a Slot for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Slot {
	return &Slot{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the snapshot file path.
func (s *Slot) Path() string {
	return s.path
}

// Read returns the file contents, or (nil, nil) if the file does not exist.
func (s *Slot) Read() ([]byte, error) {
	var content []byte
	err := s.withLock(false, func() error {
		data, err := os.ReadFile(s.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read slot file: %w", err)
		}
		content = data
		return nil
	})
	return content, err
}

// Write replaces the file contents atomically.
func (s *Slot) Write(data []byte) error {
	return s.withLock(true, func() error {
		// Write to temp file first, then rename for atomicity
		tmpPath := s.path + ".tmp"
		if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}

		if err := os.Rename(tmpPath, s.path); err != nil {
			_ = os.Remove(tmpPath) // Clean up
			return fmt.Errorf("rename temp file: %w", err)
		}
		return nil
	})
}

func (s *Slot) withLock(exclusive bool, fn func() error) error {
	// Ensure lock file directory exists
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o750); err != nil {
		return fmt.Errorf("create slot directory: %w", err)
	}

	lock := flock.New(s.lockPath)
	var err error
	if exclusive {
		err = lock.Lock()
	} else {
		err = lock.RLock()
	}
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// Ensure Slot implements domain.Slot.
var _ domain.Slot = (*Slot)(nil)
