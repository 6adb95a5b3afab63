package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/square-chase/internal/core"
)

// HighScoreRecord is the well-known record name of the Square Chase high score.
const HighScoreRecord = "chase.high_score"

// RecordSlot persists one named record in the SQLite records table.
type RecordSlot struct {
	store *Store
	name  string
}

// Load returns the stored record, or 0 if it is absent or unreadable.
func (r *RecordSlot) Load() int {
	v, err := r.store.Record(r.name)
	if err != nil {
		return 0
	}
	return v
}

// Save raises the stored record to value.
func (r *RecordSlot) Save(value int) error {
	_, err := r.store.RaiseRecord(r.name, value)
	return err
}

// FileSlot persists a record as a decimal number in a plain text file.
type FileSlot struct {
	path string
}

// NewFileSlot creates a slot backed by the file at path (~ is expanded).
func NewFileSlot(path string) (*FileSlot, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &FileSlot{path: p}, nil
}

// Load returns the number in the file, or 0 if the file is missing or
// does not hold a non-negative integer.
func (f *FileSlot) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Save overwrites the file with value. The write goes through a temporary
// file and a rename so a crash never leaves a truncated record.
func (f *FileSlot) Save(value int) error {
	if value < 0 {
		return errors.New("storage: negative record value")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

var (
	_ core.RecordSlot = (*RecordSlot)(nil)
	_ core.RecordSlot = (*FileSlot)(nil)
)
