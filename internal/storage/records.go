package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Record returns the value stored under name, or 0 if there is none.
func (s *Store) Record(name string) (int, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM records WHERE name = ?", name).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: cannot read record %s: %w", name, err)
	}
	return value, nil
}

// RaiseRecord stores value under name unless a larger value is already
// stored, and returns the value stored afterwards. The comparison runs in
// one statement, so concurrent writers can never lower a record.
func (s *Store) RaiseRecord(name string, value int) (int, error) {
	if value < 0 {
		return 0, fmt.Errorf("storage: record %s: negative value %d", name, value)
	}

	_, err := s.db.Exec(
		`INSERT INTO records (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			value = MAX(records.value, excluded.value),
			updated_at = CASE WHEN excluded.value > records.value
				THEN CURRENT_TIMESTAMP ELSE records.updated_at END`,
		name, value,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save record %s: %w", name, err)
	}
	return s.Record(name)
}

// Slot returns a RecordSlot over the record stored under name.
func (s *Store) Slot(name string) *RecordSlot {
	return &RecordSlot{store: s, name: name}
}
