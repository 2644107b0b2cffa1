package storage

import (
	"database/sql"
	"fmt"

	"github.com/vovakirdan/math-heroes/internal/core"
)

// Flag names in the flags table.
const (
	flagHasPlayed        = "has_played"
	flagAdditionUnlocked = "addition_unlocked"
)

// LoadFlags implements core.FlagStore.
// Missing flags read as false.
func (s *Store) LoadFlags() (core.Flags, error) {
	var f core.Flags

	rows, err := s.db.Query("SELECT name, value FROM flags")
	if err != nil {
		return f, fmt.Errorf("storage: cannot query flags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var value bool
		if err := rows.Scan(&name, &value); err != nil {
			return f, fmt.Errorf("storage: cannot scan flag: %w", err)
		}
		switch name {
		case flagHasPlayed:
			f.HasPlayed = value
		case flagAdditionUnlocked:
			f.AdditionUnlocked = value
		}
	}

	if err := rows.Err(); err != nil {
		return f, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return f, nil
}

// SaveFlags implements core.FlagStore.
func (s *Store) SaveFlags(f core.Flags) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	values := []struct {
		name  string
		value bool
	}{
		{flagHasPlayed, f.HasPlayed},
		{flagAdditionUnlocked, f.AdditionUnlocked},
	}
	for _, v := range values {
		if err := upsertFlag(tx, v.name, v.value); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot save flags: %w", err)
	}
	return nil
}

// ResetFlags clears all progress flags.
func (s *Store) ResetFlags() error {
	if _, err := s.db.Exec("DELETE FROM flags"); err != nil {
		return fmt.Errorf("storage: cannot reset flags: %w", err)
	}
	return nil
}

func upsertFlag(tx *sql.Tx, name string, value bool) error {
	_, err := tx.Exec(
		`INSERT INTO flags (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save flag %s: %w", name, err)
	}
	return nil
}

var _ core.FlagStore = (*Store)(nil)
