package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hvasconcelos/horas/internal/model"
)

// fileName is the single bucket holding the full entry list.
const fileName = "time_entries.json"

// Store persists all time entries as one JSON list in a single file.
// Reads and writes always cover the whole list; there is exactly one writer
// (the interactive user), so no locking is done.
type Store struct {
	path string
}

// New returns a Store rooted at the given data directory.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// All loads the full entry list in insertion order. A missing file reads as
// an empty list. Corrupt JSON is backed up next to the file and the parse
// error is returned.
func (s *Store) All() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Back up corrupt file and abort.
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		return nil, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", s.path, backupPath, err)
	}
	return entries, nil
}

// Save assigns a fresh ID to the entry, appends it to the stored list and
// persists. The stored entry, ID included, is returned.
func (s *Store) Save(entry model.Entry) (model.Entry, error) {
	entries, err := s.All()
	if err != nil {
		return model.Entry{}, err
	}

	entry.ID = uuid.NewString()
	entries = append(entries, entry)
	if err := s.write(entries); err != nil {
		return model.Entry{}, err
	}
	return entry, nil
}

// Patch carries the fields Update merges over an existing entry. Only
// closing a timer mutates an entry, so the patch surface is exactly the
// clock-out pair.
type Patch struct {
	EndTime      *time.Time
	TotalMinutes *int
}

// Update merges the patch over the entry with the given ID and persists.
// An unknown ID is a silent no-op: the list is left untouched.
func (s *Store) Update(id string, patch Patch) error {
	entries, err := s.All()
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		if patch.EndTime != nil {
			entries[i].EndTime = patch.EndTime
		}
		if patch.TotalMinutes != nil {
			entries[i].TotalMinutes = patch.TotalMinutes
		}
		return s.write(entries)
	}
	return nil
}

// ByDate returns the entries whose Date equals the given YYYY-MM-DD string,
// in stored order.
func (s *Store) ByDate(date string) ([]model.Entry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	var matched []model.Entry
	for _, e := range entries {
		if e.Date == date {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// ByMonth returns the entries whose Date falls in the given year and month,
// in stored order. Dates that fail to parse are skipped.
func (s *Store) ByMonth(year int, month time.Month) ([]model.Entry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	var matched []model.Entry
	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// FindOpen returns the most recently added entry with no clock-out, or nil
// when no timer is running.
func (s *Store) FindOpen() (*model.Entry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Open() {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// write atomically persists the full entry list.
func (s *Store) write(entries []model.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
