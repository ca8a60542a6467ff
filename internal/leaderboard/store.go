// Package leaderboard persists winning sessions to a JSON scores file
// and renders the high-score table.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultFileName is the scores file used when no path is configured.
const DefaultFileName = "high_scores.json"

// ScoreRecord is one persisted winning session. The JSON key set is
// the compatibility contract for the scores file.
type ScoreRecord struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Attempts   int    `json:"attempts"`
	Date       string `json:"date"`
}

// NewRecord builds a record for a win, stamping the date as YYYY-MM-DD.
func NewRecord(name, difficulty string, attempts int, now time.Time) ScoreRecord {
	return ScoreRecord{
		Name:       name,
		Difficulty: difficulty,
		Attempts:   attempts,
		Date:       now.Format("2006-01-02"),
	}
}

// Store reads and writes the scores file. The path is injected so
// tests and configuration can point it anywhere.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns all records sorted ascending by attempts. A missing
// file yields an empty leaderboard. A file with malformed JSON also
// yields an empty leaderboard, with a warning; the data is not
// repaired or backed up.
func (s *Store) Load() ([]ScoreRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scores file %s: %w", s.path, err)
	}

	var records []ScoreRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("could not parse scores file, starting with empty scores",
			"path", s.path, "error", err)
		return nil, nil
	}

	sortRecords(records)
	return records, nil
}

// Save appends rec to the stored records, re-sorts, and replaces the
// whole file. The write goes through a temp file and rename so a
// failed write never leaves a truncated scores file behind.
func (s *Store) Save(rec ScoreRecord) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	records = append(records, rec)
	sortRecords(records)
	return s.write(records)
}

func (s *Store) write(records []ScoreRecord) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp scores file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write scores file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write scores file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace scores file %s: %w", s.path, err)
	}
	return nil
}

// sortRecords orders by attempts ascending. The sort is stable so ties
// keep their insertion order.
func sortRecords(records []ScoreRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Attempts < records[j].Attempts
	})
}
