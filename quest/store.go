package quest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/robin/questdash/progress"
)

// Store is the sqlite-backed completion log. The ordered log is the
// history replayed into the engine at startup; live completions are
// appended as they happen.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS completions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	completed_at INTEGER NOT NULL
)`

// OpenStore opens the completion database, creating the file and schema
// on first run.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// History returns every recorded completion difficulty in completion
// order. Rows with difficulties this build no longer knows are an error
// rather than a silent skip.
func (s *Store) History() ([]progress.Difficulty, error) {
	rows, err := s.db.Query(`SELECT difficulty FROM completions ORDER BY completed_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []progress.Difficulty
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		d, err := progress.ParseDifficulty(raw)
		if err != nil {
			return nil, fmt.Errorf("history row %d: %w", len(history)+1, err)
		}
		history = append(history, d)
	}
	return history, rows.Err()
}

// RecordCompletion appends one completed task to the log.
func (s *Store) RecordCompletion(task string, d progress.Difficulty) error {
	_, err := s.db.Exec(`INSERT INTO completions (task, difficulty, completed_at) VALUES (?, ?, ?)`,
		task, d.String(), time.Now().Unix())
	return err
}

// CompletionCount returns the number of logged completions.
func (s *Store) CompletionCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM completions`).Scan(&n)
	return n, err
}
