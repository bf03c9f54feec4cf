package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

const baseMondayKey = "baseMonday"

// SQLiteStore persists each collection as a single JSON blob in a key-value
// table, mirroring the localStorage layout the original scoreboard used.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadGoals() ([]Goal, error) {
	var goals []Goal
	if err := s.loadCollection(CollectionGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *SQLiteStore) SaveGoals(goals []Goal) error {
	return s.saveCollection(CollectionGoals, goals)
}

func (s *SQLiteStore) LoadDailyEntries() ([]DailyEntry, error) {
	var entries []DailyEntry
	if err := s.loadCollection(CollectionDailyEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *SQLiteStore) SaveDailyEntries(entries []DailyEntry) error {
	return s.saveCollection(CollectionDailyEntries, entries)
}

func (s *SQLiteStore) LoadWeeklySummaries() ([]WeeklySummary, error) {
	var summaries []WeeklySummary
	if err := s.loadCollection(CollectionWeeklySummaries, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *SQLiteStore) SaveWeeklySummaries(summaries []WeeklySummary) error {
	return s.saveCollection(CollectionWeeklySummaries, summaries)
}

func (s *SQLiteStore) BaseMonday() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, baseMondayKey).Scan(&value)
	if err == sql.ErrNoRows {
		return DefaultBaseMonday, nil
	}
	if err != nil {
		return "", fmt.Errorf("load setting %s: %w", baseMondayKey, err)
	}
	if value == "" {
		return DefaultBaseMonday, nil
	}
	return value, nil
}

func (s *SQLiteStore) SetBaseMonday(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, baseMondayKey, date)
	if err != nil {
		return fmt.Errorf("save setting %s: %w", baseMondayKey, err)
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM collections`); err != nil {
		return fmt.Errorf("clear collections: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM settings`); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) loadCollection(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data string
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load collection %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		// Malformed blob degrades to an empty collection.
		return nil
	}
	return nil
}

func (s *SQLiteStore) saveCollection(name string, records any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO collections (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data
	`, name, string(data))
	if err != nil {
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	return nil
}
