package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

type fileState struct {
	Goals           []Goal          `json:"goals"`
	DailyEntries    []DailyEntry    `json:"dailyEntries"`
	WeeklySummaries []WeeklySummary `json:"weeklySummaries"`
	BaseMonday      string          `json:"baseMonday,omitempty"`
}

// JSONStore keeps the whole scoreboard in a single JSON file, written
// atomically via a temp file + rename.
type JSONStore struct {
	filePath string
	mu       sync.RWMutex
	state    fileState
}

func NewJSONStore(filePath string) (*JSONStore, error) {
	s := &JSONStore{filePath: filePath}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONStore) LoadGoals() ([]Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Goal(nil), s.state.Goals...), nil
}

func (s *JSONStore) SaveGoals(goals []Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Goals = append([]Goal(nil), goals...)
	return s.persistLocked()
}

func (s *JSONStore) LoadDailyEntries() ([]DailyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]DailyEntry(nil), s.state.DailyEntries...), nil
}

func (s *JSONStore) SaveDailyEntries(entries []DailyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.DailyEntries = append([]DailyEntry(nil), entries...)
	return s.persistLocked()
}

func (s *JSONStore) LoadWeeklySummaries() ([]WeeklySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]WeeklySummary(nil), s.state.WeeklySummaries...), nil
}

func (s *JSONStore) SaveWeeklySummaries(summaries []WeeklySummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.WeeklySummaries = append([]WeeklySummary(nil), summaries...)
	return s.persistLocked()
}

func (s *JSONStore) BaseMonday() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.BaseMonday == "" {
		return DefaultBaseMonday, nil
	}
	return s.state.BaseMonday, nil
}

func (s *JSONStore) SetBaseMonday(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.BaseMonday = date
	return s.persistLocked()
}

func (s *JSONStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fileState{}
	return s.persistLocked()
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		// Malformed state degrades to empty collections.
		s.state = fileState{}
		return nil
	}
	s.state = state
	return nil
}

func (s *JSONStore) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.filePath)
}
