package engine

import (
	"fmt"
	"strings"

	"twelveweeks/internal/storage"
)

// EntryForDate returns the entry for date, synthesizing one from history on
// first visit. A synthesized entry is persisted immediately so that
// repeated resolution of the same date is idempotent: the next call finds
// the stored entry instead of re-templating from drifted history.
func (s *Service) EntryForDate(date string) (storage.DailyEntry, error) {
	if err := validateDate(date); err != nil {
		return storage.DailyEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadDailyEntries()
	if err != nil {
		return storage.DailyEntry{}, err
	}
	entry, synthesized := ResolveEntryForDate(entries, date)
	if synthesized {
		entries = upsertEntry(entries, entry)
		if err := s.store.SaveDailyEntries(entries); err != nil {
			return storage.DailyEntry{}, err
		}
	}
	return entry, nil
}

// AddTask appends a task with the default tier to the date's entry. A blank
// name is a silent no-op: nothing is added and no error is surfaced.
func (s *Service) AddTask(date string, name string) (storage.DailyEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.EntryForDate(date)
	}
	return s.mutateEntry(date, func(entry *storage.DailyEntry) error {
		entry.Tasks = append(entry.Tasks, storage.DailyTask{
			TaskID: name,
			Tier:   string(DefaultTier),
			Notes:  "",
		})
		return nil
	})
}

// SetTaskTier sets the tier of the task at index within the date's entry.
func (s *Service) SetTaskTier(date string, index int, tier Tier) (storage.DailyEntry, error) {
	if !tier.IsValid() {
		return storage.DailyEntry{}, fmt.Errorf("invalid tier: %q", tier)
	}
	return s.mutateEntry(date, func(entry *storage.DailyEntry) error {
		if index < 0 || index >= len(entry.Tasks) {
			return fmt.Errorf("task %d not found on %s", index, date)
		}
		entry.Tasks[index].Tier = string(tier)
		return nil
	})
}

// SetTaskNotes replaces the notes of the task at index.
func (s *Service) SetTaskNotes(date string, index int, notes string) (storage.DailyEntry, error) {
	return s.mutateEntry(date, func(entry *storage.DailyEntry) error {
		if index < 0 || index >= len(entry.Tasks) {
			return fmt.Errorf("task %d not found on %s", index, date)
		}
		entry.Tasks[index].Notes = notes
		return nil
	})
}

// RenameTask changes a task's name. Unlike AddTask, a blank name here is an
// explicit user-visible error, never a silent discard.
func (s *Service) RenameTask(date string, index int, name string) (storage.DailyEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.DailyEntry{}, ErrBlankTaskName
	}
	return s.mutateEntry(date, func(entry *storage.DailyEntry) error {
		if index < 0 || index >= len(entry.Tasks) {
			return fmt.Errorf("task %d not found on %s", index, date)
		}
		entry.Tasks[index].TaskID = name
		return nil
	})
}

// DeleteTask removes the task at index. Confirmation is the caller's job.
func (s *Service) DeleteTask(date string, index int) (storage.DailyEntry, error) {
	return s.mutateEntry(date, func(entry *storage.DailyEntry) error {
		if index < 0 || index >= len(entry.Tasks) {
			return fmt.Errorf("task %d not found on %s", index, date)
		}
		entry.Tasks = append(entry.Tasks[:index], entry.Tasks[index+1:]...)
		return nil
	})
}

// SaveEntry upserts a whole entry by date.
func (s *Service) SaveEntry(entry storage.DailyEntry) error {
	if err := validateDate(entry.Date); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadDailyEntries()
	if err != nil {
		return err
	}
	return s.store.SaveDailyEntries(upsertEntry(entries, entry))
}

// DailyEntries returns every logged entry.
func (s *Service) DailyEntries() ([]storage.DailyEntry, error) {
	return s.store.LoadDailyEntries()
}

// mutateEntry resolves the date's entry (synthesizing on first visit),
// applies fn, and writes the collection back — one locked read-modify-write.
func (s *Service) mutateEntry(date string, fn func(*storage.DailyEntry) error) (storage.DailyEntry, error) {
	if err := validateDate(date); err != nil {
		return storage.DailyEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadDailyEntries()
	if err != nil {
		return storage.DailyEntry{}, err
	}
	entry, _ := ResolveEntryForDate(entries, date)
	if err := fn(&entry); err != nil {
		return storage.DailyEntry{}, err
	}
	entries = upsertEntry(entries, entry)
	if err := s.store.SaveDailyEntries(entries); err != nil {
		return storage.DailyEntry{}, err
	}
	return entry, nil
}

func upsertEntry(entries []storage.DailyEntry, entry storage.DailyEntry) []storage.DailyEntry {
	for i := range entries {
		if entries[i].Date == entry.Date {
			entries[i] = entry
			return entries
		}
	}
	return append(entries, entry)
}
