package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Collection names, matching the keys the original scoreboard kept in
// browser localStorage and the top-level keys of the export bundle.
const (
	CollectionGoals           = "goals"
	CollectionDailyEntries    = "dailyEntries"
	CollectionWeeklySummaries = "weeklySummaries"
)

// DefaultBaseMonday is the epoch used when the user never picked one.
const DefaultBaseMonday = "2025-02-03"

// Store is the persistence contract for the three collections plus the
// base-Monday setting. Absent or malformed data degrades to an empty
// collection; it is never an error.
type Store interface {
	LoadGoals() ([]Goal, error)
	SaveGoals(goals []Goal) error

	LoadDailyEntries() ([]DailyEntry, error)
	SaveDailyEntries(entries []DailyEntry) error

	LoadWeeklySummaries() ([]WeeklySummary, error)
	SaveWeeklySummaries(summaries []WeeklySummary) error

	// BaseMonday returns the stored epoch, or DefaultBaseMonday if unset.
	BaseMonday() (string, error)
	SetBaseMonday(date string) error

	// Clear wipes every collection and the base Monday.
	Clear() error

	Close() error
}

// DefaultDataDir returns the default location for twelveweeks data files.
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".twelveweeks"), nil
}
