// Package backup serializes the whole scoreboard to a single JSON bundle
// and restores it again. Import is per-key: a file carrying only "goals"
// updates only the goals collection. A file that fails to parse aborts the
// entire import with nothing written.
package backup

import (
	"encoding/json"
	"fmt"

	"twelveweeks/internal/storage"
)

// DefaultFileName matches the download name the original scoreboard used.
const DefaultFileName = "12-week-scoreboard-data.json"

type bundle struct {
	Goals           []storage.Goal          `json:"goals"`
	DailyEntries    []storage.DailyEntry    `json:"dailyEntries"`
	WeeklySummaries []storage.WeeklySummary `json:"weeklySummaries"`
}

// Pointer fields so a missing top-level key is distinguishable from an
// empty collection: only keys present in the file are applied.
type partialBundle struct {
	Goals           *[]storage.Goal          `json:"goals"`
	DailyEntries    *[]storage.DailyEntry    `json:"dailyEntries"`
	WeeklySummaries *[]storage.WeeklySummary `json:"weeklySummaries"`
}

// Export bundles the three collections verbatim as indented JSON.
func Export(store storage.Store) ([]byte, error) {
	goals, err := store.LoadGoals()
	if err != nil {
		return nil, err
	}
	entries, err := store.LoadDailyEntries()
	if err != nil {
		return nil, err
	}
	summaries, err := store.LoadWeeklySummaries()
	if err != nil {
		return nil, err
	}

	b := bundle{
		Goals:           emptyIfNil(goals),
		DailyEntries:    emptyIfNilEntries(entries),
		WeeklySummaries: emptyIfNilSummaries(summaries),
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ImportResult reports which collections an import replaced.
type ImportResult struct {
	Goals           bool
	DailyEntries    bool
	WeeklySummaries bool
}

// Import overwrites each collection present in the payload, raw, with no
// merge or dedup. Malformed JSON is an error and mutates nothing.
func Import(store storage.Store, data []byte) (*ImportResult, error) {
	var parsed partialBundle
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}

	res := &ImportResult{}
	if parsed.Goals != nil {
		if err := store.SaveGoals(*parsed.Goals); err != nil {
			return nil, err
		}
		res.Goals = true
	}
	if parsed.DailyEntries != nil {
		if err := store.SaveDailyEntries(*parsed.DailyEntries); err != nil {
			return nil, err
		}
		res.DailyEntries = true
	}
	if parsed.WeeklySummaries != nil {
		if err := store.SaveWeeklySummaries(*parsed.WeeklySummaries); err != nil {
			return nil, err
		}
		res.WeeklySummaries = true
	}
	return res, nil
}

func emptyIfNil(goals []storage.Goal) []storage.Goal {
	if goals == nil {
		return []storage.Goal{}
	}
	return goals
}

func emptyIfNilEntries(entries []storage.DailyEntry) []storage.DailyEntry {
	if entries == nil {
		return []storage.DailyEntry{}
	}
	return entries
}

func emptyIfNilSummaries(summaries []storage.WeeklySummary) []storage.WeeklySummary {
	if summaries == nil {
		return []storage.WeeklySummary{}
	}
	return summaries
}
