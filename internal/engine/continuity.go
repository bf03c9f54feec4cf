package engine

import "twelveweeks/internal/storage"

// EntryFromTemplate builds a fresh entry for date seeded with the given
// task names only: every task starts at the default tier with empty notes.
func EntryFromTemplate(date string, taskNames []string) storage.DailyEntry {
	tasks := make([]storage.DailyTask, 0, len(taskNames))
	for _, name := range taskNames {
		tasks = append(tasks, storage.DailyTask{
			TaskID: name,
			Tier:   string(DefaultTier),
			Notes:  "",
		})
	}
	return storage.DailyEntry{Date: date, Tasks: tasks}
}

// ResolveEntryForDate returns the entry to use for targetDate. An existing
// entry is returned unchanged. Otherwise a new entry is synthesized from
// the single most recent prior entry: task names carry forward, tiers and
// notes never do. With no prior history the entry starts empty. The second
// return reports whether the entry was synthesized (and so still needs to
// be persisted for resolution to stay idempotent).
func ResolveEntryForDate(entries []storage.DailyEntry, targetDate string) (storage.DailyEntry, bool) {
	for _, entry := range entries {
		if entry.Date == targetDate {
			return entry, false
		}
	}

	// Dates are unique per entry, so the strict max below has no ties.
	var prior *storage.DailyEntry
	for i := range entries {
		if entries[i].Date >= targetDate {
			continue
		}
		if prior == nil || entries[i].Date > prior.Date {
			prior = &entries[i]
		}
	}

	if prior == nil {
		return storage.DailyEntry{Date: targetDate, Tasks: []storage.DailyTask{}}, true
	}

	names := make([]string, 0, len(prior.Tasks))
	for _, task := range prior.Tasks {
		names = append(names, task.TaskID)
	}
	return EntryFromTemplate(targetDate, names), true
}
