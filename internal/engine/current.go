package engine

import "twelveweeks/internal/storage"

// CurrentWeekNumber infers the active week from how many distinct days have
// ever been logged: 1-7 days is week 1, 8-14 is week 2, and so on. This is
// deliberately decoupled from the epoch-based week ranges — it counts
// volume of entries, not calendar position — and the two can disagree.
func CurrentWeekNumber(entries []storage.DailyEntry) int {
	if len(entries) == 0 {
		return 1
	}
	uniqueDays := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		uniqueDays[entry.Date] = struct{}{}
	}
	weekNum := (len(uniqueDays)-1)/7 + 1
	if weekNum < 1 {
		return 1
	}
	return weekNum
}
