package engine

import (
	"math"

	"twelveweeks/internal/storage"
)

// AggregateScore reduces a set of task tiers to a 0-100 percentage: the
// average tier weight over the maximum weight (4). The second return is
// false when there are no tasks at all — "no score" is distinct from 0%,
// which cannot occur for valid tiers since the minimum weight is 1.
func AggregateScore(tasks []storage.DailyTask) (int, bool) {
	if len(tasks) == 0 {
		return 0, false
	}
	total := 0
	for _, task := range tasks {
		total += Tier(task.Tier).Weight()
	}
	average := float64(total) / float64(len(tasks))
	return int(math.Round(average / 4 * 100)), true
}

// ScoreForWeek computes the live score for one week: every task on every
// entry whose date falls inside the week's 7-day range. A week with no
// matching tasks scores 0 here — unlike AggregateScore's no-value
// convention; callers must not conflate the two.
func ScoreForWeek(weekNumber int, entries []storage.DailyEntry, baseMonday string) (int, error) {
	if weekNumber < 1 {
		return 0, InvalidWeekError{WeekNumber: weekNumber}
	}
	matched, err := entriesInWeek(weekNumber, entries, baseMonday)
	if err != nil {
		return 0, err
	}
	score, ok := AggregateScore(flattenTasks(matched))
	if !ok {
		return 0, nil
	}
	return score, nil
}

// ScoreForCurrentWeek is the same filter-and-aggregate, but keeps the
// no-value convention so displays can show "N/A" instead of "0%".
func ScoreForCurrentWeek(entries []storage.DailyEntry, currentWeekNumber int, baseMonday string) (int, bool, error) {
	if currentWeekNumber < 1 {
		return 0, false, InvalidWeekError{WeekNumber: currentWeekNumber}
	}
	matched, err := entriesInWeek(currentWeekNumber, entries, baseMonday)
	if err != nil {
		return 0, false, err
	}
	score, ok := AggregateScore(flattenTasks(matched))
	return score, ok, nil
}

// OverallAverage is the rounded mean of the live week scores for every
// saved summary's week. Saved snapshot scores are ignored; each week is
// recomputed from the daily entries. No summaries means 0.
func OverallAverage(summaries []storage.WeeklySummary, entries []storage.DailyEntry, baseMonday string) (int, error) {
	if len(summaries) == 0 {
		return 0, nil
	}
	total := 0
	for _, summary := range summaries {
		score, err := ScoreForWeek(summary.WeekNumber, entries, baseMonday)
		if err != nil {
			return 0, err
		}
		total += score
	}
	return int(math.Round(float64(total) / float64(len(summaries)))), nil
}

func entriesInWeek(weekNumber int, entries []storage.DailyEntry, baseMonday string) ([]storage.DailyEntry, error) {
	start, end, err := DateRangeForWeek(weekNumber, baseMonday)
	if err != nil {
		return nil, err
	}
	startNum := DateToComparableNumber(start)
	endNum := DateToComparableNumber(end)

	var matched []storage.DailyEntry
	for _, entry := range entries {
		entryNum := DateToComparableNumber(entry.Date)
		if entryNum >= startNum && entryNum <= endNum {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func flattenTasks(entries []storage.DailyEntry) []storage.DailyTask {
	var tasks []storage.DailyTask
	for _, entry := range entries {
		tasks = append(tasks, entry.Tasks...)
	}
	return tasks
}
