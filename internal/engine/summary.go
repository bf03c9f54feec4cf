package engine

import (
	"sort"
	"strings"

	"twelveweeks/internal/storage"
)

// SaveWeeklySummary upserts the reflection for a week. The stored score is
// a snapshot of the live week score at save time — advisory only, since
// displays always recompute from the daily entries.
func (s *Service) SaveWeeklySummary(weekNumber int, reflection string) (storage.WeeklySummary, error) {
	if weekNumber < 1 {
		return storage.WeeklySummary{}, InvalidWeekError{WeekNumber: weekNumber}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	baseMonday, err := s.store.BaseMonday()
	if err != nil {
		return storage.WeeklySummary{}, err
	}
	entries, err := s.store.LoadDailyEntries()
	if err != nil {
		return storage.WeeklySummary{}, err
	}
	score, err := ScoreForWeek(weekNumber, entries, baseMonday)
	if err != nil {
		return storage.WeeklySummary{}, err
	}

	summary := storage.WeeklySummary{
		WeekNumber: weekNumber,
		Score:      score,
		Reflection: strings.TrimSpace(reflection),
	}

	summaries, err := s.store.LoadWeeklySummaries()
	if err != nil {
		return storage.WeeklySummary{}, err
	}
	updated := false
	for i := range summaries {
		if summaries[i].WeekNumber == weekNumber {
			summaries[i] = summary
			updated = true
			break
		}
	}
	if !updated {
		summaries = append(summaries, summary)
	}
	if err := s.store.SaveWeeklySummaries(summaries); err != nil {
		return storage.WeeklySummary{}, err
	}
	return summary, nil
}

// ListWeeklySummaries returns every saved summary ordered by week number.
func (s *Service) ListWeeklySummaries() ([]storage.WeeklySummary, error) {
	summaries, err := s.store.LoadWeeklySummaries()
	if err != nil {
		return nil, err
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].WeekNumber < summaries[j].WeekNumber
	})
	return summaries, nil
}

// SummaryForWeek returns the saved summary for a week, or nil if the week
// was never saved.
func (s *Service) SummaryForWeek(weekNumber int) (*storage.WeeklySummary, error) {
	summaries, err := s.store.LoadWeeklySummaries()
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		if summaries[i].WeekNumber == weekNumber {
			return &summaries[i], nil
		}
	}
	return nil, nil
}
