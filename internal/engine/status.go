package engine

// WeekReport is one saved week's live view.
type WeekReport struct {
	WeekNumber int
	Start      string
	End        string
	Score      int // recomputed live, not the stored snapshot
	Reflection string
}

// StatusReport is the dashboard view: the current week, its live score,
// and every saved week rescored from the daily entries.
type StatusReport struct {
	BaseMonday       string
	CurrentWeek      int
	WeekStart        string
	WeekEnd          string
	CurrentWeekScore int
	HasCurrentScore  bool // false renders as "N/A", not "0%"
	OverallAverage   int
	GoalCount        int
	Weeks            []WeekReport
}

func (s *Service) Status() (*StatusReport, error) {
	baseMonday, err := s.store.BaseMonday()
	if err != nil {
		return nil, err
	}
	entries, err := s.store.LoadDailyEntries()
	if err != nil {
		return nil, err
	}
	goals, err := s.store.LoadGoals()
	if err != nil {
		return nil, err
	}
	summaries, err := s.ListWeeklySummaries()
	if err != nil {
		return nil, err
	}

	currentWeek := CurrentWeekNumber(entries)
	weekStart, weekEnd, err := DateRangeForWeek(currentWeek, baseMonday)
	if err != nil {
		return nil, err
	}
	currentScore, hasScore, err := ScoreForCurrentWeek(entries, currentWeek, baseMonday)
	if err != nil {
		return nil, err
	}
	average, err := OverallAverage(summaries, entries, baseMonday)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		BaseMonday:       baseMonday,
		CurrentWeek:      currentWeek,
		WeekStart:        weekStart,
		WeekEnd:          weekEnd,
		CurrentWeekScore: currentScore,
		HasCurrentScore:  hasScore,
		OverallAverage:   average,
		GoalCount:        len(goals),
	}

	for _, summary := range summaries {
		start, end, err := DateRangeForWeek(summary.WeekNumber, baseMonday)
		if err != nil {
			return nil, err
		}
		score, err := ScoreForWeek(summary.WeekNumber, entries, baseMonday)
		if err != nil {
			return nil, err
		}
		report.Weeks = append(report.Weeks, WeekReport{
			WeekNumber: summary.WeekNumber,
			Start:      start,
			End:        end,
			Score:      score,
			Reflection: summary.Reflection,
		})
	}

	return report, nil
}
