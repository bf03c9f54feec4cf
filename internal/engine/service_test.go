package engine

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"twelveweeks/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scoreboard.json")
	store, err := storage.NewJSONStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store)
}

func TestEntryResolutionIsIdempotent(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddTask("2024-02-09", "stretch"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.SetTaskTier("2024-02-09", 0, TierC); err != nil {
		t.Fatalf("SetTaskTier: %v", err)
	}

	first, err := svc.EntryForDate("2024-02-10")
	if err != nil {
		t.Fatalf("EntryForDate first: %v", err)
	}
	second, err := svc.EntryForDate("2024-02-10")
	if err != nil {
		t.Fatalf("EntryForDate second: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolution diverged: first %+v, second %+v", first, second)
	}
	// The synthesized entry was persisted, not rebuilt.
	entries, err := svc.DailyEntries()
	if err != nil {
		t.Fatalf("DailyEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (source day + synthesized day)", len(entries))
	}
	if first.Tasks[0].TaskID != "stretch" || first.Tasks[0].Tier != "S" {
		t.Fatalf("template task = %+v, want name carried, tier reset to S", first.Tasks[0])
	}
}

func TestAddTaskBlankNameIsNoOp(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.AddTask("2024-02-10", "   ")
	if err != nil {
		t.Fatalf("AddTask blank: %v", err)
	}
	if len(entry.Tasks) != 0 {
		t.Fatalf("blank add must be a no-op, got %+v", entry.Tasks)
	}
}

func TestRenameTaskBlankNameIsRejected(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddTask("2024-02-10", "read"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	_, err := svc.RenameTask("2024-02-10", 0, "  ")
	if !errors.Is(err, ErrBlankTaskName) {
		t.Fatalf("blank rename err = %v, want ErrBlankTaskName", err)
	}
	// The original name survives the rejected edit.
	entry, err := svc.EntryForDate("2024-02-10")
	if err != nil {
		t.Fatalf("EntryForDate: %v", err)
	}
	if entry.Tasks[0].TaskID != "read" {
		t.Fatalf("task name = %q, want read", entry.Tasks[0].TaskID)
	}
}

func TestTaskMutations(t *testing.T) {
	svc := newTestService(t)
	const date = "2024-02-10"

	if _, err := svc.AddTask(date, "run"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.AddTask(date, "read"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	if _, err := svc.SetTaskTier(date, 1, TierB); err != nil {
		t.Fatalf("SetTaskTier: %v", err)
	}
	if _, err := svc.SetTaskNotes(date, 0, "5k"); err != nil {
		t.Fatalf("SetTaskNotes: %v", err)
	}
	if _, err := svc.RenameTask(date, 1, "read 30 pages"); err != nil {
		t.Fatalf("RenameTask: %v", err)
	}

	entry, err := svc.EntryForDate(date)
	if err != nil {
		t.Fatalf("EntryForDate: %v", err)
	}
	if entry.Tasks[0].Notes != "5k" || entry.Tasks[1].Tier != "B" || entry.Tasks[1].TaskID != "read 30 pages" {
		t.Fatalf("mutations not applied: %+v", entry.Tasks)
	}

	if _, err := svc.DeleteTask(date, 0); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	entry, err = svc.EntryForDate(date)
	if err != nil {
		t.Fatalf("EntryForDate: %v", err)
	}
	if len(entry.Tasks) != 1 || entry.Tasks[0].TaskID != "read 30 pages" {
		t.Fatalf("delete left %+v", entry.Tasks)
	}

	if _, err := svc.DeleteTask(date, 5); err == nil {
		t.Fatalf("expected error deleting out-of-range index")
	}
}

func TestGoalCRUD(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddGoal("  ", ""); err == nil {
		t.Fatalf("expected error for blank goal title")
	}

	goal, err := svc.AddGoal("Ship the project", "twelve weeks of focus")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if goal.ID == "" {
		t.Fatalf("goal id not assigned")
	}

	updated, err := svc.UpdateGoal(goal.ID, "Ship v1", "")
	if err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}
	if updated.Title != "Ship v1" {
		t.Fatalf("title = %q, want Ship v1", updated.Title)
	}

	if _, err := svc.UpdateGoal("missing", "x", ""); err == nil {
		t.Fatalf("expected error updating unknown goal")
	}

	if err := svc.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	goals, err := svc.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("goals = %+v, want empty", goals)
	}
	if err := svc.DeleteGoal(goal.ID); err == nil {
		t.Fatalf("expected error deleting unknown goal")
	}
}

func TestSaveWeeklySummarySnapshotsLiveScore(t *testing.T) {
	svc := newTestService(t)

	// Default epoch is 2025-02-03; log an S and a B in week 1.
	if _, err := svc.AddTask("2025-02-04", "deep work"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.AddTask("2025-02-04", "email"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.SetTaskTier("2025-02-04", 1, TierB); err != nil {
		t.Fatalf("SetTaskTier: %v", err)
	}

	summary, err := svc.SaveWeeklySummary(1, "solid start")
	if err != nil {
		t.Fatalf("SaveWeeklySummary: %v", err)
	}
	if summary.Score != 75 {
		t.Fatalf("snapshot score = %d, want 75", summary.Score)
	}

	// Saving again replaces, keyed by week number.
	if _, err := svc.SaveWeeklySummary(1, "revised"); err != nil {
		t.Fatalf("SaveWeeklySummary again: %v", err)
	}
	summaries, err := svc.ListWeeklySummaries()
	if err != nil {
		t.Fatalf("ListWeeklySummaries: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Reflection != "revised" {
		t.Fatalf("summaries = %+v, want single revised entry", summaries)
	}

	var invalid InvalidWeekError
	if _, err := svc.SaveWeeklySummary(0, "nope"); !errors.As(err, &invalid) {
		t.Fatalf("week 0 err = %v, want InvalidWeekError", err)
	}
}

func TestSetBaseMondaySnapsToMonday(t *testing.T) {
	svc := newTestService(t)

	stored, snapped, err := svc.SetBaseMonday("2025-02-05")
	if err != nil {
		t.Fatalf("SetBaseMonday: %v", err)
	}
	if !snapped || stored != "2025-02-03" {
		t.Fatalf("stored = %s (snapped=%v), want 2025-02-03 snapped", stored, snapped)
	}

	stored, snapped, err = svc.SetBaseMonday("2025-02-03")
	if err != nil {
		t.Fatalf("SetBaseMonday: %v", err)
	}
	if snapped || stored != "2025-02-03" {
		t.Fatalf("a Monday must be stored unchanged, got %s (snapped=%v)", stored, snapped)
	}

	if _, _, err := svc.SetBaseMonday("not-a-date"); err == nil {
		t.Fatalf("expected error for malformed epoch")
	}
}

func TestStatusReport(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddGoal("Run a 10k", ""); err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if _, err := svc.AddTask("2025-02-03", "train"); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := svc.SaveWeeklySummary(1, "week one"); err != nil {
		t.Fatalf("SaveWeeklySummary: %v", err)
	}

	report, err := svc.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if report.CurrentWeek != 1 {
		t.Fatalf("current week = %d, want 1", report.CurrentWeek)
	}
	if !report.HasCurrentScore || report.CurrentWeekScore != 100 {
		t.Fatalf("current score = %d (has=%v), want 100", report.CurrentWeekScore, report.HasCurrentScore)
	}
	if report.GoalCount != 1 || len(report.Weeks) != 1 {
		t.Fatalf("report = %+v, want one goal and one saved week", report)
	}
	if report.Weeks[0].Score != 100 || report.OverallAverage != 100 {
		t.Fatalf("week scores = %+v avg %d, want 100/100", report.Weeks, report.OverallAverage)
	}
	if report.WeekStart != "2025-02-03" || report.WeekEnd != "2025-02-09" {
		t.Fatalf("week range = %s → %s", report.WeekStart, report.WeekEnd)
	}
}
