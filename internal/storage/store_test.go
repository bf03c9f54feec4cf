package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	jsonStore, err := NewJSONStore(filepath.Join(dir, "scoreboard.json"))
	if err != nil {
		t.Fatalf("open json store: %v", err)
	}
	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "scoreboard.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() {
		_ = jsonStore.Close()
		_ = sqliteStore.Close()
	})
	return map[string]Store{"json": jsonStore, "sqlite": sqliteStore}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			goals := []Goal{{ID: "g1", Title: "Ship it", Description: "the big one"}}
			entries := []DailyEntry{{
				Date: "2025-02-03",
				Tasks: []DailyTask{
					{TaskID: "run", Tier: "S", Notes: "5k"},
					{TaskID: "read", Tier: "B"},
				},
			}}
			summaries := []WeeklySummary{{WeekNumber: 1, Score: 75, Reflection: "ok"}}

			if err := store.SaveGoals(goals); err != nil {
				t.Fatalf("SaveGoals: %v", err)
			}
			if err := store.SaveDailyEntries(entries); err != nil {
				t.Fatalf("SaveDailyEntries: %v", err)
			}
			if err := store.SaveWeeklySummaries(summaries); err != nil {
				t.Fatalf("SaveWeeklySummaries: %v", err)
			}

			gotGoals, err := store.LoadGoals()
			if err != nil {
				t.Fatalf("LoadGoals: %v", err)
			}
			if len(gotGoals) != 1 || gotGoals[0] != goals[0] {
				t.Fatalf("goals = %+v, want %+v", gotGoals, goals)
			}
			gotEntries, err := store.LoadDailyEntries()
			if err != nil {
				t.Fatalf("LoadDailyEntries: %v", err)
			}
			if len(gotEntries) != 1 || len(gotEntries[0].Tasks) != 2 || gotEntries[0].Tasks[0].Notes != "5k" {
				t.Fatalf("entries = %+v", gotEntries)
			}
			gotSummaries, err := store.LoadWeeklySummaries()
			if err != nil {
				t.Fatalf("LoadWeeklySummaries: %v", err)
			}
			if len(gotSummaries) != 1 || gotSummaries[0] != summaries[0] {
				t.Fatalf("summaries = %+v, want %+v", gotSummaries, summaries)
			}
		})
	}
}

func TestStoreDefaults(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			goals, err := store.LoadGoals()
			if err != nil {
				t.Fatalf("LoadGoals: %v", err)
			}
			if len(goals) != 0 {
				t.Fatalf("fresh store goals = %+v, want empty", goals)
			}

			baseMonday, err := store.BaseMonday()
			if err != nil {
				t.Fatalf("BaseMonday: %v", err)
			}
			if baseMonday != DefaultBaseMonday {
				t.Fatalf("base monday = %s, want default %s", baseMonday, DefaultBaseMonday)
			}
		})
	}
}

func TestStoreBaseMonday(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.SetBaseMonday("2025-03-03"); err != nil {
				t.Fatalf("SetBaseMonday: %v", err)
			}
			got, err := store.BaseMonday()
			if err != nil {
				t.Fatalf("BaseMonday: %v", err)
			}
			if got != "2025-03-03" {
				t.Fatalf("base monday = %s, want 2025-03-03", got)
			}
		})
	}
}

func TestStoreClear(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.SaveGoals([]Goal{{ID: "g1", Title: "x"}}); err != nil {
				t.Fatalf("SaveGoals: %v", err)
			}
			if err := store.SetBaseMonday("2025-03-03"); err != nil {
				t.Fatalf("SetBaseMonday: %v", err)
			}

			if err := store.Clear(); err != nil {
				t.Fatalf("Clear: %v", err)
			}

			goals, err := store.LoadGoals()
			if err != nil {
				t.Fatalf("LoadGoals: %v", err)
			}
			if len(goals) != 0 {
				t.Fatalf("goals after clear = %+v", goals)
			}
			baseMonday, err := store.BaseMonday()
			if err != nil {
				t.Fatalf("BaseMonday: %v", err)
			}
			if baseMonday != DefaultBaseMonday {
				t.Fatalf("base monday after clear = %s, want default", baseMonday)
			}
		})
	}
}

func TestJSONStoreMalformedFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoreboard.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write malformed file: %v", err)
	}

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("open store over malformed file: %v", err)
	}
	defer store.Close()

	goals, err := store.LoadGoals()
	if err != nil {
		t.Fatalf("LoadGoals: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("goals = %+v, want empty", goals)
	}
}

func TestJSONStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scoreboard.json")

	first, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := first.SaveGoals([]Goal{{ID: "g1", Title: "persist me"}}); err != nil {
		t.Fatalf("SaveGoals: %v", err)
	}
	_ = first.Close()

	second, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer second.Close()

	goals, err := second.LoadGoals()
	if err != nil {
		t.Fatalf("LoadGoals: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "persist me" {
		t.Fatalf("goals after reopen = %+v", goals)
	}
}

func TestFactory(t *testing.T) {
	dir := t.TempDir()

	store, err := NewByEngine("json", filepath.Join(dir, "a.json"))
	if err != nil {
		t.Fatalf("NewByEngine json: %v", err)
	}
	_ = store.Close()

	store, err = NewByEngine("SQLite", filepath.Join(dir, "a.db"))
	if err != nil {
		t.Fatalf("NewByEngine sqlite: %v", err)
	}
	_ = store.Close()

	if _, err := NewByEngine("redis", "x"); err == nil {
		t.Fatalf("expected error for unsupported engine")
	}
}
