package storage

// Goal is one long-term objective for the 12-week cycle.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// DailyTask is a single logged task within a day. TaskID is the task's name
// and its identity within the owning entry.
type DailyTask struct {
	TaskID string `json:"taskId"`
	Tier   string `json:"tier"`
	Notes  string `json:"notes,omitempty"`
}

// DailyEntry holds one day's tasks. Date is the natural key and must be
// zero-padded YYYY-MM-DD; numeric range comparisons depend on that form.
type DailyEntry struct {
	Date  string      `json:"date"`
	Tasks []DailyTask `json:"tasks"`
}

// WeeklySummary is the saved reflection for one week. Score is a snapshot
// taken at save time; display surfaces recompute the live score from daily
// entries and never read this field back.
type WeeklySummary struct {
	WeekNumber int    `json:"weekNumber"`
	Score      int    `json:"score"`
	Reflection string `json:"reflection,omitempty"`
}
