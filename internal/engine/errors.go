package engine

import (
	"errors"
	"fmt"
)

// ErrBlankTaskName is returned when a rename would leave a task with no
// name. Adding a task with a blank name is a silent no-op instead; the
// asymmetry is intentional product behavior.
var ErrBlankTaskName = errors.New("task name cannot be blank")

// InvalidWeekError indicates a caller passed a week number below 1 where a
// valid week is required. This is a caller bug, not user input.
type InvalidWeekError struct {
	WeekNumber int
}

func (e InvalidWeekError) Error() string {
	return fmt.Sprintf("week number must be >= 1, got %d", e.WeekNumber)
}
