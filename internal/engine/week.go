package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire form for every date in the system. Dates must stay
// zero-padded ISO form: range checks compare them as base-10 integers.
const DateLayout = "2006-01-02"

// DateRangeForWeek returns the inclusive 7-day date range covered by the
// 1-based weekNumber, relative to the baseMonday epoch. weekNumber is not
// validated here; callers that require a week >= 1 check first.
func DateRangeForWeek(weekNumber int, baseMonday string) (start string, end string, err error) {
	epoch, err := time.Parse(DateLayout, baseMonday)
	if err != nil {
		return "", "", fmt.Errorf("parse base monday %q: %w", baseMonday, err)
	}
	startDate := epoch.AddDate(0, 0, (weekNumber-1)*7)
	endDate := startDate.AddDate(0, 0, 6)
	return startDate.Format(DateLayout), endDate.Format(DateLayout), nil
}

// DateToComparableNumber converts "2025-02-10" to 20250210 for range
// containment checks. This is a lexical shortcut, not calendar math; it is
// correct only because zero-padded ISO dates sort identically both ways.
// Malformed input yields 0.
func DateToComparableNumber(dateStr string) int {
	n, _ := strconv.Atoi(strings.ReplaceAll(dateStr, "-", ""))
	return n
}

// ShiftDate adds deltaDays (positive or negative) to a date string, with
// month/year rollover handled by normal calendar normalization.
func ShiftDate(dateStr string, deltaDays int) (string, error) {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return d.AddDate(0, 0, deltaDays).Format(DateLayout), nil
}

// CurrentLocalDate renders "now" as a date string in the named civil
// timezone, independent of the host machine's zone. An unknown zone is a
// caller bug and fails loudly rather than falling back to UTC.
func CurrentLocalDate(timezoneName string) (string, error) {
	loc, err := time.LoadLocation(timezoneName)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezoneName, err)
	}
	return time.Now().In(loc).Format(DateLayout), nil
}

// NearestMonday snaps an arbitrary date to its week's Monday (Sunday snaps
// back six days). Used when the user picks a non-Monday epoch.
func NearestMonday(dateStr string) (string, error) {
	d, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	offset := 0
	switch wd := d.Weekday(); wd {
	case time.Monday:
		return dateStr, nil
	case time.Sunday:
		offset = -6
	default:
		offset = int(time.Monday) - int(wd)
	}
	return d.AddDate(0, 0, offset).Format(DateLayout), nil
}
