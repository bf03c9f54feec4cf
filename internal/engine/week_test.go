package engine

import "testing"

func TestDateRangeForWeek(t *testing.T) {
	start, end, err := DateRangeForWeek(1, "2025-02-03")
	if err != nil {
		t.Fatalf("DateRangeForWeek: %v", err)
	}
	if start != "2025-02-03" || end != "2025-02-09" {
		t.Fatalf("week 1 range = %s → %s, want 2025-02-03 → 2025-02-09", start, end)
	}

	start, end, err = DateRangeForWeek(3, "2025-02-03")
	if err != nil {
		t.Fatalf("DateRangeForWeek: %v", err)
	}
	if start != "2025-02-17" || end != "2025-02-23" {
		t.Fatalf("week 3 range = %s → %s, want 2025-02-17 → 2025-02-23", start, end)
	}
}

func TestWeekRangesTileWithoutGaps(t *testing.T) {
	// Chosen so the tiling crosses a Feb->Mar boundary in a leap year.
	const epoch = "2024-02-05"
	for n := 1; n <= 12; n++ {
		_, end, err := DateRangeForWeek(n, epoch)
		if err != nil {
			t.Fatalf("DateRangeForWeek(%d): %v", n, err)
		}
		nextStart, _, err := DateRangeForWeek(n+1, epoch)
		if err != nil {
			t.Fatalf("DateRangeForWeek(%d): %v", n+1, err)
		}
		dayAfter, err := ShiftDate(end, 1)
		if err != nil {
			t.Fatalf("ShiftDate(%s, 1): %v", end, err)
		}
		if nextStart != dayAfter {
			t.Fatalf("week %d end %s and week %d start %s leave a gap", n, end, n+1, nextStart)
		}
	}
}

func TestDateToComparableNumber(t *testing.T) {
	if got := DateToComparableNumber("2025-02-10"); got != 20250210 {
		t.Fatalf("DateToComparableNumber = %d, want 20250210", got)
	}
	a := DateToComparableNumber("2025-02-03")
	b := DateToComparableNumber("2025-02-10")
	if a >= b {
		t.Fatalf("expected %d < %d", a, b)
	}
}

func TestShiftDateRollover(t *testing.T) {
	cases := []struct {
		date  string
		delta int
		want  string
	}{
		{"2025-01-31", 1, "2025-02-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2025-03-01", -1, "2025-02-28"},
		{"2025-02-10", -7, "2025-02-03"},
	}
	for _, tc := range cases {
		got, err := ShiftDate(tc.date, tc.delta)
		if err != nil {
			t.Fatalf("ShiftDate(%s, %d): %v", tc.date, tc.delta, err)
		}
		if got != tc.want {
			t.Fatalf("ShiftDate(%s, %d) = %s, want %s", tc.date, tc.delta, got, tc.want)
		}
	}

	if _, err := ShiftDate("02/10/2025", 1); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestCurrentLocalDate(t *testing.T) {
	got, err := CurrentLocalDate("America/Los_Angeles")
	if err != nil {
		t.Fatalf("CurrentLocalDate: %v", err)
	}
	if len(got) != 10 || got[4] != '-' || got[7] != '-' {
		t.Fatalf("CurrentLocalDate = %q, want YYYY-MM-DD", got)
	}

	if _, err := CurrentLocalDate("Mars/Olympus_Mons"); err == nil {
		t.Fatalf("expected error for invalid timezone, not a UTC fallback")
	}
}

func TestNearestMonday(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-02-03", "2025-02-03"}, // already Monday
		{"2025-02-05", "2025-02-03"}, // Wednesday snaps back
		{"2025-02-09", "2025-02-03"}, // Sunday snaps back six days
	}
	for _, tc := range cases {
		got, err := NearestMonday(tc.in)
		if err != nil {
			t.Fatalf("NearestMonday(%s): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NearestMonday(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
