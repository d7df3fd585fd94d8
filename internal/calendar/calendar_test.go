package calendar

import (
	"testing"
	"time"
)

func TestDayStringRoundTrip(t *testing.T) {
	d, err := ParseDay("2026-03-07")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if got := DayString(d); got != "2026-03-07" {
		t.Errorf("round trip gave %s, want 2026-03-07", got)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("expected local midnight, got %v", d)
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	if _, err := ParseDay("07/03/2026"); err == nil {
		t.Error("expected error for non-canonical date format")
	}
}

func TestAddDaysRollsOverMonthAndYear(t *testing.T) {
	d, _ := ParseDay("2025-12-30")
	if got := DayString(AddDays(d, 3)); got != "2026-01-02" {
		t.Errorf("AddDays over year boundary gave %s, want 2026-01-02", got)
	}
	if got := DayString(AddDays(d, -30)); got != "2025-11-30" {
		t.Errorf("AddDays backwards gave %s, want 2025-11-30", got)
	}
}

func TestWeekdayOfMondayBasedNumbering(t *testing.T) {
	// 2026-01-05 is a Monday, 2026-01-11 a Sunday.
	cases := []struct {
		day  string
		want int
	}{
		{"2026-01-05", 1},
		{"2026-01-07", 3},
		{"2026-01-10", 6},
		{"2026-01-11", 7},
	}
	for _, c := range cases {
		d, _ := ParseDay(c.day)
		if got := WeekdayOf(d); got != c.want {
			t.Errorf("WeekdayOf(%s) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestDaysInRangeInclusive(t *testing.T) {
	start, _ := ParseDay("2026-02-27")
	end, _ := ParseDay("2026-03-02")
	got := DaysInRange(start, end)
	want := []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	if len(got) != len(want) {
		t.Fatalf("got %d days, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d = %s, want %s", i, got[i], want[i])
		}
	}

	if days := DaysInRange(end, start); len(days) != 0 {
		t.Errorf("reversed range should be empty, got %v", days)
	}

	if days := DaysInRange(start, start); len(days) != 1 || days[0] != "2026-02-27" {
		t.Errorf("single-day range gave %v", days)
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	for _, day := range []string{"2026-01-05", "2026-01-08", "2026-01-11"} {
		d, _ := ParseDay(day)
		ws := WeekStart(d)
		if got := DayString(ws); got != "2026-01-05" {
			t.Errorf("WeekStart(%s) = %s, want 2026-01-05", day, got)
		}
	}
}

func TestMonthAndYearStart(t *testing.T) {
	d, _ := ParseDay("2026-08-29")
	if got := DayString(MonthStart(d)); got != "2026-08-01" {
		t.Errorf("MonthStart = %s, want 2026-08-01", got)
	}
	if got := DayString(YearStart(d)); got != "2026-01-01" {
		t.Errorf("YearStart = %s, want 2026-01-01", got)
	}
}

func TestWeeksOfYear(t *testing.T) {
	weeks := WeeksOfYear(2026)

	if len(weeks) < 52 || len(weeks) > 54 {
		t.Fatalf("unexpected week count: %d", len(weeks))
	}
	for i, w := range weeks {
		if len(w) != 7 {
			t.Fatalf("week %d has %d days", i, len(w))
		}
		if w[0].Weekday() != time.Sunday {
			t.Errorf("week %d does not start on Sunday: %v", i, w[0])
		}
	}

	// Jan 1 2026 is a Thursday, so the first bucket starts the prior Sunday.
	if got := DayString(weeks[0][0]); got != "2025-12-28" {
		t.Errorf("first week starts %s, want 2025-12-28", got)
	}

	// Every day of the year appears exactly once.
	seen := make(map[string]bool)
	for _, w := range weeks {
		for _, d := range w {
			seen[DayString(d)] = true
		}
	}
	if !seen["2026-01-01"] || !seen["2026-12-31"] {
		t.Error("year boundaries missing from week buckets")
	}
}

func TestNameHelpers(t *testing.T) {
	if MonthShort(time.January) != "Jan" || MonthShort(time.December) != "Dec" {
		t.Error("MonthShort mismatch")
	}
	if DayShort(1) != "Mon" || DayShort(7) != "Sun" {
		t.Error("DayShort mismatch")
	}
	if DayFull(6) != "Saturday" {
		t.Error("DayFull mismatch")
	}
}
