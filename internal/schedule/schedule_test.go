package schedule

import (
	"testing"
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %s: %v", s, err)
	}
	return d
}

func TestIsDueDailyAndWeeklyAlwaysDue(t *testing.T) {
	led := ledger.New()
	daily := models.Routine{ID: "d", Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 2}}
	weekly := models.Routine{ID: "w", Frequency: models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: 3}}

	for _, s := range []string{"2026-01-05", "2026-01-10", "2026-06-17"} {
		if !IsDue(daily, day(t, s), led) {
			t.Errorf("daily routine not due on %s", s)
		}
		if !IsDue(weekly, day(t, s), led) {
			t.Errorf("weekly routine not due on %s", s)
		}
	}
}

func TestIsDueWeekdays(t *testing.T) {
	led := ledger.New()
	r := models.Routine{ID: "r", Frequency: models.Frequency{Type: models.FrequencyWeekdays, Weekdays: []int{1, 3, 5}}}

	// 2026-01-05 is a Monday.
	cases := map[string]bool{
		"2026-01-05": true,  // Mon
		"2026-01-06": false, // Tue
		"2026-01-07": true,  // Wed
		"2026-01-08": false, // Thu
		"2026-01-09": true,  // Fri
		"2026-01-10": false, // Sat
		"2026-01-11": false, // Sun
	}
	for s, want := range cases {
		if got := IsDue(r, day(t, s), led); got != want {
			t.Errorf("IsDue(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestIsDuePausedNeverDue(t *testing.T) {
	led := ledger.New()
	r := models.Routine{ID: "r", Paused: true, Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1}}
	if IsDue(r, day(t, "2026-01-05"), led) {
		t.Error("paused routine must never be due")
	}
}

func TestIsDueIntervalBootstrap(t *testing.T) {
	led := ledger.New()
	r := models.Routine{ID: "r", Frequency: models.Frequency{Type: models.FrequencyInterval, IntervalDays: 45}}

	for _, s := range []string{"2026-01-01", "2026-03-15", "2026-11-30"} {
		if !IsDue(r, day(t, s), led) {
			t.Errorf("interval routine with no history should be due on %s", s)
		}
	}
}

func TestIsDueIntervalCadence(t *testing.T) {
	led := ledger.New()
	led.SetCount("r", "2026-02-01", 1)
	r := models.Routine{ID: "r", Frequency: models.Frequency{Type: models.FrequencyInterval, IntervalDays: 10}}

	if IsDue(r, day(t, "2026-02-10"), led) {
		t.Error("day 9 after completion should not be due")
	}
	if !IsDue(r, day(t, "2026-02-11"), led) {
		t.Error("day 10 after completion should be due")
	}
	if !IsDue(r, day(t, "2026-02-20"), led) {
		t.Error("later dates stay due until completed")
	}
}

func TestIsDueIntervalUsesLatestCompletion(t *testing.T) {
	led := ledger.New()
	led.SetCount("r", "2026-01-01", 1)
	led.SetCount("r", "2026-02-01", 1)
	r := models.Routine{ID: "r", Frequency: models.Frequency{Type: models.FrequencyInterval, IntervalDays: 10}}

	// Eligible from the most recent completion, not the first.
	if IsDue(r, day(t, "2026-01-15"), led) {
		t.Error("date before latest completion + interval should not be due")
	}
	if !IsDue(r, day(t, "2026-02-11"), led) {
		t.Error("latest completion + interval should be due")
	}
}

func TestIsDueIntervalPreferredDayGrace(t *testing.T) {
	led := ledger.New()
	// Last completion Sunday 2026-02-01. Interval 10 puts the earliest
	// eligible date on Wednesday 2026-02-11; the preferred Saturday slot is
	// 2026-02-14.
	led.SetCount("r", "2026-02-01", 1)
	r := models.Routine{
		ID:            "r",
		Frequency:     models.Frequency{Type: models.FrequencyInterval, IntervalDays: 10},
		PreferredDays: []int{6},
	}

	for _, s := range []string{"2026-02-11", "2026-02-12", "2026-02-13"} {
		if IsDue(r, day(t, s), led) {
			t.Errorf("%s is before the preferred Saturday slot, should not be due", s)
		}
	}
	if !IsDue(r, day(t, "2026-02-14"), led) {
		t.Error("preferred Saturday slot should be due")
	}
	// Once the slot has passed uncompleted, due every day.
	for _, s := range []string{"2026-02-15", "2026-02-16", "2026-02-20"} {
		if !IsDue(r, day(t, s), led) {
			t.Errorf("%s is after a missed preferred slot, should be due", s)
		}
	}
	// Still not due before the eligible window regardless of weekday.
	if IsDue(r, day(t, "2026-02-07"), led) {
		t.Error("preferred day inside the cadence window should not be due")
	}
}

func TestIsDueUnknownVariantNeverDue(t *testing.T) {
	led := ledger.New()
	r := models.Routine{ID: "r", Frequency: models.Frequency{Type: "lunar"}}
	if IsDue(r, day(t, "2026-01-05"), led) {
		t.Error("unknown frequency variant must evaluate as not due")
	}
}

func TestMaxCount(t *testing.T) {
	cases := []struct {
		freq models.Frequency
		want int
	}{
		{models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 3}, 3},
		{models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: 4}, 1},
		{models.Frequency{Type: models.FrequencyWeekdays, Weekdays: []int{1}}, 1},
		{models.Frequency{Type: models.FrequencyInterval, IntervalDays: 45}, 1},
		{models.Frequency{Type: "lunar"}, 1},
	}
	for _, c := range cases {
		if got := MaxCount(models.Routine{Frequency: c.freq}); got != c.want {
			t.Errorf("MaxCount(%s) = %d, want %d", c.freq.Type, got, c.want)
		}
	}
}

func TestExpectedCount(t *testing.T) {
	mon := day(t, "2026-01-05")
	tue := day(t, "2026-01-06")

	if got := ExpectedCount(models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 2}, mon); got != 2 {
		t.Errorf("daily expected = %v, want 2", got)
	}
	if got := ExpectedCount(models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: 3}, mon); got != 3.0/7 {
		t.Errorf("weekly expected = %v, want 3/7", got)
	}
	wd := models.Frequency{Type: models.FrequencyWeekdays, Weekdays: []int{1}}
	if got := ExpectedCount(wd, mon); got != 1 {
		t.Errorf("weekdays expected on listed day = %v, want 1", got)
	}
	if got := ExpectedCount(wd, tue); got != 0 {
		t.Errorf("weekdays expected on other day = %v, want 0", got)
	}
	if got := ExpectedCount(models.Frequency{Type: models.FrequencyInterval, IntervalDays: 4}, mon); got != 0.25 {
		t.Errorf("interval expected = %v, want 0.25", got)
	}
	if got := ExpectedCount(models.Frequency{Type: "lunar"}, mon); got != 0 {
		t.Errorf("unknown variant expected = %v, want 0", got)
	}
}

func TestDueRoutines(t *testing.T) {
	led := ledger.New()
	routines := []models.Routine{
		{ID: "a", Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1}},
		{ID: "b", Frequency: models.Frequency{Type: models.FrequencyWeekdays, Weekdays: []int{6}}},
		{ID: "c", Paused: true, Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1}},
	}
	due := DueRoutines(routines, day(t, "2026-01-05"), led) // Monday
	if len(due) != 1 || due[0].ID != "a" {
		t.Errorf("due on Monday = %v, want just a", due)
	}
	due = DueRoutines(routines, day(t, "2026-01-10"), led) // Saturday
	if len(due) != 2 {
		t.Errorf("due on Saturday = %v, want a and b", due)
	}
}

func TestNextDueLabels(t *testing.T) {
	led := ledger.New()
	today := day(t, "2026-01-05") // Monday

	daily := models.Routine{ID: "d", Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1}}
	if nd := NextDueOn(daily, today, led); nd.Label != "Today" || !nd.Urgent {
		t.Errorf("daily next due = %+v", nd)
	}

	wednesdays := models.Routine{ID: "w", Frequency: models.Frequency{Type: models.FrequencyWeekdays, Weekdays: []int{3}}}
	if nd := NextDueOn(wednesdays, today, led); nd.Label != "Wednesday" {
		t.Errorf("weekdays next due = %+v, want Wednesday", nd)
	}

	tuesdays := models.Routine{ID: "t", Frequency: models.Frequency{Type: models.FrequencyWeekdays, Weekdays: []int{2}}}
	if nd := NextDueOn(tuesdays, today, led); nd.Label != "Tomorrow" {
		t.Errorf("weekdays next due = %+v, want Tomorrow", nd)
	}

	paused := models.Routine{ID: "p", Paused: true, Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1}}
	if nd := NextDueOn(paused, today, led); nd.Label != "paused" || nd.Urgent {
		t.Errorf("paused next due = %+v", nd)
	}
}

func TestNextDueIntervalVariants(t *testing.T) {
	today := day(t, "2026-01-05") // Monday

	// No history: due now.
	led := ledger.New()
	r := models.Routine{ID: "r", Frequency: models.Frequency{Type: models.FrequencyInterval, IntervalDays: 45}}
	if nd := NextDueOn(r, today, led); nd.Label != "Today" || !nd.Urgent {
		t.Errorf("bootstrap interval next due = %+v", nd)
	}

	// Completed yesterday, interval 45: far-future date label.
	led.SetCount("r", "2026-01-04", 1)
	nd := NextDueOn(r, today, led)
	if nd.Label != "Feb 18" || nd.Urgent {
		t.Errorf("far interval next due = %+v, want Feb 18 not urgent", nd)
	}

	// Already past the eligible window: due now.
	led2 := ledger.New()
	led2.SetCount("r", "2025-11-01", 1)
	if nd := NextDueOn(r, today, led2); nd.Label != "Due now" || !nd.Urgent {
		t.Errorf("overdue interval next due = %+v", nd)
	}
}
