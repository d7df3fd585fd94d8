// Package stats derives daily percentages, today's totals, heatmap data and
// the streak from routine definitions plus the completion ledger. Everything
// here is a pure function over the snapshots passed in.
package stats

import (
	"math"
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/constants"
	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
	"github.com/pellegrino/hamster/internal/schedule"
)

// DayStats summarizes one day's progress.
type DayStats struct {
	Total      int // routines due
	Completed  int // due routines at or above their max count
	Percentage int
}

// completionRatio returns completed/expected for a date, with completions
// clamped to each routine's max so over-toggling never inflates the ratio.
// A day with nothing due reads as 0, not 100: no schedule means no progress,
// not vacuous success.
func completionRatio(routines []models.Routine, led *ledger.Ledger, date time.Time) (float64, bool) {
	due := schedule.DueRoutines(routines, date, led)
	if len(due) == 0 {
		return 0, false
	}

	dateStr := calendar.DayString(date)
	totalExpected := 0
	totalCompleted := 0
	for _, r := range due {
		max := schedule.MaxCount(r)
		totalExpected += max
		count := led.Count(r.ID, dateStr)
		if count > max {
			count = max
		}
		totalCompleted += count
	}
	if totalExpected == 0 {
		return 0, false
	}
	return float64(totalCompleted) / float64(totalExpected), true
}

// DailyPercentage returns the rounded 0..100 completion percentage for a date.
func DailyPercentage(routines []models.Routine, led *ledger.Ledger, date time.Time) int {
	ratio, _ := completionRatio(routines, led, date)
	return int(math.Round(ratio * 100))
}

// ForDate computes the day's totals: how many routines are due, how many are
// fully complete, and the rounded percentage.
func ForDate(routines []models.Routine, led *ledger.Ledger, date time.Time) DayStats {
	due := schedule.DueRoutines(routines, date, led)
	dateStr := calendar.DayString(date)

	s := DayStats{Total: len(due)}
	for _, r := range due {
		if led.Count(r.ID, dateStr) >= schedule.MaxCount(r) {
			s.Completed++
		}
	}
	s.Percentage = DailyPercentage(routines, led, date)
	return s
}

// Heatmap returns the per-date completion percentage map for the inclusive
// date range, keyed by day string. Values are unrounded percentages so
// adjacent heatmap cells keep their relative ordering.
func Heatmap(routines []models.Routine, led *ledger.Ledger, start, end time.Time) map[string]float64 {
	data := make(map[string]float64)
	for cur := start; calendar.DayString(cur) <= calendar.DayString(end); cur = calendar.AddDays(cur, 1) {
		ratio, _ := completionRatio(routines, led, cur)
		data[calendar.DayString(cur)] = ratio * 100
	}
	return data
}

// Streak counts consecutive fully-completed days walking backward from today.
// Days with nothing due are skipped without breaking or extending the run.
// Today itself is exempt while still incomplete: an in-progress day must not
// break an ongoing streak, but any earlier incomplete day ends the walk. The
// walk is bounded so it always terminates.
func Streak(routines []models.Routine, led *ledger.Ledger, today time.Time) int {
	if len(routines) == 0 {
		return 0
	}

	todayStr := calendar.DayString(today)
	streak := 0
	check := today

	for scanned := 0; scanned < constants.StreakScanLimit; scanned++ {
		dateStr := calendar.DayString(check)
		due := schedule.DueRoutines(routines, check, led)

		if len(due) == 0 {
			check = calendar.AddDays(check, -1)
			continue
		}

		allCompleted := true
		for _, r := range due {
			if led.Count(r.ID, dateStr) < schedule.MaxCount(r) {
				allCompleted = false
				break
			}
		}

		if allCompleted {
			streak++
			check = calendar.AddDays(check, -1)
			continue
		}

		if dateStr == todayStr {
			check = calendar.AddDays(check, -1)
			continue
		}
		break
	}

	return streak
}
