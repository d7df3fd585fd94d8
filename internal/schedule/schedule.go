// Package schedule decides whether a routine is due on a given date and what
// its expected completion counts are. All functions are total: an
// unrecognized frequency variant evaluates to never due / expected 0 rather
// than an error, so one stale record cannot poison aggregate statistics.
package schedule

import (
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
)

// IsDue reports whether the routine is actionable on the given date. Interval
// routines consult the ledger for their most recent completion.
func IsDue(r models.Routine, date time.Time, led *ledger.Ledger) bool {
	if r.Paused {
		return false
	}

	switch r.Frequency.Type {
	case models.FrequencyDaily, models.FrequencyWeekly:
		// Every calendar day is a candidate; weekly is a soft target
		// spread across the week.
		return true
	case models.FrequencyWeekdays:
		return containsDay(r.Frequency.Weekdays, calendar.WeekdayOf(date))
	case models.FrequencyInterval:
		return intervalDue(r, date, led)
	default:
		return false
	}
}

func intervalDue(r models.Routine, date time.Time, led *ledger.Ledger) bool {
	last, ok := led.LastCompletion(r.ID)
	if !ok {
		// Never completed: due from day one.
		return true
	}
	lastDate, err := calendar.ParseDay(last)
	if err != nil {
		return false
	}

	earliest := calendar.AddDays(lastDate, r.Frequency.IntervalDays)
	dateStr := calendar.DayString(date)
	if dateStr < calendar.DayString(earliest) {
		return false
	}

	if len(r.PreferredDays) == 0 {
		return true
	}
	if containsDay(r.PreferredDays, calendar.WeekdayOf(date)) {
		return true
	}

	// Past the first preferred slot on/after the earliest eligible date the
	// routine escalates to due every day until completed. The slot day itself
	// is already covered by the preferred-day check above, hence strictly
	// after.
	return dateStr > calendar.DayString(firstPreferredOnOrAfter(earliest, r.PreferredDays))
}

// firstPreferredOnOrAfter walks forward from the given date to the first day
// whose weekday is preferred. Preferred days are weekdays, so at most a week
// of steps.
func firstPreferredOnOrAfter(from time.Time, preferred []int) time.Time {
	cur := from
	for i := 0; i < 7; i++ {
		if containsDay(preferred, calendar.WeekdayOf(cur)) {
			break
		}
		cur = calendar.AddDays(cur, 1)
	}
	return cur
}

// MaxCount returns the number of completions that fully satisfies the routine
// on a day it is due: timesPerDay for daily routines, 1 for everything else
// (including unmodeled variants).
func MaxCount(r models.Routine) int {
	if r.Frequency.Type == models.FrequencyDaily {
		return r.Frequency.TimesPerDay
	}
	return 1
}

// ExpectedCount returns the proportional expected completions for a single
// date, used only by statistics. Weekly and interval variants contribute
// fractional values; this intentionally is not cross-checked against IsDue's
// boolean due-ness, since unifying the two would change historical
// percentages.
func ExpectedCount(f models.Frequency, date time.Time) float64 {
	switch f.Type {
	case models.FrequencyDaily:
		return float64(f.TimesPerDay)
	case models.FrequencyWeekly:
		return float64(f.TimesPerWeek) / 7
	case models.FrequencyWeekdays:
		if containsDay(f.Weekdays, calendar.WeekdayOf(date)) {
			return 1
		}
		return 0
	case models.FrequencyInterval:
		return 1 / float64(f.IntervalDays)
	default:
		return 0
	}
}

// DueRoutines filters routines to those due on the given date.
func DueRoutines(routines []models.Routine, date time.Time, led *ledger.Ledger) []models.Routine {
	var due []models.Routine
	for _, r := range routines {
		if IsDue(r, date, led) {
			due = append(due, r)
		}
	}
	return due
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
