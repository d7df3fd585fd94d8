package schedule

import (
	"fmt"
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
)

// NextDue describes when a routine next becomes actionable, for list views.
// Urgent marks routines that want attention now or imminently.
type NextDue struct {
	Label  string
	Urgent bool
}

// NextDueOn computes the next-due label for a routine relative to the given
// day (normally today).
func NextDueOn(r models.Routine, today time.Time, led *ledger.Ledger) NextDue {
	if r.Paused {
		return NextDue{Label: "paused"}
	}

	switch r.Frequency.Type {
	case models.FrequencyDaily:
		return NextDue{Label: "Today", Urgent: true}

	case models.FrequencyWeekly:
		return NextDue{Label: "This week"}

	case models.FrequencyWeekdays:
		if containsDay(r.Frequency.Weekdays, calendar.WeekdayOf(today)) {
			return NextDue{Label: "Today", Urgent: true}
		}
		for i := 1; i <= 7; i++ {
			next := calendar.AddDays(today, i)
			if containsDay(r.Frequency.Weekdays, calendar.WeekdayOf(next)) {
				if i == 1 {
					return NextDue{Label: "Tomorrow"}
				}
				return NextDue{Label: calendar.DayFull(calendar.WeekdayOf(next))}
			}
		}
		return NextDue{Label: "—"}

	case models.FrequencyInterval:
		return intervalNextDue(r, today, led)

	default:
		return NextDue{Label: "—"}
	}
}

func intervalNextDue(r models.Routine, today time.Time, led *ledger.Ledger) NextDue {
	last, ok := led.LastCompletion(r.ID)
	if !ok {
		return NextDue{Label: "Today", Urgent: true}
	}
	lastDate, err := calendar.ParseDay(last)
	if err != nil {
		return NextDue{Label: "—"}
	}

	earliest := calendar.AddDays(lastDate, r.Frequency.IntervalDays)
	firstVisible := earliest
	if len(r.PreferredDays) > 0 {
		firstVisible = firstPreferredOnOrAfter(earliest, r.PreferredDays)
	}

	todayStr := calendar.DayString(today)
	if todayStr >= calendar.DayString(firstVisible) {
		return NextDue{Label: "Due now", Urgent: true}
	}

	daysUntil := daysBetween(today, firstVisible)
	switch {
	case daysUntil == 1:
		return NextDue{Label: "Tomorrow"}
	case daysUntil < 7:
		return NextDue{Label: calendar.DayFull(calendar.WeekdayOf(firstVisible))}
	default:
		// Far out: show the date, urgent once the nominal cadence date is
		// within three days even if the preferred slot is later.
		label := fmt.Sprintf("%s %d", calendar.MonthShort(firstVisible.Month()), firstVisible.Day())
		return NextDue{Label: label, Urgent: daysBetween(today, earliest) <= 3}
	}
}

func daysBetween(from, to time.Time) int {
	n := 0
	for cur := from; calendar.DayString(cur) < calendar.DayString(to); cur = calendar.AddDays(cur, 1) {
		n++
	}
	return n
}
