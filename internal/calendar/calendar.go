// Package calendar provides the date arithmetic shared by the due-date
// evaluator, statistics and views. All dates are local calendar dates
// anchored to midnight; the canonical wire form is a YYYY-MM-DD day string.
package calendar

import (
	"time"

	"github.com/pellegrino/hamster/internal/constants"
)

// DayString formats a date as its canonical YYYY-MM-DD day string.
func DayString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD day string to local midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// Today returns the current local calendar date at midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// AddDays returns the date n calendar days after t. n may be negative.
// AddDate handles month and year rollover.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// WeekdayOf returns the day of week with Monday=1 .. Sunday=7. The weekdays
// and preferred-days fields throughout the data model use this numbering, not
// Go's Sunday=0 convention.
func WeekdayOf(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DaysInRange returns the day strings from start to end, inclusive on both
// ends. An end before start yields an empty slice.
func DaysInRange(start, end time.Time) []string {
	var days []string
	endStr := DayString(end)
	for cur := start; DayString(cur) <= endStr; cur = AddDays(cur, 1) {
		days = append(days, DayString(cur))
	}
	return days
}

// WeekStart returns the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	return AddDays(t, 1-WeekdayOf(t))
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}

// YearStart returns January 1st of t's year.
func YearStart(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.Local)
}

// WeeksOfYear returns the Sunday-aligned week buckets covering the given
// year, for heatmap column layout. The first week starts on the Sunday on or
// before January 1st; enumeration stops once a week begins in the following
// year.
func WeeksOfYear(year int) [][]time.Time {
	var weeks [][]time.Time
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	cur := AddDays(start, -int(start.Weekday()))

	for cur.Year() <= year {
		week := make([]time.Time, 0, 7)
		for i := 0; i < 7; i++ {
			week = append(week, cur)
			cur = AddDays(cur, 1)
		}
		weeks = append(weeks, week)
		if cur.Year() > year {
			break
		}
	}

	return weeks
}

var monthShort = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var dayShort = []string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var dayFull = []string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MonthShort returns the three-letter name of a month (1=January).
func MonthShort(month time.Month) string {
	return monthShort[month-1]
}

// DayShort returns the three-letter name of a weekday (1=Monday .. 7=Sunday).
func DayShort(weekday int) string {
	return dayShort[weekday]
}

// DayFull returns the full name of a weekday (1=Monday .. 7=Sunday).
func DayFull(weekday int) string {
	return dayFull[weekday]
}
