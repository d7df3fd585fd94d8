package notifier

import (
	"fmt"
	"time"

	"github.com/pellegrino/hamster/internal/constants"
	"github.com/pellegrino/hamster/internal/models"
)

// Reminder is a notification to deliver at a point during the day.
type Reminder struct {
	Text   string
	FireAt time.Time
}

// BuildReminders computes the remaining reminders for today: one per due
// routine with a start time still ahead of now, plus a streak-at-risk
// nudge in the evening when the day is not fully complete.
func BuildReminders(due []models.Routine, completed int, now time.Time) []Reminder {
	var reminders []Reminder

	for _, r := range due {
		if r.TimeRange == nil || r.TimeRange.Start == "" {
			continue
		}
		start, err := time.Parse(constants.TimeFormat, r.TimeRange.Start)
		if err != nil {
			continue
		}
		fireAt := time.Date(now.Year(), now.Month(), now.Day(),
			start.Hour(), start.Minute(), 0, 0, now.Location())
		if !fireAt.After(now) {
			continue
		}
		reminders = append(reminders, Reminder{
			Text:   fmt.Sprintf("Time for: %s", r.Name),
			FireAt: fireAt,
		})
	}

	if completed < len(due) {
		riskAt := time.Date(now.Year(), now.Month(), now.Day(),
			constants.StreakRiskHour, 0, 0, 0, now.Location())
		if riskAt.After(now) {
			remaining := len(due) - completed
			plural := ""
			if remaining != 1 {
				plural = "s"
			}
			reminders = append(reminders, Reminder{
				Text:   fmt.Sprintf("You still have %d routine%s to complete today!", remaining, plural),
				FireAt: riskAt,
			})
		}
	}

	return reminders
}
