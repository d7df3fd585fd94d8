// Package gamify derives XP, levels and achievements from completion
// history. State is always passed in and returned, never held in a package
// global; the per-day perfect-day bonus marker lives in external storage so
// it survives restarts.
package gamify

import (
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
	"github.com/pellegrino/hamster/internal/schedule"
)

// XP values.
const (
	XPPerCompletion   = 10
	XPPerfectDayBonus = 25
	XPStreakMilestone = 100
	XPPerLevel        = 500
	MaxLevel          = 50
)

// StreakMilestones are the streak lengths that pay an XP bonus when newly
// crossed.
var StreakMilestones = []int{7, 30, 100}

// Level derives the level for an XP total, capped at MaxLevel.
func Level(xp int) int {
	level := xp/XPPerLevel + 1
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// XPForNextLevel returns the XP total at which the given level is left behind.
func XPForNextLevel(level int) int {
	return level * XPPerLevel
}

// XPProgressInLevel returns how far into the current level an XP total is.
func XPProgressInLevel(xp int) int {
	return xp % XPPerLevel
}

// Definitions is the static achievement catalog. An Achievement record is one
// of these plus an unlock timestamp.
var Definitions = []models.Achievement{
	{ID: "first_completion", Name: "First Step", Description: "Complete any routine for the first time", Icon: "Footprints"},
	{ID: "perfect_day", Name: "Perfect Day", Description: "Complete 100% of routines in a single day", Icon: "Star"},
	{ID: "week_streak", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "Flame"},
	{ID: "perfect_week", Name: "Perfect Week", Description: "7 consecutive days at 100% completion", Icon: "Trophy"},
	{ID: "month_streak", Name: "Month Master", Description: "Maintain a 30-day streak", Icon: "Crown"},
	{ID: "century", Name: "Century", Description: "Maintain a 100-day streak", Icon: "Gem"},
	{ID: "supplement_master", Name: "Supplement Master", Description: "Complete all Supplements for 30 days", Icon: "Pill"},
	{ID: "fitness_fanatic", Name: "Fitness Fanatic", Description: "Complete 20 Fitness routines", Icon: "Dumbbell"},
	{ID: "skincare_queen", Name: "Glow Up", Description: "Complete all Skincare routines for 30 days", Icon: "Sparkles"},
}

// Definition looks up a catalog entry by id.
func Definition(id string) (models.Achievement, bool) {
	for _, d := range Definitions {
		if d.ID == id {
			return d, true
		}
	}
	return models.Achievement{}, false
}

// CheckContext carries the snapshots the achievement predicates evaluate
// against.
type CheckContext struct {
	Routines        []models.Routine
	Ledger          *ledger.Ledger
	Streak          int
	TodayPercentage int
	Today           time.Time
}

// NewlyUnlocked evaluates every achievement predicate against the context and
// returns the ids that now qualify, skipping any already unlocked.
func NewlyUnlocked(alreadyUnlocked []string, ctx CheckContext) []string {
	unlocked := make(map[string]bool, len(alreadyUnlocked))
	for _, id := range alreadyUnlocked {
		unlocked[id] = true
	}

	var newly []string
	check := func(id string, condition bool) {
		if !unlocked[id] && condition {
			newly = append(newly, id)
		}
	}

	check("first_completion", ctx.Ledger.Len() > 0)
	check("perfect_day", ctx.TodayPercentage == 100)
	check("week_streak", ctx.Streak >= 7)
	check("month_streak", ctx.Streak >= 30)
	check("century", ctx.Streak >= 100)

	if !unlocked["perfect_week"] {
		check("perfect_week", perfectWindow(ctx.Routines, ctx.Ledger, ctx.Today, 7))
	}
	if !unlocked["supplement_master"] {
		check("supplement_master", categoryPerfectWindow(ctx.Routines, ctx.Ledger, ctx.Today, "Supplements", 30))
	}
	if !unlocked["skincare_queen"] {
		check("skincare_queen", categoryPerfectWindow(ctx.Routines, ctx.Ledger, ctx.Today, "Skincare", 30))
	}
	if !unlocked["fitness_fanatic"] {
		check("fitness_fanatic", categoryCompletionRecords(ctx.Routines, ctx.Ledger, "Fitness") >= 20)
	}

	return newly
}

// perfectWindow reports whether every day in the trailing window had all its
// due routines fully completed. Days with nothing due are skipped rather
// than failed.
func perfectWindow(routines []models.Routine, led *ledger.Ledger, today time.Time, days int) bool {
	for i := 0; i < days; i++ {
		date := calendar.AddDays(today, -i)
		due := schedule.DueRoutines(routines, date, led)
		if len(due) == 0 {
			continue
		}
		if !allComplete(due, led, calendar.DayString(date)) {
			return false
		}
	}
	return true
}

// categoryPerfectWindow is perfectWindow restricted to one category, and
// additionally requires the category to contain at least one routine so an
// empty category cannot qualify trivially.
func categoryPerfectWindow(routines []models.Routine, led *ledger.Ledger, today time.Time, category string, days int) bool {
	var scoped []models.Routine
	for _, r := range routines {
		if r.Category == category {
			scoped = append(scoped, r)
		}
	}
	if len(scoped) == 0 {
		return false
	}

	for _, dateStr := range calendar.DaysInRange(calendar.AddDays(today, -(days-1)), today) {
		date, err := calendar.ParseDay(dateStr)
		if err != nil {
			return false
		}
		due := schedule.DueRoutines(scoped, date, led)
		if !allComplete(due, led, dateStr) {
			return false
		}
	}
	return true
}

// categoryCompletionRecords counts positive completion records belonging to
// routines of a category. Records are counted, not summed: two toggles on one
// day are still one record.
func categoryCompletionRecords(routines []models.Routine, led *ledger.Ledger, category string) int {
	ids := make(map[string]bool)
	for _, r := range routines {
		if r.Category == category {
			ids[r.ID] = true
		}
	}

	n := 0
	for _, c := range led.Completions() {
		if ids[c.RoutineID] {
			n++
		}
	}
	return n
}

func allComplete(due []models.Routine, led *ledger.Ledger, dateStr string) bool {
	for _, r := range due {
		if led.Count(r.ID, dateStr) < schedule.MaxCount(r) {
			return false
		}
	}
	return true
}
