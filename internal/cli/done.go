package cli

import (
	"fmt"
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/gamify"
	"github.com/pellegrino/hamster/internal/schedule"
	"github.com/pellegrino/hamster/internal/stats"
)

type DoneCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
	Date    string `short:"d" help:"Completion date (YYYY-MM-DD)." default:""`
	Count   int    `short:"n" help:"Set the completion count directly instead of cycling." default:"-1"`
}

func (c *DoneCmd) Run(ctx *Context) error {
	routine, err := ctx.FindRoutine(c.Routine)
	if err != nil {
		return err
	}

	day := calendar.Today()
	if c.Date != "" {
		day, err = calendar.ParseDay(c.Date)
		if err != nil {
			return err
		}
	}
	dateStr := calendar.DayString(day)

	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	led, err := ctx.LoadLedger()
	if err != nil {
		return err
	}

	prevStreak := stats.Streak(routines, led, day)
	maxCount := schedule.MaxCount(routine)
	prevCount := led.Count(routine.ID, dateStr)

	var newCount int
	if c.Count >= 0 {
		if c.Count > maxCount {
			return fmt.Errorf("count %d exceeds the routine's daily target of %d", c.Count, maxCount)
		}
		led.SetCount(routine.ID, dateStr, c.Count)
		newCount = c.Count
	} else {
		newCount = led.Toggle(routine.ID, dateStr, maxCount)
	}

	if err := ctx.SaveLedger(led); err != nil {
		return err
	}

	state, err := ctx.Store.GetGamification()
	if err != nil {
		return err
	}

	// The engine re-evaluates achievements after every mutation; XP flows
	// only on the incomplete-to-complete transition inside the event.
	engine := gamify.NewEngine(ctx.Store)
	ev := gamify.ToggleEvent{
		WasCompleted: prevCount < maxCount && newCount >= maxCount,
		PrevStreak:   prevStreak,
		Now:          time.Now(),
	}
	checkCtx := gamify.CheckContext{
		Routines:        routines,
		Ledger:          led,
		Streak:          stats.Streak(routines, led, day),
		TodayPercentage: stats.DailyPercentage(routines, led, day),
		Today:           day,
	}
	state, outcome, err := engine.ApplyToggle(state, ev, checkCtx)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveGamification(state); err != nil {
		return err
	}

	switch {
	case newCount == 0:
		fmt.Printf("Cleared %s for %s\n", routine.Name, dateStr)
	case maxCount > 1:
		fmt.Printf("%s: %d/%d on %s\n", routine.Name, newCount, maxCount, dateStr)
	default:
		fmt.Printf("Completed %s on %s\n", routine.Name, dateStr)
	}

	if outcome.XPAwarded > 0 {
		fmt.Printf("  +%d XP", outcome.XPAwarded)
		if outcome.PerfectDayBonus {
			fmt.Print(" (perfect day!)")
		}
		fmt.Println()
	}
	for _, m := range outcome.StreakMilestones {
		fmt.Printf("  🔥 %d-day streak!\n", m)
	}
	if outcome.LevelUp {
		fmt.Printf("  ⭐ Level up! You are now level %d\n", state.Level)
	}
	for _, a := range outcome.NewAchievements {
		fmt.Printf("  🏆 Achievement unlocked: %s (%s)\n", a.Name, a.Description)
	}

	return nil
}
