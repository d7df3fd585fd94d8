package cli

import (
	"fmt"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/gamify"
	"github.com/pellegrino/hamster/internal/stats"
)

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	led, err := ctx.LoadLedger()
	if err != nil {
		return err
	}

	today := calendar.Today()
	streak := stats.Streak(routines, led, today)

	switch streak {
	case 0:
		fmt.Println("No active streak. Complete everything due today to start one!")
	case 1:
		fmt.Println("🔥 1 day streak")
	default:
		fmt.Printf("🔥 %d day streak\n", streak)
	}

	for _, m := range gamify.StreakMilestones {
		if streak < m {
			fmt.Printf("Next milestone: %d days (%d to go)\n", m, m-streak)
			break
		}
	}
	return nil
}
