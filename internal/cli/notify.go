package cli

import (
	"fmt"
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/notifier"
	"github.com/pellegrino/hamster/internal/schedule"
	"github.com/pellegrino/hamster/internal/stats"
)

type NotifyCmd struct {
	Text string `arg:"" optional:"" help:"Send this text instead of the computed reminders."`
	List bool   `help:"Print the remaining reminders for today without sending."`
}

func (c *NotifyCmd) Run(ctx *Context) error {
	n := notifier.New()

	if c.Text != "" {
		return n.Notify(c.Text)
	}

	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	led, err := ctx.LoadLedger()
	if err != nil {
		return err
	}

	now := time.Now()
	today := calendar.Today()
	due := schedule.DueRoutines(routines, today, led)
	dayStats := stats.ForDate(routines, led, today)

	reminders := notifier.BuildReminders(due, dayStats.Completed, now)
	if len(reminders) == 0 {
		fmt.Println("No reminders left for today.")
		return nil
	}

	if c.List {
		for _, r := range reminders {
			fmt.Printf("%s  %s\n", r.FireAt.Format("15:04"), r.Text)
		}
		return nil
	}

	// Deliver whatever is due right now; scheduling ahead is the tray's job
	sent := 0
	for _, r := range reminders {
		if r.FireAt.Sub(now) > time.Minute {
			continue
		}
		if err := n.Notify(r.Text); err != nil {
			return err
		}
		sent++
	}
	if sent == 0 {
		fmt.Println("No reminders due right now. Use --list to see the schedule.")
	}
	return nil
}
