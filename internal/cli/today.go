package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/gamify"
	"github.com/pellegrino/hamster/internal/schedule"
	"github.com/pellegrino/hamster/internal/stats"
)

type TodayCmd struct {
	Date string `short:"d" help:"Show a different day (YYYY-MM-DD)." default:""`
}

func (c *TodayCmd) Run(ctx *Context) error {
	day := calendar.Today()
	if c.Date != "" {
		var err error
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
	state, err := ctx.Store.GetGamification()
	if err != nil {
		return err
	}

	due := schedule.DueRoutines(routines, day, led)
	dayStats := stats.ForDate(routines, led, day)
	streak := stats.Streak(routines, led, day)

	fmt.Printf("%s %s\n", calendar.DayFull(calendar.WeekdayOf(day)), dateStr)
	fmt.Printf("%d/%d done (%d%%) · streak %d · level %d (%d XP)\n\n",
		dayStats.Completed, dayStats.Total, dayStats.Percentage,
		streak, gamify.Level(state.XP), state.XP)

	if len(due) == 0 {
		fmt.Println("Nothing due today. Enjoy the rest day!")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, r := range due {
		maxCount := schedule.MaxCount(r)
		count := led.Count(r.ID, dateStr)
		mark := "[ ]"
		switch {
		case count >= maxCount:
			mark = "[x]"
		case count > 0:
			mark = fmt.Sprintf("[%d/%d]", count, maxCount)
		}
		timeCol := ""
		if r.TimeRange != nil {
			timeCol = r.TimeRange.Start
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, r.Name, r.Category, timeCol)
	}
	return w.Flush()
}
