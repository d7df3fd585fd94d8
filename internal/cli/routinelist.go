package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/models"
	"github.com/pellegrino/hamster/internal/schedule"
)

type RoutineListCmd struct {
	Category string `short:"c" help:"Only show routines in this category."`
	All      bool   `short:"a" help:"Include paused routines."`
}

func (c *RoutineListCmd) Run(ctx *Context) error {
	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	led, err := ctx.LoadLedger()
	if err != nil {
		return err
	}

	var filtered []models.Routine
	for _, r := range routines {
		if c.Category != "" && !strings.EqualFold(r.Category, c.Category) {
			continue
		}
		if r.Paused && !c.All {
			continue
		}
		filtered = append(filtered, r)
	}

	if len(filtered) == 0 {
		fmt.Println("No routines. Add one with 'hamster routine add'.")
		return nil
	}

	// Group by category in the canonical order
	sort.SliceStable(filtered, func(i, j int) bool {
		return categoryRank(filtered[i].Category) < categoryRank(filtered[j].Category)
	})

	today := calendar.Today()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tFREQUENCY\tNEXT DUE\tTIME")
	for _, r := range filtered {
		next := schedule.NextDueOn(r, today, led)
		timeCol := ""
		if r.TimeRange != nil {
			timeCol = r.TimeRange.Start
			if r.TimeRange.End != "" {
				timeCol += "-" + r.TimeRange.End
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Category, FormatFrequency(r.Frequency), next.Label, timeCol)
	}
	return w.Flush()
}

func categoryRank(category string) int {
	for i, c := range models.Categories {
		if c == category {
			return i
		}
	}
	return len(models.Categories)
}
