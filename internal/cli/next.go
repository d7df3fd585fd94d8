package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/schedule"
)

var urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

type NextCmd struct{}

func (c *NextCmd) Run(ctx *Context) error {
	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	led, err := ctx.LoadLedger()
	if err != nil {
		return err
	}

	today := calendar.Today()

	type entry struct {
		name   string
		label  string
		urgent bool
	}
	var entries []entry
	for _, r := range routines {
		if r.Paused {
			continue
		}
		next := schedule.NextDueOn(r, today, led)
		entries = append(entries, entry{name: r.Name, label: next.Label, urgent: next.Urgent})
	}
	if len(entries) == 0 {
		fmt.Println("No routines. Add one with 'hamster routine add'.")
		return nil
	}

	// Urgent first, then stable by name
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].urgent != entries[j].urgent {
			return entries[i].urgent
		}
		return entries[i].name < entries[j].name
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		label := e.label
		if e.urgent {
			label = urgentStyle.Render(label)
		}
		fmt.Fprintf(w, "%s\t%s\n", e.name, label)
	}
	return w.Flush()
}
