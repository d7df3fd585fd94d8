package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/stats"
)

type HeatmapCmd struct {
	Range string `arg:"" optional:"" help:"Range to show (week|month|year)." default:"month"`
}

var heatLevels = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // empty
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),  // low
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("40")), // full
}

var heatLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func (c *HeatmapCmd) Run(ctx *Context) error {
	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	led, err := ctx.LoadLedger()
	if err != nil {
		return err
	}

	today := calendar.Today()

	switch c.Range {
	case "week":
		start := calendar.WeekStart(today)
		values := stats.Heatmap(routines, led, start, today)
		renderRow(start, today, values)
	case "month":
		start := calendar.MonthStart(today)
		values := stats.Heatmap(routines, led, start, today)
		fmt.Println(heatLabelStyle.Render(calendar.MonthShort(today.Month()) + " " + fmt.Sprint(today.Year())))
		renderRow(start, today, values)
	case "year":
		start := calendar.YearStart(today)
		values := stats.Heatmap(routines, led, start, today)
		renderYear(today, values)
	default:
		return fmt.Errorf("invalid range %q (expected week, month, or year)", c.Range)
	}

	return nil
}

func heatCell(value float64, ok bool) string {
	if !ok {
		return heatLevels[0].Render("·")
	}
	idx := 0
	switch {
	case value >= 100:
		idx = 4
	case value >= 67:
		idx = 3
	case value >= 34:
		idx = 2
	case value > 0:
		idx = 1
	}
	return heatLevels[idx].Render("■")
}

func renderRow(start, end time.Time, values map[string]float64) {
	var cells, labels []string
	for day := start; !day.After(end); day = calendar.AddDays(day, 1) {
		v, ok := values[calendar.DayString(day)]
		cells = append(cells, heatCell(v, ok))
		labels = append(labels, fmt.Sprintf("%2d", day.Day()))
	}
	fmt.Println(heatLabelStyle.Render(strings.Join(labels, " ")))
	fmt.Println(" " + strings.Join(cells, "  "))
}

// renderYear draws a GitHub-style grid: one column per week, one row per
// weekday, Sunday first.
func renderYear(today time.Time, values map[string]float64) {
	weeks := calendar.WeeksOfYear(today.Year())
	todayStr := calendar.DayString(today)

	// Month labels across the top, one per column where the month changes
	var header strings.Builder
	lastMonth := ""
	for _, week := range weeks {
		label := "  "
		for _, day := range week {
			if day.Year() == today.Year() && day.Day() <= 7 {
				m := calendar.MonthShort(day.Month())
				if m != lastMonth {
					label = m[:2]
					lastMonth = m
				}
				break
			}
		}
		header.WriteString(label)
	}
	fmt.Println(heatLabelStyle.Render(header.String()))

	for row := 0; row < 7; row++ {
		var line strings.Builder
		for _, week := range weeks {
			day := week[row]
			dayStr := calendar.DayString(day)
			if day.Year() != today.Year() || dayStr > todayStr {
				line.WriteString("  ")
				continue
			}
			v, ok := values[dayStr]
			line.WriteString(heatCell(v, ok) + " ")
		}
		fmt.Println(line.String())
	}
}
