package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/gamify"
	"github.com/pellegrino/hamster/internal/schedule"
	"github.com/pellegrino/hamster/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	dateStr := calendar.DayString(m.day)
	dayStats := stats.ForDate(m.routines, m.led, m.day)
	streak := stats.Streak(m.routines, m.led, m.day)
	level := gamify.Level(m.state.XP)

	header := headerStyle.Render(fmt.Sprintf("🐹 %s %s", calendar.DayFull(calendar.WeekdayOf(m.day)), dateStr))
	summary := statsStyle.Render(fmt.Sprintf(
		"%d/%d done (%d%%) · streak %d · level %d (%d XP)",
		dayStats.Completed, dayStats.Total, dayStats.Percentage,
		streak, level, m.state.XP,
	))

	var rows []string
	if len(m.due) == 0 {
		rows = append(rows, statsStyle.Render("Nothing due. Enjoy the rest day!"))
	}
	for i, r := range m.due {
		maxCount := schedule.MaxCount(r)
		count := m.led.Count(r.ID, dateStr)

		mark := "[ ]"
		style := pendingStyle
		switch {
		case count >= maxCount:
			mark = "[x]"
			style = doneStyle
		case count > 0:
			mark = fmt.Sprintf("[%d/%d]", count, maxCount)
		}

		prefix := "  "
		line := fmt.Sprintf("%s %s", mark, r.Name)
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		} else {
			line = style.Render(line)
		}
		line += " " + categoryStyle.Render(r.Category)
		rows = append(rows, prefix+line)
	}

	sections := []string{header, summary, "", strings.Join(rows, "\n")}
	if len(m.flash) > 0 {
		sections = append(sections, "", flashStyle.Render(strings.Join(m.flash, "  ")))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
