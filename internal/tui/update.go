package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/gamify"
	"github.com/pellegrino/hamster/internal/schedule"
	"github.com/pellegrino/hamster/internal/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.due)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if err := m.toggleSelected(); err != nil {
				m.flash = []string{fmt.Sprintf("Error: %v", err)}
			}
		case key.Matches(msg, m.keys.Prev):
			m.day = calendar.AddDays(m.day, -1)
			m.flash = nil
			if err := m.reload(); err != nil {
				m.flash = []string{fmt.Sprintf("Error: %v", err)}
			}
		case key.Matches(msg, m.keys.Next):
			m.day = calendar.AddDays(m.day, 1)
			m.flash = nil
			if err := m.reload(); err != nil {
				m.flash = []string{fmt.Sprintf("Error: %v", err)}
			}
		case key.Matches(msg, m.keys.Today):
			m.day = calendar.Today()
			m.flash = nil
			if err := m.reload(); err != nil {
				m.flash = []string{fmt.Sprintf("Error: %v", err)}
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *Model) toggleSelected() error {
	if m.cursor >= len(m.due) {
		return nil
	}
	routine := m.due[m.cursor]
	dateStr := calendar.DayString(m.day)
	maxCount := schedule.MaxCount(routine)

	prevStreak := stats.Streak(m.routines, m.led, m.day)
	prevCount := m.led.Count(routine.ID, dateStr)
	newCount := m.led.Toggle(routine.ID, dateStr, maxCount)

	if err := m.store.SaveCompletions(m.led.Completions()); err != nil {
		return err
	}

	m.flash = nil
	// Achievements are re-evaluated on every toggle; XP is paid only on the
	// incomplete-to-complete transition.
	engine := gamify.NewEngine(m.store)
	ev := gamify.ToggleEvent{
		WasCompleted: prevCount < maxCount && newCount >= maxCount,
		PrevStreak:   prevStreak,
		Now:          time.Now(),
	}
	checkCtx := gamify.CheckContext{
		Routines:        m.routines,
		Ledger:          m.led,
		Streak:          stats.Streak(m.routines, m.led, m.day),
		TodayPercentage: stats.DailyPercentage(m.routines, m.led, m.day),
		Today:           m.day,
	}
	state, outcome, err := engine.ApplyToggle(m.state, ev, checkCtx)
	if err != nil {
		return err
	}
	if err := m.store.SaveGamification(state); err != nil {
		return err
	}
	m.state = state

	if outcome.XPAwarded > 0 {
		note := fmt.Sprintf("+%d XP", outcome.XPAwarded)
		if outcome.PerfectDayBonus {
			note += " · perfect day!"
		}
		m.flash = append(m.flash, note)
	}
	for _, milestone := range outcome.StreakMilestones {
		m.flash = append(m.flash, fmt.Sprintf("🔥 %d-day streak!", milestone))
	}
	if outcome.LevelUp {
		m.flash = append(m.flash, fmt.Sprintf("⭐ Level %d!", gamify.Level(state.XP)))
	}
	for _, a := range outcome.NewAchievements {
		m.flash = append(m.flash, fmt.Sprintf("🏆 %s", a.Name))
	}

	// Counts changed, so the due list may have too (interval routines)
	m.due = schedule.DueRoutines(m.routines, m.day, m.led)
	if m.cursor >= len(m.due) && m.cursor > 0 {
		m.cursor = len(m.due) - 1
	}
	return nil
}
