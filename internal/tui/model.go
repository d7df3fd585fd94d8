package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
	"github.com/pellegrino/hamster/internal/schedule"
	"github.com/pellegrino/hamster/internal/storage"
)

type Model struct {
	store    storage.Provider
	keys     KeyMap
	help     help.Model
	day      time.Time
	routines []models.Routine
	led      *ledger.Ledger
	due      []models.Routine
	state    models.GamificationState
	cursor   int
	flash    []string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) (Model, error) {
	m := Model{
		store: store,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		day:   calendar.Today(),
	}
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reload pulls routines, completions, and gamification state from the store
// and recomputes the due list for the selected day.
func (m *Model) reload() error {
	routines, err := m.store.GetAllRoutines()
	if err != nil {
		return err
	}
	completions, err := m.store.GetAllCompletions()
	if err != nil {
		return err
	}
	state, err := m.store.GetGamification()
	if err != nil {
		return err
	}

	m.routines = routines
	m.led = ledger.FromCompletions(completions)
	m.state = state
	m.due = schedule.DueRoutines(routines, m.day, m.led)
	if m.cursor >= len(m.due) {
		m.cursor = 0
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}
