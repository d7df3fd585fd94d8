package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pellegrino/hamster/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model, err := tui.NewModel(ctx.Store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
