package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pellegrino/hamster/internal/gamify"
)

var (
	levelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	unlockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	lockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type RewardsCmd struct{}

func (c *RewardsCmd) Run(ctx *Context) error {
	state, err := ctx.Store.GetGamification()
	if err != nil {
		return err
	}

	level := gamify.Level(state.XP)
	fmt.Println(levelStyle.Render(fmt.Sprintf("Level %d", level)))
	if level < gamify.MaxLevel {
		progress := gamify.XPProgressInLevel(state.XP)
		fmt.Printf("%d XP · %d/%d to level %d\n\n", state.XP, progress, gamify.XPPerLevel, level+1)
	} else {
		fmt.Printf("%d XP · max level reached\n\n", state.XP)
	}

	unlocked := make(map[string]string, len(state.Achievements))
	for _, a := range state.Achievements {
		unlocked[a.ID] = a.UnlockedAt
	}

	for _, def := range gamify.Definitions {
		if at, ok := unlocked[def.ID]; ok {
			date := at
			if len(date) >= 10 {
				date = date[:10]
			}
			fmt.Println(unlockedStyle.Render(fmt.Sprintf("✓ %s", def.Name)) +
				fmt.Sprintf("  %s (unlocked %s)", def.Description, date))
		} else {
			fmt.Println(lockedStyle.Render(fmt.Sprintf("· %s  %s", def.Name, def.Description)))
		}
	}

	fmt.Printf("\n%d/%d achievements\n", len(state.Achievements), len(gamify.Definitions))
	return nil
}
