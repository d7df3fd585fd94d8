package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/pellegrino/hamster/internal/models"
)

type RoutineDeleteCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
	Yes     bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *RoutineDeleteCmd) Run(ctx *Context) error {
	routine, err := ctx.FindRoutine(c.Routine)
	if err != nil {
		return err
	}

	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %q and its completion history?", routine.Name)).
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation form error: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	kept := make([]models.Routine, 0, len(routines))
	for _, r := range routines {
		if r.ID != routine.ID {
			kept = append(kept, r)
		}
	}
	if err := ctx.Store.SaveRoutines(kept); err != nil {
		return err
	}

	// Drop the routine's history too so stats don't count orphans
	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return err
	}
	keptCompletions := completions[:0]
	for _, comp := range completions {
		if comp.RoutineID != routine.ID {
			keptCompletions = append(keptCompletions, comp)
		}
	}
	if err := ctx.Store.SaveCompletions(keptCompletions); err != nil {
		return err
	}

	fmt.Printf("Deleted routine: %s\n", routine.Name)
	return nil
}
