package cli

import (
	"fmt"

	"github.com/pellegrino/hamster/internal/validation"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return err
	}

	result := validation.ValidateRoutines(routines)
	compResult := validation.ValidateCompletions(completions, routines)
	result.Conflicts = append(result.Conflicts, compResult.Conflicts...)

	fmt.Printf("Checked %d routines and %d completion records.\n", len(routines), len(completions))
	if !result.HasConflicts() {
		fmt.Println("No conflicts found.")
		return nil
	}

	fmt.Print(result.FormatReport())
	return fmt.Errorf("found %d conflicts", len(result.Conflicts))
}
