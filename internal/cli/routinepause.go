package cli

import (
	"fmt"
)

type RoutinePauseCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
}

func (c *RoutinePauseCmd) Run(ctx *Context) error {
	return setPaused(ctx, c.Routine, true)
}

type RoutineResumeCmd struct {
	Routine string `arg:"" help:"Routine name or ID."`
}

func (c *RoutineResumeCmd) Run(ctx *Context) error {
	return setPaused(ctx, c.Routine, false)
}

func setPaused(ctx *Context, query string, paused bool) error {
	routine, err := ctx.FindRoutine(query)
	if err != nil {
		return err
	}
	if routine.Paused == paused {
		if paused {
			return fmt.Errorf("routine %q is already paused", routine.Name)
		}
		return fmt.Errorf("routine %q is not paused", routine.Name)
	}

	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	for i, r := range routines {
		if r.ID == routine.ID {
			routines[i].Paused = paused
		}
	}
	if err := ctx.Store.SaveRoutines(routines); err != nil {
		return err
	}

	if paused {
		fmt.Printf("Paused routine: %s\n", routine.Name)
	} else {
		fmt.Printf("Resumed routine: %s\n", routine.Name)
	}
	return nil
}
