package cli

import (
	"fmt"
	"time"

	"github.com/pellegrino/hamster/internal/constants"
	"github.com/pellegrino/hamster/internal/models"
)

type RoutineEditCmd struct {
	Routine       string `arg:"" help:"Routine name or ID."`
	Name          string `help:"New name."`
	Category      string `short:"c" help:"New category."`
	Frequency     string `short:"f" help:"New frequency type (daily|weekly|weekdays|interval)."`
	TimesPerDay   int    `help:"Completions per day for daily frequency."`
	TimesPerWeek  int    `help:"Target completions per week for weekly frequency."`
	Weekdays      string `short:"w" help:"Comma-separated weekdays for weekdays frequency."`
	Interval      int    `short:"i" help:"Day gap for interval frequency."`
	PreferredDays string `short:"p" help:"Comma-separated preferred weekdays ('none' to clear)."`
	Start         string `short:"s" help:"Start time (HH:MM, 'none' to clear the time range)."`
	End           string `short:"e" help:"End time (HH:MM)."`
	Description   string `short:"d" help:"New description."`
	Interactive   bool   `help:"Edit the routine through a form."`
}

func (c *RoutineEditCmd) Run(ctx *Context) error {
	routine, err := ctx.FindRoutine(c.Routine)
	if err != nil {
		return err
	}

	if c.Interactive {
		fm := formModelFromRoutine(routine)
		if err := newRoutineForm(fm).Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if err := fm.apply(&routine); err != nil {
			return err
		}
	} else {
		if err := c.applyFlags(&routine); err != nil {
			return err
		}
	}

	if err := routine.Validate(); err != nil {
		return fmt.Errorf("invalid routine: %w", err)
	}

	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	for i, r := range routines {
		if r.ID == routine.ID {
			routines[i] = routine
		} else if r.Name == routine.Name {
			return fmt.Errorf("a routine named %q already exists", routine.Name)
		}
	}
	if err := ctx.Store.SaveRoutines(routines); err != nil {
		return err
	}

	fmt.Printf("Updated routine: %s (%s, %s)\n", routine.Name, routine.Category, FormatFrequency(routine.Frequency))
	return nil
}

func (c *RoutineEditCmd) applyFlags(routine *models.Routine) error {
	if c.Name != "" {
		routine.Name = c.Name
	}
	if c.Category != "" {
		routine.Category = c.Category
	}
	if c.Description != "" {
		routine.Description = c.Description
	}

	if c.Frequency != "" {
		timesPerDay := c.TimesPerDay
		if timesPerDay == 0 {
			timesPerDay = 1
		}
		timesPerWeek := c.TimesPerWeek
		if timesPerWeek == 0 {
			timesPerWeek = 1
		}
		interval := c.Interval
		if interval == 0 {
			interval = 1
		}
		freq, err := buildFrequency(c.Frequency, timesPerDay, timesPerWeek, c.Weekdays, interval)
		if err != nil {
			return err
		}
		routine.Frequency = freq
	} else {
		// Tweak the existing rule in place
		if c.TimesPerDay > 0 {
			routine.Frequency.TimesPerDay = c.TimesPerDay
		}
		if c.TimesPerWeek > 0 {
			routine.Frequency.TimesPerWeek = c.TimesPerWeek
		}
		if c.Interval > 0 {
			routine.Frequency.IntervalDays = c.Interval
		}
		if c.Weekdays != "" {
			days, err := ParseWeekdays(c.Weekdays)
			if err != nil {
				return fmt.Errorf("invalid --weekdays: %w", err)
			}
			routine.Frequency.Weekdays = days
		}
	}

	switch c.PreferredDays {
	case "":
	case "none":
		routine.PreferredDays = nil
	default:
		days, err := ParseWeekdays(c.PreferredDays)
		if err != nil {
			return fmt.Errorf("invalid --preferred-days: %w", err)
		}
		routine.PreferredDays = days
	}

	switch c.Start {
	case "":
	case "none":
		routine.TimeRange = nil
	default:
		if _, err := time.Parse(constants.TimeFormat, c.Start); err != nil {
			return fmt.Errorf("invalid start time format (expected HH:MM): %w", err)
		}
		end := c.End
		if routine.TimeRange != nil && end == "" {
			end = routine.TimeRange.End
		}
		routine.TimeRange = &models.TimeRange{Start: c.Start, End: end}
	}
	if c.End != "" && c.Start == "" {
		if routine.TimeRange == nil {
			return fmt.Errorf("--end requires a start time")
		}
		if _, err := time.Parse(constants.TimeFormat, c.End); err != nil {
			return fmt.Errorf("invalid end time format (expected HH:MM): %w", err)
		}
		routine.TimeRange.End = c.End
	}

	return nil
}
