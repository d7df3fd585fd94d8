package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pellegrino/hamster/internal/constants"
	"github.com/pellegrino/hamster/internal/models"
)

type RoutineAddCmd struct {
	Name          string `arg:"" optional:"" help:"Routine name."`
	Category      string `short:"c" help:"Category (Fitness|Nutrition|Skincare|Supplements)."`
	Frequency     string `short:"f" help:"Frequency type (daily|weekly|weekdays|interval)." default:"daily"`
	TimesPerDay   int    `help:"Completions per day for daily frequency." default:"1"`
	TimesPerWeek  int    `help:"Target completions per week for weekly frequency." default:"1"`
	Weekdays      string `short:"w" help:"Comma-separated weekdays for weekdays frequency."`
	Interval      int    `short:"i" help:"Day gap for interval frequency." default:"1"`
	PreferredDays string `short:"p" help:"Comma-separated preferred weekdays."`
	Start         string `short:"s" help:"Start time (HH:MM)."`
	End           string `short:"e" help:"End time (HH:MM)."`
	Description   string `short:"d" help:"Optional description."`
	Interactive   bool   `help:"Fill in the routine through a form."`
}

func (c *RoutineAddCmd) Validate() error {
	if !c.Interactive && c.Name == "" {
		return fmt.Errorf("name is required (or use --interactive)")
	}
	if c.Frequency == "weekdays" && !c.Interactive && c.Weekdays == "" {
		return fmt.Errorf("weekdays must be specified for weekdays frequency")
	}
	if c.Start != "" {
		if _, err := time.Parse(constants.TimeFormat, c.Start); err != nil {
			return fmt.Errorf("invalid start time format (expected HH:MM): %w", err)
		}
	}
	if c.End != "" {
		if _, err := time.Parse(constants.TimeFormat, c.End); err != nil {
			return fmt.Errorf("invalid end time format (expected HH:MM): %w", err)
		}
	}
	return nil
}

func (c *RoutineAddCmd) Run(ctx *Context) error {
	routine := models.Routine{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Category:  c.Category,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if c.Interactive {
		fm := &routineFormModel{
			Name:          c.Name,
			Category:      c.Category,
			FrequencyType: c.Frequency,
			TimesPerDay:   fmt.Sprintf("%d", c.TimesPerDay),
			TimesPerWeek:  fmt.Sprintf("%d", c.TimesPerWeek),
			Weekdays:      c.Weekdays,
			Interval:      fmt.Sprintf("%d", c.Interval),
			PreferredDays: c.PreferredDays,
			Start:         c.Start,
			End:           c.End,
			Description:   c.Description,
		}
		if err := newRoutineForm(fm).Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if err := fm.apply(&routine); err != nil {
			return err
		}
	} else {
		freq, err := buildFrequency(c.Frequency, c.TimesPerDay, c.TimesPerWeek, c.Weekdays, c.Interval)
		if err != nil {
			return err
		}
		routine.Frequency = freq
		routine.Description = c.Description

		if c.PreferredDays != "" {
			days, err := ParseWeekdays(c.PreferredDays)
			if err != nil {
				return fmt.Errorf("invalid --preferred-days: %w", err)
			}
			routine.PreferredDays = days
		}
		if c.Start != "" {
			routine.TimeRange = &models.TimeRange{Start: c.Start, End: c.End}
		}
	}

	if err := routine.Validate(); err != nil {
		return fmt.Errorf("invalid routine: %w", err)
	}

	routines, err := ctx.Store.GetAllRoutines()
	if err != nil {
		return err
	}
	for _, r := range routines {
		if r.Name == routine.Name {
			return fmt.Errorf("a routine named %q already exists", routine.Name)
		}
	}

	routines = append(routines, routine)
	if err := ctx.Store.SaveRoutines(routines); err != nil {
		return err
	}

	fmt.Printf("Added routine: %s (%s, %s)\n", routine.Name, routine.Category, FormatFrequency(routine.Frequency))
	return nil
}

func buildFrequency(freqType string, timesPerDay, timesPerWeek int, weekdays string, interval int) (models.Frequency, error) {
	switch freqType {
	case "daily":
		return models.Frequency{Type: models.FrequencyDaily, TimesPerDay: timesPerDay}, nil
	case "weekly":
		return models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: timesPerWeek}, nil
	case "weekdays":
		days, err := ParseWeekdays(weekdays)
		if err != nil {
			return models.Frequency{}, fmt.Errorf("invalid --weekdays: %w", err)
		}
		return models.Frequency{Type: models.FrequencyWeekdays, Weekdays: days}, nil
	case "interval":
		return models.Frequency{Type: models.FrequencyInterval, IntervalDays: interval}, nil
	default:
		return models.Frequency{}, fmt.Errorf("invalid frequency type: %s", freqType)
	}
}
