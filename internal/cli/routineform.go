package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/pellegrino/hamster/internal/constants"
	"github.com/pellegrino/hamster/internal/models"
)

// routineFormModel holds the string-typed state backing the interactive form.
type routineFormModel struct {
	Name          string
	Category      string
	FrequencyType string
	TimesPerDay   string
	TimesPerWeek  string
	Weekdays      string
	Interval      string
	PreferredDays string
	Start         string
	End           string
	Description   string
}

func formModelFromRoutine(r models.Routine) *routineFormModel {
	fm := &routineFormModel{
		Name:          r.Name,
		Category:      r.Category,
		FrequencyType: string(r.Frequency.Type),
		TimesPerDay:   strconv.Itoa(max(r.Frequency.TimesPerDay, 1)),
		TimesPerWeek:  strconv.Itoa(max(r.Frequency.TimesPerWeek, 1)),
		Weekdays:      FormatWeekdays(r.Frequency.Weekdays),
		Interval:      strconv.Itoa(max(r.Frequency.IntervalDays, 1)),
		PreferredDays: FormatWeekdays(r.PreferredDays),
		Description:   r.Description,
	}
	if r.TimeRange != nil {
		fm.Start = r.TimeRange.Start
		fm.End = r.TimeRange.End
	}
	return fm
}

// apply writes the form state back onto the routine.
func (fm *routineFormModel) apply(r *models.Routine) error {
	r.Name = strings.TrimSpace(fm.Name)
	r.Category = fm.Category
	r.Description = strings.TrimSpace(fm.Description)

	timesPerDay, _ := strconv.Atoi(fm.TimesPerDay)
	timesPerWeek, _ := strconv.Atoi(fm.TimesPerWeek)
	interval, _ := strconv.Atoi(fm.Interval)
	freq, err := buildFrequency(fm.FrequencyType, timesPerDay, timesPerWeek, fm.Weekdays, interval)
	if err != nil {
		return err
	}
	r.Frequency = freq

	r.PreferredDays = nil
	if strings.TrimSpace(fm.PreferredDays) != "" {
		days, err := ParseWeekdays(fm.PreferredDays)
		if err != nil {
			return fmt.Errorf("invalid preferred days: %w", err)
		}
		r.PreferredDays = days
	}

	r.TimeRange = nil
	if strings.TrimSpace(fm.Start) != "" {
		r.TimeRange = &models.TimeRange{
			Start: strings.TrimSpace(fm.Start),
			End:   strings.TrimSpace(fm.End),
		}
	}

	return nil
}

func newRoutineForm(fm *routineFormModel) *huh.Form {
	categoryOptions := make([]huh.Option[string], 0, len(models.Categories))
	for _, cat := range models.Categories {
		categoryOptions = append(categoryOptions, huh.NewOption(cat, cat))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&fm.Category),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Specific weekdays", "weekdays"),
					huh.NewOption("Every N Days", "interval"),
				).
				Value(&fm.FrequencyType),
			huh.NewInput().
				Title("Times per day").
				Description("For daily frequency").
				Value(&fm.TimesPerDay).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Times per week").
				Description("For weekly frequency").
				Value(&fm.TimesPerWeek).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Weekdays").
				Description("Comma-separated, for weekdays frequency (e.g. mon,wed,fri)").
				Value(&fm.Weekdays).
				Validate(validateOptionalWeekdays),
			huh.NewInput().
				Title("Interval (days)").
				Description("For 'Every N Days' frequency").
				Value(&fm.Interval).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Preferred days").
				Description("Comma-separated, optional").
				Value(&fm.PreferredDays).
				Validate(validateOptionalWeekdays),
			huh.NewInput().
				Title("Start time").
				Description("HH:MM, optional").
				Value(&fm.Start).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("End time").
				Description("HH:MM, optional").
				Value(&fm.End).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
		),
	).WithTheme(huh.ThemeDracula())
}

func validatePositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if i <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validateOptionalWeekdays(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := ParseWeekdays(s)
	return err
}

func validateOptionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(constants.TimeFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}
