package models

import (
	"fmt"
	"time"

	"github.com/pellegrino/hamster/internal/constants"
)

// FrequencyType selects which Frequency variant is active.
type FrequencyType string

const (
	FrequencyDaily    FrequencyType = "daily"
	FrequencyWeekly   FrequencyType = "weekly"
	FrequencyWeekdays FrequencyType = "weekdays"
	FrequencyInterval FrequencyType = "interval"
)

// Frequency describes how often a routine recurs. Exactly one variant is
// active, selected by Type; only the payload fields for that variant are
// meaningful.
type Frequency struct {
	Type FrequencyType `json:"type"`

	// daily
	TimesPerDay int `json:"times_per_day,omitempty"`

	// weekly
	TimesPerWeek int `json:"times_per_week,omitempty"`

	// weekdays: 1=Monday .. 7=Sunday
	Weekdays []int `json:"weekdays,omitempty"`

	// interval: cadence in days since last completion
	IntervalDays int `json:"interval_days,omitempty"`
}

// Validate checks that the active variant carries a sane payload. An unknown
// Type is a validation error here; the evaluators additionally treat it as
// never due so a stale record cannot crash statistics.
func (f Frequency) Validate() error {
	switch f.Type {
	case FrequencyDaily:
		if f.TimesPerDay < 1 {
			return fmt.Errorf("daily frequency requires times_per_day >= 1, got %d", f.TimesPerDay)
		}
	case FrequencyWeekly:
		if f.TimesPerWeek < 1 {
			return fmt.Errorf("weekly frequency requires times_per_week >= 1, got %d", f.TimesPerWeek)
		}
	case FrequencyWeekdays:
		if len(f.Weekdays) == 0 {
			return fmt.Errorf("weekdays frequency requires at least one weekday")
		}
		for _, d := range f.Weekdays {
			if d < 1 || d > 7 {
				return fmt.Errorf("weekday must be between 1 (Monday) and 7 (Sunday), got %d", d)
			}
		}
	case FrequencyInterval:
		if f.IntervalDays < 1 {
			return fmt.Errorf("interval frequency requires days >= 1, got %d", f.IntervalDays)
		}
	default:
		return fmt.Errorf("unknown frequency type: %q", f.Type)
	}
	return nil
}

// TimeRange is an optional clock window for a routine. End may be empty.
type TimeRange struct {
	Start string `json:"start"`         // HH:MM
	End   string `json:"end,omitempty"` // HH:MM
}

// Categories is the fixed category catalog. Stored as a plain string on the
// routine so future categories don't invalidate old records.
var Categories = []string{"Fitness", "Nutrition", "Skincare", "Supplements"}

// IsValidCategory reports whether name is in the category catalog.
func IsValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Routine is a user-defined recurring habit.
type Routine struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Frequency     Frequency  `json:"frequency"`
	Description   string     `json:"description,omitempty"`
	TimeRange     *TimeRange `json:"time_range,omitempty"`
	PreferredDays []int      `json:"preferred_days,omitempty"` // 1=Monday .. 7=Sunday
	Paused        bool       `json:"paused,omitempty"`
	CreatedAt     string     `json:"created_at"` // RFC3339
}

// Validate checks the routine's construction-time invariants.
func (r Routine) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("routine has no id")
	}
	if r.Name == "" {
		return fmt.Errorf("routine has no name")
	}
	if err := r.Frequency.Validate(); err != nil {
		return fmt.Errorf("routine %q: %w", r.Name, err)
	}
	for _, d := range r.PreferredDays {
		if d < 1 || d > 7 {
			return fmt.Errorf("routine %q: preferred day must be between 1 and 7, got %d", r.Name, d)
		}
	}
	if r.TimeRange != nil {
		if _, err := time.Parse(constants.TimeFormat, r.TimeRange.Start); err != nil {
			return fmt.Errorf("routine %q: invalid time range start %q", r.Name, r.TimeRange.Start)
		}
		if r.TimeRange.End != "" {
			if _, err := time.Parse(constants.TimeFormat, r.TimeRange.End); err != nil {
				return fmt.Errorf("routine %q: invalid time range end %q", r.Name, r.TimeRange.End)
			}
		}
	}
	return nil
}
