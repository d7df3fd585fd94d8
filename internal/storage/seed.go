package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/pellegrino/hamster/internal/models"
)

// DefaultRoutines returns the starter routine set installed on first run.
// Each call mints fresh IDs and timestamps.
func DefaultRoutines() []models.Routine {
	now := time.Now().UTC().Format(time.RFC3339)

	seeds := []models.Routine{
		{
			Name:          "Gym",
			Category:      "Fitness",
			Frequency:     models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: 3},
			TimeRange:     &models.TimeRange{Start: "07:00", End: "08:30"},
			PreferredDays: []int{1, 3, 5},
		},
		{
			Name:          "Run",
			Category:      "Fitness",
			Frequency:     models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: 2},
			TimeRange:     &models.TimeRange{Start: "18:00", End: "18:30"},
			PreferredDays: []int{3, 7},
		},
		{
			Name:      "5000 steps",
			Category:  "Fitness",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
		},
		{
			Name:      "Clean eating",
			Category:  "Nutrition",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
		},
		{
			Name:          "Meal prep",
			Category:      "Nutrition",
			Frequency:     models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: 1},
			TimeRange:     &models.TimeRange{Start: "11:00", End: "13:00"},
			PreferredDays: []int{7},
		},
		{
			Name:      "Water 1.5L",
			Category:  "Nutrition",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
		},
		{
			Name:        "Morning Skin care",
			Category:    "Skincare",
			Description: "Vitamin C serum, moisturizer, sunscreen",
			Frequency:   models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
			TimeRange:   &models.TimeRange{Start: "08:30", End: "08:45"},
		},
		{
			Name:        "Evening Skin care",
			Category:    "Skincare",
			Description: "Cleanser, retinol, moisturizer",
			Frequency:   models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
			TimeRange:   &models.TimeRange{Start: "22:30", End: "22:45"},
		},
		{
			Name:      "Micro current",
			Category:  "Skincare",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
			TimeRange: &models.TimeRange{Start: "08:30", End: "08:45"},
		},
		{
			Name:      "Luce pulsata",
			Category:  "Skincare",
			Frequency: models.Frequency{Type: models.FrequencyWeekly, TimesPerWeek: 1},
			TimeRange: &models.TimeRange{Start: "11:00", End: "11:30"},
		},
		{
			Name:          "Hair dye - root",
			Category:      "Skincare",
			Frequency:     models.Frequency{Type: models.FrequencyInterval, IntervalDays: 45},
			PreferredDays: []int{6},
		},
		{
			Name:      "Bromelina",
			Category:  "Supplements",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 2},
			TimeRange: &models.TimeRange{Start: "09:00"},
		},
		{
			Name:      "Centella asiatica",
			Category:  "Supplements",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
			TimeRange: &models.TimeRange{Start: "09:00"},
		},
		{
			Name:      "Dbase",
			Category:  "Supplements",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
			TimeRange: &models.TimeRange{Start: "09:00"},
		},
		{
			Name:      "B12",
			Category:  "Supplements",
			Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
			TimeRange: &models.TimeRange{Start: "09:00"},
		},
	}

	for i := range seeds {
		seeds[i].ID = uuid.New().String()
		seeds[i].CreatedAt = now
	}
	return seeds
}
