package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
	"github.com/pellegrino/hamster/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// LoadLedger reads all completions from the store into an in-memory ledger.
func (c *Context) LoadLedger() (*ledger.Ledger, error) {
	completions, err := c.Store.GetAllCompletions()
	if err != nil {
		return nil, err
	}
	return ledger.FromCompletions(completions), nil
}

// SaveLedger writes the ledger back to the store.
func (c *Context) SaveLedger(led *ledger.Ledger) error {
	return c.Store.SaveCompletions(led.Completions())
}

// FindRoutine resolves a routine by exact ID, exact name (case-insensitive),
// or unique name prefix.
func (c *Context) FindRoutine(query string) (models.Routine, error) {
	routines, err := c.Store.GetAllRoutines()
	if err != nil {
		return models.Routine{}, err
	}

	lower := strings.ToLower(query)
	var prefixMatches []models.Routine
	for _, r := range routines {
		if r.ID == query {
			return r, nil
		}
		name := strings.ToLower(r.Name)
		if name == lower {
			return r, nil
		}
		if strings.HasPrefix(name, lower) {
			prefixMatches = append(prefixMatches, r)
		}
	}

	switch len(prefixMatches) {
	case 0:
		return models.Routine{}, fmt.Errorf("no routine matches %q", query)
	case 1:
		return prefixMatches[0], nil
	default:
		var names []string
		for _, r := range prefixMatches {
			names = append(names, r.Name)
		}
		return models.Routine{}, fmt.Errorf("%q is ambiguous: %s", query, strings.Join(names, ", "))
	}
}

var dayNames = map[string]int{
	"mon":       1,
	"monday":    1,
	"tue":       2,
	"tuesday":   2,
	"wed":       3,
	"wednesday": 3,
	"thu":       4,
	"thursday":  4,
	"fri":       5,
	"friday":    5,
	"sat":       6,
	"saturday":  6,
	"sun":       7,
	"sunday":    7,
}

// ParseWeekdays parses a comma-separated list of weekdays into day numbers
// (1=Monday through 7=Sunday). Accepts names, abbreviations, and digits.
func ParseWeekdays(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	var days []int

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if d, ok := dayNames[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err == nil && num >= 1 && num <= 7 {
			days = append(days, num)
			continue
		}
		return nil, fmt.Errorf("invalid weekday: %s", part)
	}

	return days, nil
}

var shortDayNames = [8]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// FormatWeekdays renders day numbers as a comma-joined abbreviation list.
func FormatWeekdays(days []int) string {
	var names []string
	for _, d := range days {
		if d >= 1 && d <= 7 {
			names = append(names, shortDayNames[d])
		}
	}
	return strings.Join(names, ",")
}

// FormatFrequency formats a frequency rule into a human-readable string
func FormatFrequency(f models.Frequency) string {
	switch f.Type {
	case models.FrequencyDaily:
		if f.TimesPerDay > 1 {
			return fmt.Sprintf("daily x%d", f.TimesPerDay)
		}
		return "daily"
	case models.FrequencyWeekly:
		if f.TimesPerWeek > 1 {
			return fmt.Sprintf("weekly x%d", f.TimesPerWeek)
		}
		return "weekly"
	case models.FrequencyWeekdays:
		return fmt.Sprintf("on %s", FormatWeekdays(f.Weekdays))
	case models.FrequencyInterval:
		return fmt.Sprintf("every %d days", f.IntervalDays)
	default:
		return "unknown"
	}
}
