// Package validation performs construction-time and cross-record checks on
// routine and completion collections. The evaluators assume data passed this
// boundary is sane and do not re-validate on every read.
package validation

import (
	"fmt"

	"github.com/pellegrino/hamster/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidRoutine    ConflictType = "invalid_routine"
	ConflictDuplicateName     ConflictType = "duplicate_routine_name"
	ConflictUnknownCategory   ConflictType = "unknown_category"
	ConflictInvalidCompletion ConflictType = "invalid_completion"
	ConflictOrphanCompletion  ConflictType = "orphan_completion"
)

// Conflict represents a detected problem in the stored collections
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // routine names/ids involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}
	report := "Conflicts detected:\n"
	for _, c := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", c.Description)
	}
	return report
}

// ValidateRoutines checks the routine collection: per-record invariants,
// duplicate names and off-catalog categories.
func ValidateRoutines(routines []models.Routine) Result {
	result := Result{Conflicts: []Conflict{}}

	nameCount := make(map[string][]string)
	for _, r := range routines {
		if err := r.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidRoutine,
				Description: err.Error(),
				Items:       []string{r.Name},
			})
		}
		if r.Name != "" {
			nameCount[r.Name] = append(nameCount[r.Name], r.ID)
		}
		if r.Category != "" && !models.IsValidCategory(r.Category) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownCategory,
				Description: fmt.Sprintf("Routine %q has category %q outside the catalog", r.Name, r.Category),
				Items:       []string{r.Name},
			})
		}
	}

	for name, ids := range nameCount {
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateName,
				Description: fmt.Sprintf("Duplicate routine name: %q (IDs: %v)", name, ids),
				Items:       []string{name},
			})
		}
	}

	return result
}

// ValidateCompletions checks the completion collection against the routines
// it references. Orphans are reported as informational conflicts: statistics
// ignore them, but `doctor` surfaces them for cleanup.
func ValidateCompletions(completions []models.Completion, routines []models.Routine) Result {
	result := Result{Conflicts: []Conflict{}}

	known := make(map[string]bool, len(routines))
	for _, r := range routines {
		known[r.ID] = true
	}

	for _, c := range completions {
		if err := c.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidCompletion,
				Description: err.Error(),
				Items:       []string{c.RoutineID},
			})
			continue
		}
		if !known[c.RoutineID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanCompletion,
				Description: fmt.Sprintf("Completion on %s references unknown routine %s", c.Date, c.RoutineID),
				Items:       []string{c.RoutineID},
			})
		}
	}

	return result
}
