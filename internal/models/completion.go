package models

import "fmt"

// Completion records how many times a routine was marked done on a single
// day. A count of zero is never persisted; absence means zero.
type Completion struct {
	RoutineID string `json:"routine_id"`
	Date      string `json:"date"` // YYYY-MM-DD format
	Count     int    `json:"count"`
}

// Validate checks the completion's construction-time invariants.
func (c Completion) Validate() error {
	if c.RoutineID == "" {
		return fmt.Errorf("completion has no routine id")
	}
	if c.Date == "" {
		return fmt.Errorf("completion has no date")
	}
	if c.Count < 1 {
		return fmt.Errorf("completion for %s on %s has count %d, want >= 1", c.RoutineID, c.Date, c.Count)
	}
	return nil
}
