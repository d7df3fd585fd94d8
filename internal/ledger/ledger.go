// Package ledger holds the sparse (routine, date) -> count mapping of
// completions. The map never stores a zero count: absence and zero are the
// same state, so "never toggled" and "toggled back to zero" cannot diverge.
package ledger

import (
	"sort"

	"github.com/pellegrino/hamster/internal/models"
)

// Key addresses a single completion record.
type Key struct {
	RoutineID string
	Date      string
}

// Ledger is a mutable in-memory snapshot of the completion collection.
type Ledger struct {
	counts map[Key]int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{counts: make(map[Key]int)}
}

// FromCompletions builds a ledger from a persisted snapshot. Records with a
// non-positive count are dropped; duplicate keys keep the last record.
func FromCompletions(completions []models.Completion) *Ledger {
	l := New()
	for _, c := range completions {
		if c.Count > 0 {
			l.counts[Key{RoutineID: c.RoutineID, Date: c.Date}] = c.Count
		}
	}
	return l
}

// Count returns the completion count for a routine on a date. Absence reads
// as zero.
func (l *Ledger) Count(routineID, date string) int {
	return l.counts[Key{RoutineID: routineID, Date: date}]
}

// Toggle advances the count one step in the 0 -> 1 -> ... -> maxCount -> 0
// cycle and returns the new count.
func (l *Ledger) Toggle(routineID, date string, maxCount int) int {
	k := Key{RoutineID: routineID, Date: date}
	cur := l.counts[k]
	switch {
	case cur == 0:
		l.counts[k] = 1
		return 1
	case cur < maxCount:
		l.counts[k] = cur + 1
		return cur + 1
	default:
		delete(l.counts, k)
		return 0
	}
}

// SetCount upserts an exact count, removing the record when count <= 0. No
// upper clamp is applied here; statistics clamp defensively on read.
func (l *Ledger) SetCount(routineID, date string, count int) {
	k := Key{RoutineID: routineID, Date: date}
	if count <= 0 {
		delete(l.counts, k)
		return
	}
	l.counts[k] = count
}

// LastCompletion returns the most recent date on which the routine has a
// positive count, scanning the entire history. The canonical day-string form
// makes lexicographic order equal to chronological order.
func (l *Ledger) LastCompletion(routineID string) (string, bool) {
	var last string
	for k := range l.counts {
		if k.RoutineID == routineID && k.Date > last {
			last = k.Date
		}
	}
	return last, last != ""
}

// ForDate returns the completions recorded on a date, sorted by routine id.
func (l *Ledger) ForDate(date string) []models.Completion {
	var out []models.Completion
	for k, n := range l.counts {
		if k.Date == date {
			out = append(out, models.Completion{RoutineID: k.RoutineID, Date: k.Date, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoutineID < out[j].RoutineID })
	return out
}

// Len returns the number of stored records.
func (l *Ledger) Len() int {
	return len(l.counts)
}

// Completions flattens the ledger back to a persistable snapshot, sorted by
// (date, routine id) so saved output is stable.
func (l *Ledger) Completions() []models.Completion {
	out := make([]models.Completion, 0, len(l.counts))
	for k, n := range l.counts {
		out = append(out, models.Completion{RoutineID: k.RoutineID, Date: k.Date, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].RoutineID < out[j].RoutineID
	})
	return out
}
