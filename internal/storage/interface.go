package storage

import "github.com/pellegrino/hamster/internal/models"

// Provider is the persistence boundary. The core always reads whole
// collections and writes whole collections back: a save either fully
// replaces the collection or is visibly unapplied.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Routines
	GetAllRoutines() ([]models.Routine, error)
	SaveRoutines([]models.Routine) error

	// Completions
	GetAllCompletions() ([]models.Completion, error)
	SaveCompletions([]models.Completion) error

	// Gamification singleton
	GetGamification() (models.GamificationState, error)
	SaveGamification(models.GamificationState) error

	// Perfect-day bonus markers (existence-only, keyed by day string)
	HasPerfectDayBonus(date string) (bool, error)
	SetPerfectDayBonus(date string) error

	// Utils
	GetConfigPath() string
}
