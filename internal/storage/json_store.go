package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pellegrino/hamster/internal/models"
)

// Store is the on-disk JSON document shape.
type Store struct {
	Version         int                       `json:"version"`
	Routines        map[string]models.Routine `json:"routines"`
	Completions     []models.Completion       `json:"completions"`
	Gamification    models.GamificationState  `json:"gamification"`
	PerfectDayBonus map[string]bool           `json:"perfect_day_bonuses"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:         1,
		Routines:        make(map[string]models.Routine),
		Completions:     []models.Completion{},
		Gamification:    models.DefaultGamificationState(),
		PerfectDayBonus: make(map[string]bool),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'hamster init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Routines == nil {
		s.store.Routines = make(map[string]models.Routine)
	}
	if s.store.PerfectDayBonus == nil {
		s.store.PerfectDayBonus = make(map[string]bool)
	}

	// A record the evaluators cannot interpret must fail here, at load time,
	// not read as silently never-due downstream.
	for _, r := range s.store.Routines {
		if err := r.Frequency.Validate(); err != nil {
			return fmt.Errorf("malformed routine record %q: %w", r.ID, err)
		}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetAllRoutines() ([]models.Routine, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	routines := make([]models.Routine, 0, len(s.store.Routines))
	for _, r := range s.store.Routines {
		routines = append(routines, r)
	}

	return routines, nil
}

func (s *JSONStore) SaveRoutines(routines []models.Routine) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	replacement := make(map[string]models.Routine, len(routines))
	for _, r := range routines {
		replacement[r.ID] = r
	}
	s.store.Routines = replacement
	return s.save()
}

func (s *JSONStore) GetAllCompletions() ([]models.Completion, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Completions, nil
}

func (s *JSONStore) SaveCompletions(completions []models.Completion) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Zero-count rows are never persisted.
	kept := make([]models.Completion, 0, len(completions))
	for _, c := range completions {
		if c.Count > 0 {
			kept = append(kept, c)
		}
	}
	s.store.Completions = kept
	return s.save()
}

func (s *JSONStore) GetGamification() (models.GamificationState, error) {
	if s.store == nil {
		return models.GamificationState{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Gamification, nil
}

func (s *JSONStore) SaveGamification(state models.GamificationState) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Gamification = state
	return s.save()
}

func (s *JSONStore) HasPerfectDayBonus(date string) (bool, error) {
	if s.store == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	return s.store.PerfectDayBonus[date], nil
}

func (s *JSONStore) SetPerfectDayBonus(date string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.PerfectDayBonus[date] = true
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple hamster processes against the same storage path at the
//     same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
