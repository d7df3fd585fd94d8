package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/pellegrino/hamster/internal/constants"
	"github.com/pellegrino/hamster/internal/models"
)

// Routine and gamification records are stored as JSON documents keyed by id;
// completions get real columns so the compound key is enforced by the schema.
const schema = `
CREATE TABLE IF NOT EXISTS routines (
	id   TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS completions (
	routine_id TEXT    NOT NULL,
	date       TEXT    NOT NULL,
	count      INTEGER NOT NULL CHECK (count > 0),
	PRIMARY KEY (routine_id, date)
);
CREATE TABLE IF NOT EXISTS gamification (
	id   TEXT PRIMARY KEY CHECK (id = '` + constants.GamificationRecordID + `'),
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS perfect_day_bonuses (
	date TEXT PRIMARY KEY
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Initialize the gamification singleton if not present
	if _, err := s.GetGamification(); err != nil {
		if err := s.SaveGamification(models.DefaultGamificationState()); err != nil {
			return fmt.Errorf("failed to save default gamification state: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'hamster init' first")
	}

	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	if _, err := s.db.Exec(schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetAllRoutines() ([]models.Routine, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT data FROM routines")
	if err != nil {
		return nil, fmt.Errorf("failed to query routines: %w", err)
	}
	defer rows.Close()

	var routines []models.Routine
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan routine: %w", err)
		}
		var r models.Routine
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("malformed routine record: %w", err)
		}
		if err := r.Frequency.Validate(); err != nil {
			return nil, fmt.Errorf("malformed routine record %q: %w", r.ID, err)
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}

func (s *SQLiteStore) SaveRoutines(routines []models.Routine) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM routines"); err != nil {
		return fmt.Errorf("failed to clear routines: %w", err)
	}
	for _, r := range routines {
		data, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to serialize routine %s: %w", r.ID, err)
		}
		if _, err := tx.Exec("INSERT INTO routines (id, data) VALUES (?, ?)", r.ID, string(data)); err != nil {
			return fmt.Errorf("failed to insert routine %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetAllCompletions() ([]models.Completion, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT routine_id, date, count FROM completions ORDER BY date, routine_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		if err := rows.Scan(&c.RoutineID, &c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (s *SQLiteStore) SaveCompletions(completions []models.Completion) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions"); err != nil {
		return fmt.Errorf("failed to clear completions: %w", err)
	}
	for _, c := range completions {
		if c.Count <= 0 {
			continue // zero-count rows are never persisted
		}
		if _, err := tx.Exec(
			"INSERT INTO completions (routine_id, date, count) VALUES (?, ?, ?)",
			c.RoutineID, c.Date, c.Count,
		); err != nil {
			return fmt.Errorf("failed to insert completion %s/%s: %w", c.RoutineID, c.Date, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetGamification() (models.GamificationState, error) {
	if s.db == nil {
		return models.GamificationState{}, fmt.Errorf("storage not loaded")
	}

	var data string
	err := s.db.QueryRow(
		"SELECT data FROM gamification WHERE id = ?", constants.GamificationRecordID,
	).Scan(&data)
	if err != nil {
		return models.GamificationState{}, fmt.Errorf("failed to load gamification state: %w", err)
	}

	var state models.GamificationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return models.GamificationState{}, fmt.Errorf("malformed gamification record: %w", err)
	}
	if state.Achievements == nil {
		state.Achievements = []models.Achievement{}
	}
	return state, nil
}

func (s *SQLiteStore) SaveGamification(state models.GamificationState) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize gamification state: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO gamification (id, data) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data",
		constants.GamificationRecordID, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to save gamification state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) HasPerfectDayBonus(date string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	var one int
	err := s.db.QueryRow("SELECT 1 FROM perfect_day_bonuses WHERE date = ?", date).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query perfect day bonus: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) SetPerfectDayBonus(date string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec("INSERT OR IGNORE INTO perfect_day_bonuses (date) VALUES (?)", date)
	if err != nil {
		return fmt.Errorf("failed to record perfect day bonus: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
