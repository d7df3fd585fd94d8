package models

// Achievement is an unlockable milestone. The catalog of definitions lives in
// the gamify package; UnlockedAt is set when the achievement is earned.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlocked_at,omitempty"` // RFC3339
}

// GamificationState is the process-wide singleton record. XP only ever grows;
// Level is derived from XP but stored so the UI can read it without
// recomputing.
type GamificationState struct {
	XP            int           `json:"xp"`
	Level         int           `json:"level"`
	Achievements  []Achievement `json:"achievements"`
	StreakFreezes int           `json:"streak_freezes"`
}

// DefaultGamificationState returns the state a fresh install starts with.
func DefaultGamificationState() GamificationState {
	return GamificationState{
		XP:            0,
		Level:         1,
		Achievements:  []Achievement{},
		StreakFreezes: 0,
	}
}

// HasAchievement reports whether the achievement with the given id has
// already been unlocked.
func (g GamificationState) HasAchievement(id string) bool {
	for _, a := range g.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
