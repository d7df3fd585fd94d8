package gamify

import (
	"fmt"
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/models"
)

// BonusMarker is the slice of the store the engine needs: existence-only
// per-date markers recording that a perfect-day bonus was already paid.
type BonusMarker interface {
	HasPerfectDayBonus(date string) (bool, error)
	SetPerfectDayBonus(date string) error
}

// Engine applies XP awards and achievement unlocks after completion toggles.
type Engine struct {
	marker BonusMarker
}

// NewEngine returns an engine backed by the given bonus marker store.
func NewEngine(marker BonusMarker) *Engine {
	return &Engine{marker: marker}
}

// ToggleEvent describes the toggle that just happened.
type ToggleEvent struct {
	// WasCompleted is true only when the toggle transitioned a routine from
	// incomplete to complete, not on every click.
	WasCompleted bool
	// PrevStreak is the streak value before the toggle, for edge-triggered
	// milestone detection.
	PrevStreak int
	// Now stamps new achievement unlocks.
	Now time.Time
}

// Outcome reports what a toggle earned, for the celebration layer.
type Outcome struct {
	XPAwarded        int
	LevelUp          bool
	PerfectDayBonus  bool
	StreakMilestones []int
	NewAchievements  []models.Achievement
}

// ApplyToggle awards XP for the toggle, pays the perfect-day bonus at most
// once per calendar date, pays streak milestone bonuses on threshold
// crossings, and re-evaluates achievements. It returns the updated state; the
// caller persists it.
func (e *Engine) ApplyToggle(state models.GamificationState, ev ToggleEvent, ctx CheckContext) (models.GamificationState, Outcome, error) {
	var out Outcome

	if ev.WasCompleted {
		out.XPAwarded += XPPerCompletion
	}

	if ctx.TodayPercentage == 100 {
		today := calendar.DayString(ctx.Today)
		paid, err := e.marker.HasPerfectDayBonus(today)
		if err != nil {
			return state, out, fmt.Errorf("check perfect day bonus: %w", err)
		}
		if !paid {
			if err := e.marker.SetPerfectDayBonus(today); err != nil {
				return state, out, fmt.Errorf("record perfect day bonus: %w", err)
			}
			out.XPAwarded += XPPerfectDayBonus
			out.PerfectDayBonus = true
		}
	}

	for _, m := range StreakMilestones {
		if ctx.Streak >= m && ev.PrevStreak < m {
			out.XPAwarded += XPStreakMilestone
			out.StreakMilestones = append(out.StreakMilestones, m)
		}
	}

	state.XP += out.XPAwarded
	newLevel := Level(state.XP)
	out.LevelUp = newLevel > state.Level
	state.Level = newLevel

	alreadyUnlocked := make([]string, 0, len(state.Achievements))
	for _, a := range state.Achievements {
		alreadyUnlocked = append(alreadyUnlocked, a.ID)
	}
	for _, id := range NewlyUnlocked(alreadyUnlocked, ctx) {
		def, ok := Definition(id)
		if !ok {
			continue
		}
		def.UnlockedAt = ev.Now.UTC().Format(time.RFC3339)
		state.Achievements = append(state.Achievements, def)
		out.NewAchievements = append(out.NewAchievements, def)
	}

	return state, out, nil
}
