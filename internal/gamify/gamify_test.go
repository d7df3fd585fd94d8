package gamify

import (
	"testing"
	"time"

	"github.com/pellegrino/hamster/internal/calendar"
	"github.com/pellegrino/hamster/internal/ledger"
	"github.com/pellegrino/hamster/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %s: %v", s, err)
	}
	return d
}

func TestLevelCurve(t *testing.T) {
	cases := []struct{ xp, want int }{
		{0, 1},
		{499, 1},
		{500, 2},
		{1250, 3},
		{24500, 50},
		{999999, 50}, // capped
	}
	for _, c := range cases {
		if got := Level(c.xp); got != c.want {
			t.Errorf("Level(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestXPProgressHelpers(t *testing.T) {
	if got := XPForNextLevel(3); got != 1500 {
		t.Errorf("XPForNextLevel(3) = %d, want 1500", got)
	}
	if got := XPProgressInLevel(1234); got != 234 {
		t.Errorf("XPProgressInLevel(1234) = %d, want 234", got)
	}
}

func TestDefinitionsCatalog(t *testing.T) {
	if len(Definitions) != 9 {
		t.Fatalf("catalog has %d entries, want 9", len(Definitions))
	}
	seen := make(map[string]bool)
	for _, d := range Definitions {
		if d.ID == "" || d.Name == "" || d.Icon == "" {
			t.Errorf("incomplete definition: %+v", d)
		}
		if seen[d.ID] {
			t.Errorf("duplicate achievement id %s", d.ID)
		}
		seen[d.ID] = true
		if d.UnlockedAt != "" {
			t.Errorf("catalog entry %s carries an unlock timestamp", d.ID)
		}
	}
	if _, ok := Definition("century"); !ok {
		t.Error("Definition lookup failed for century")
	}
	if _, ok := Definition("nope"); ok {
		t.Error("Definition lookup succeeded for unknown id")
	}
}

func fitnessDaily(id string) models.Routine {
	return models.Routine{
		ID:        id,
		Category:  "Fitness",
		Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 1},
	}
}

func TestNewlyUnlockedFirstCompletionAndStreaks(t *testing.T) {
	led := ledger.New()
	ctx := CheckContext{
		Routines: []models.Routine{fitnessDaily("a")},
		Ledger:   led,
		Today:    day(t, "2026-01-14"),
	}

	if ids := NewlyUnlocked(nil, ctx); len(ids) != 0 {
		t.Errorf("empty history unlocked %v", ids)
	}

	led.SetCount("a", "2026-01-14", 1)
	ctx.Streak = 7
	ids := NewlyUnlocked(nil, ctx)
	if !containsID(ids, "first_completion") || !containsID(ids, "week_streak") {
		t.Errorf("unlocked %v, want first_completion and week_streak", ids)
	}
	if containsID(ids, "month_streak") || containsID(ids, "century") {
		t.Errorf("unlocked %v with streak 7", ids)
	}

	// Already-unlocked ids are skipped.
	ids = NewlyUnlocked([]string{"first_completion", "week_streak", "perfect_week"}, ctx)
	if containsID(ids, "first_completion") || containsID(ids, "week_streak") {
		t.Errorf("re-unlocked %v", ids)
	}

	ctx.Streak = 100
	ids = NewlyUnlocked(nil, ctx)
	for _, want := range []string{"week_streak", "month_streak", "century"} {
		if !containsID(ids, want) {
			t.Errorf("streak 100 missing %s in %v", want, ids)
		}
	}
}

func TestNewlyUnlockedPerfectDayAndWeek(t *testing.T) {
	led := ledger.New()
	today := day(t, "2026-01-14")
	r := fitnessDaily("a")

	ctx := CheckContext{Routines: []models.Routine{r}, Ledger: led, Today: today, TodayPercentage: 100}
	led.SetCount("a", "2026-01-14", 1)

	ids := NewlyUnlocked(nil, ctx)
	if !containsID(ids, "perfect_day") {
		t.Errorf("perfect_day missing from %v", ids)
	}
	// A daily routine missing on a prior day fails the 7-day perfect window.
	if containsID(ids, "perfect_week") {
		t.Errorf("perfect_week should not unlock with incomplete prior days: %v", ids)
	}

	for i := 0; i < 7; i++ {
		led.SetCount("a", calendar.DayString(calendar.AddDays(today, -i)), 1)
	}
	ids = NewlyUnlocked(nil, ctx)
	if !containsID(ids, "perfect_week") {
		t.Errorf("perfect_week missing from %v", ids)
	}
}

func TestNewlyUnlockedCategoryWindows(t *testing.T) {
	today := day(t, "2026-03-01")

	supplement := models.Routine{
		ID:        "s",
		Category:  "Supplements",
		Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 2},
	}

	// Category empty: cannot qualify.
	ctx := CheckContext{Routines: []models.Routine{fitnessDaily("f")}, Ledger: ledger.New(), Today: today}
	if ids := NewlyUnlocked(nil, ctx); containsID(ids, "supplement_master") {
		t.Errorf("supplement_master unlocked with no Supplements routines: %v", ids)
	}

	// 30 fully-completed days unlock it.
	led := ledger.New()
	for i := 0; i < 30; i++ {
		led.SetCount("s", calendar.DayString(calendar.AddDays(today, -i)), 2)
	}
	ctx = CheckContext{Routines: []models.Routine{supplement}, Ledger: led, Today: today}
	if ids := NewlyUnlocked(nil, ctx); !containsID(ids, "supplement_master") {
		t.Errorf("supplement_master missing from %v", ids)
	}

	// One under-completed day inside the window breaks it.
	led.SetCount("s", calendar.DayString(calendar.AddDays(today, -holeOffset)), 1)
	if ids := NewlyUnlocked(nil, ctx); containsID(ids, "supplement_master") {
		t.Errorf("supplement_master unlocked despite partial day: %v", ids)
	}
}

// holeOffset is a day inside the 30-day window used to poke a hole in category tests
const holeOffset = 12

func TestNewlyUnlockedFitnessFanaticCountsRecords(t *testing.T) {
	today := day(t, "2026-03-01")
	led := ledger.New()
	r := fitnessDaily("f")

	// 19 records, one with an inflated count: records are counted, not sums.
	for i := 0; i < 19; i++ {
		led.SetCount("f", calendar.DayString(calendar.AddDays(today, -i)), 1)
	}
	led.SetCount("f", calendar.DayString(today), 5)

	ctx := CheckContext{Routines: []models.Routine{r}, Ledger: led, Today: today}
	if ids := NewlyUnlocked(nil, ctx); containsID(ids, "fitness_fanatic") {
		t.Errorf("fitness_fanatic unlocked with 19 records: %v", ids)
	}

	led.SetCount("f", calendar.DayString(calendar.AddDays(today, -19)), 1)
	if ids := NewlyUnlocked(nil, ctx); !containsID(ids, "fitness_fanatic") {
		t.Errorf("fitness_fanatic missing with 20 records: %v", ids)
	}
}

type memMarker struct {
	dates map[string]bool
}

func newMemMarker() *memMarker { return &memMarker{dates: make(map[string]bool)} }

func (m *memMarker) HasPerfectDayBonus(date string) (bool, error) { return m.dates[date], nil }
func (m *memMarker) SetPerfectDayBonus(date string) error         { m.dates[date] = true; return nil }

func TestApplyToggleAwardsCompletionXP(t *testing.T) {
	eng := NewEngine(newMemMarker())
	led := ledger.New()
	today := day(t, "2026-01-14")
	ctx := CheckContext{Routines: []models.Routine{fitnessDaily("a")}, Ledger: led, Today: today, TodayPercentage: 50}

	state, out, err := eng.ApplyToggle(models.DefaultGamificationState(), ToggleEvent{WasCompleted: true, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if out.XPAwarded != XPPerCompletion || state.XP != XPPerCompletion {
		t.Errorf("XP = %d/%d, want %d", out.XPAwarded, state.XP, XPPerCompletion)
	}
	if out.LevelUp || state.Level != 1 {
		t.Errorf("unexpected level change: %+v", out)
	}

	// A toggle that does not complete anything pays nothing.
	_, out, err = eng.ApplyToggle(state, ToggleEvent{WasCompleted: false, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if out.XPAwarded != 0 {
		t.Errorf("non-completing toggle awarded %d XP", out.XPAwarded)
	}
}

func TestApplyTogglePerfectDayBonusOncePerDate(t *testing.T) {
	marker := newMemMarker()
	eng := NewEngine(marker)
	led := ledger.New()
	led.SetCount("a", "2026-01-14", 1)
	today := day(t, "2026-01-14")
	ctx := CheckContext{Routines: []models.Routine{fitnessDaily("a")}, Ledger: led, Today: today, TodayPercentage: 100}

	state, out, err := eng.ApplyToggle(models.DefaultGamificationState(), ToggleEvent{WasCompleted: true, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if !out.PerfectDayBonus || out.XPAwarded != XPPerCompletion+XPPerfectDayBonus {
		t.Errorf("first perfect toggle: %+v", out)
	}

	state, out, err = eng.ApplyToggle(state, ToggleEvent{WasCompleted: true, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if out.PerfectDayBonus {
		t.Error("perfect day bonus paid twice for the same date")
	}
	if out.XPAwarded != XPPerCompletion {
		t.Errorf("second toggle XP = %d, want %d", out.XPAwarded, XPPerCompletion)
	}
	_ = state
}

func TestApplyToggleStreakMilestoneEdgeTriggered(t *testing.T) {
	eng := NewEngine(newMemMarker())
	led := ledger.New()
	today := day(t, "2026-01-14")
	base := CheckContext{Routines: []models.Routine{fitnessDaily("a")}, Ledger: led, Today: today}

	// Crossing 7 pays once.
	ctx := base
	ctx.Streak = 7
	state, out, err := eng.ApplyToggle(models.DefaultGamificationState(), ToggleEvent{WasCompleted: true, PrevStreak: 6, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if out.XPAwarded != XPPerCompletion+XPStreakMilestone {
		t.Errorf("milestone crossing XP = %d", out.XPAwarded)
	}
	if len(out.StreakMilestones) != 1 || out.StreakMilestones[0] != 7 {
		t.Errorf("milestones = %v, want [7]", out.StreakMilestones)
	}

	// Staying above the threshold pays nothing more.
	ctx.Streak = 8
	_, out, err = eng.ApplyToggle(state, ToggleEvent{WasCompleted: true, PrevStreak: 7, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if len(out.StreakMilestones) != 0 {
		t.Errorf("milestone re-paid: %v", out.StreakMilestones)
	}
}

func TestApplyToggleLevelUpAndAchievements(t *testing.T) {
	eng := NewEngine(newMemMarker())
	led := ledger.New()
	led.SetCount("a", "2026-01-14", 1)
	today := day(t, "2026-01-14")
	ctx := CheckContext{Routines: []models.Routine{fitnessDaily("a")}, Ledger: led, Today: today, TodayPercentage: 50}

	start := models.DefaultGamificationState()
	start.XP = 495
	start.Level = 1

	state, out, err := eng.ApplyToggle(start, ToggleEvent{WasCompleted: true, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	if !out.LevelUp || state.Level != 2 {
		t.Errorf("expected level up to 2, got %+v", state)
	}
	if len(out.NewAchievements) != 1 || out.NewAchievements[0].ID != "first_completion" {
		t.Errorf("achievements = %v", out.NewAchievements)
	}
	if out.NewAchievements[0].UnlockedAt == "" {
		t.Error("unlocked achievement has no timestamp")
	}

	// first_completion never re-fires.
	_, out, err = eng.ApplyToggle(state, ToggleEvent{WasCompleted: true, Now: time.Now()}, ctx)
	if err != nil {
		t.Fatalf("ApplyToggle failed: %v", err)
	}
	for _, a := range out.NewAchievements {
		if a.ID == "first_completion" {
			t.Error("first_completion unlocked twice")
		}
	}
}

func containsID(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
