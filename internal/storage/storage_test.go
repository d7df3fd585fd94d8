package storage

import (
	"path/filepath"
	"testing"

	"github.com/pellegrino/hamster/internal/models"
)

func providers(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()
	return map[string]Provider{
		"json":   NewJSONStore(filepath.Join(dir, "hamster.json")),
		"sqlite": NewSQLiteStore(filepath.Join(dir, "hamster.db")),
	}
}

func sampleRoutine(name string) models.Routine {
	return models.Routine{
		ID:        "id-" + name,
		Name:      name,
		Category:  "Fitness",
		Frequency: models.Frequency{Type: models.FrequencyDaily, TimesPerDay: 2},
		CreatedAt: "2026-01-01T09:00:00Z",
	}
}

func TestRoutineRoundTrip(t *testing.T) {
	for label, p := range providers(t) {
		t.Run(label, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer p.Close()

			want := []models.Routine{
				sampleRoutine("Gym"),
				{
					ID:            "id-hair",
					Name:          "Hair dye - root",
					Category:      "Skincare",
					Frequency:     models.Frequency{Type: models.FrequencyInterval, IntervalDays: 45},
					PreferredDays: []int{6},
					CreatedAt:     "2026-01-01T09:00:00Z",
				},
			}
			if err := p.SaveRoutines(want); err != nil {
				t.Fatalf("SaveRoutines: %v", err)
			}

			got, err := p.GetAllRoutines()
			if err != nil {
				t.Fatalf("GetAllRoutines: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("expected %d routines, got %d", len(want), len(got))
			}
			byID := map[string]models.Routine{}
			for _, r := range got {
				byID[r.ID] = r
			}
			hair, ok := byID["id-hair"]
			if !ok {
				t.Fatal("interval routine missing after round trip")
			}
			if hair.Frequency.Type != models.FrequencyInterval || hair.Frequency.IntervalDays != 45 {
				t.Errorf("frequency mangled: %+v", hair.Frequency)
			}
			if len(hair.PreferredDays) != 1 || hair.PreferredDays[0] != 6 {
				t.Errorf("preferred days mangled: %v", hair.PreferredDays)
			}
		})
	}
}

func TestCompletionsDropZeroCounts(t *testing.T) {
	for label, p := range providers(t) {
		t.Run(label, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer p.Close()

			completions := []models.Completion{
				{RoutineID: "a", Date: "2026-03-01", Count: 2},
				{RoutineID: "b", Date: "2026-03-01", Count: 0},
				{RoutineID: "a", Date: "2026-03-02", Count: 1},
			}
			if err := p.SaveCompletions(completions); err != nil {
				t.Fatalf("SaveCompletions: %v", err)
			}

			got, err := p.GetAllCompletions()
			if err != nil {
				t.Fatalf("GetAllCompletions: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected zero-count rows dropped, got %d rows", len(got))
			}
			for _, c := range got {
				if c.Count <= 0 {
					t.Errorf("persisted non-positive count: %+v", c)
				}
			}
		})
	}
}

func TestGamificationRoundTrip(t *testing.T) {
	for label, p := range providers(t) {
		t.Run(label, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer p.Close()

			// Init seeds the default state
			state, err := p.GetGamification()
			if err != nil {
				t.Fatalf("GetGamification after Init: %v", err)
			}
			if state.XP != 0 || state.Level != 1 {
				t.Errorf("expected fresh state, got xp=%d level=%d", state.XP, state.Level)
			}

			state.XP = 1200
			state.Level = 3
			state.Achievements = append(state.Achievements, models.Achievement{
				ID:         "first_completion",
				Name:       "First Step",
				Icon:       "Footprints",
				UnlockedAt: "2026-03-01T10:00:00Z",
			})
			if err := p.SaveGamification(state); err != nil {
				t.Fatalf("SaveGamification: %v", err)
			}

			got, err := p.GetGamification()
			if err != nil {
				t.Fatalf("GetGamification: %v", err)
			}
			if got.XP != 1200 || got.Level != 3 {
				t.Errorf("state mangled: xp=%d level=%d", got.XP, got.Level)
			}
			if len(got.Achievements) != 1 || got.Achievements[0].ID != "first_completion" {
				t.Errorf("achievements mangled: %+v", got.Achievements)
			}
		})
	}
}

func TestPerfectDayBonusMarker(t *testing.T) {
	for label, p := range providers(t) {
		t.Run(label, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init: %v", err)
			}
			defer p.Close()

			has, err := p.HasPerfectDayBonus("2026-03-01")
			if err != nil {
				t.Fatalf("HasPerfectDayBonus: %v", err)
			}
			if has {
				t.Error("bonus marker set before any award")
			}

			if err := p.SetPerfectDayBonus("2026-03-01"); err != nil {
				t.Fatalf("SetPerfectDayBonus: %v", err)
			}
			// Setting twice is a no-op
			if err := p.SetPerfectDayBonus("2026-03-01"); err != nil {
				t.Fatalf("SetPerfectDayBonus twice: %v", err)
			}

			has, err = p.HasPerfectDayBonus("2026-03-01")
			if err != nil {
				t.Fatalf("HasPerfectDayBonus: %v", err)
			}
			if !has {
				t.Error("bonus marker lost")
			}

			has, err = p.HasPerfectDayBonus("2026-03-02")
			if err != nil {
				t.Fatalf("HasPerfectDayBonus: %v", err)
			}
			if has {
				t.Error("marker leaked to another date")
			}
		})
	}
}

func TestLoadBeforeInit(t *testing.T) {
	for label, p := range providers(t) {
		t.Run(label, func(t *testing.T) {
			if err := p.Load(); err == nil {
				t.Error("expected error loading uninitialized storage")
			}
		})
	}
}

func TestDefaultRoutinesAreValid(t *testing.T) {
	seeds := DefaultRoutines()
	if len(seeds) != 15 {
		t.Fatalf("expected 15 default routines, got %d", len(seeds))
	}
	seen := map[string]bool{}
	for _, r := range seeds {
		if err := r.Validate(); err != nil {
			t.Errorf("default routine %q invalid: %v", r.Name, err)
		}
		if seen[r.ID] {
			t.Errorf("duplicate id %s", r.ID)
		}
		seen[r.ID] = true
	}
}
