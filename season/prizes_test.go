package season

import (
	"testing"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

func TestDistributeCreditsAndTrophies(t *testing.T) {
	rng := engine.NewSeededRand(2)
	w, err := GenerateWorld(rng, "CN", "Prize Club")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}
	m := NewMachine(rng, nil, nil, nil)

	league := w.League("CN", models.TierTop)
	champ, runner, semi := league.Teams[0], league.Teams[1], league.Teams[2]
	budgets := map[int]int{champ.ID: champ.Budget, runner.ID: runner.Budget, semi.ID: semi.Budget}

	placements := map[int]Placement{
		champ.ID:  PlacementChampion,
		runner.ID: PlacementRunnerUp,
		semi.ID:   PlacementSemifinal,
	}
	trophy := "2024 Spring CN Playoff Champion"
	if err := m.distribute(w, CompPlayoffs, placements, trophy); err != nil {
		t.Fatalf("distribute: %v", err)
	}

	if got := champ.Budget - budgets[champ.ID]; got != 500_000 {
		t.Errorf("champion credited %d, want 500000", got)
	}
	if got := runner.Budget - budgets[runner.ID]; got != 250_000 {
		t.Errorf("runner-up credited %d, want 250000", got)
	}
	if got := semi.Budget - budgets[semi.ID]; got != 100_000 {
		t.Errorf("semifinalist credited %d, want 100000", got)
	}

	if len(champ.Trophies) != 1 || champ.Trophies[0] != trophy {
		t.Fatalf("champion trophies %v, want [%s]", champ.Trophies, trophy)
	}
	if len(runner.Trophies) != 0 {
		t.Errorf("runner-up got a trophy: %v", runner.Trophies)
	}
	for _, p := range champ.Roster {
		if len(p.Achievements) != 1 || p.Achievements[0] != trophy {
			t.Fatalf("player %s achievements %v, want [%s]", p.Name, p.Achievements, trophy)
		}
	}

	// Replaying the same award must not duplicate the trophy.
	if err := m.distribute(w, CompPlayoffs, map[int]Placement{champ.ID: PlacementChampion}, trophy); err != nil {
		t.Fatalf("second distribute: %v", err)
	}
	if len(champ.Trophies) != 1 {
		t.Errorf("trophy duplicated: %v", champ.Trophies)
	}
	for _, p := range champ.Roster {
		if len(p.Achievements) != 1 {
			t.Fatalf("achievement duplicated for %s: %v", p.Name, p.Achievements)
		}
	}
}

func TestDistributeUnknownCompetition(t *testing.T) {
	rng := engine.NewSeededRand(3)
	w, err := GenerateWorld(rng, "NA", "Err Club")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}
	m := NewMachine(rng, nil, nil, nil)
	if err := m.distribute(w, Competition("exhibition"), nil, "x"); err == nil {
		t.Fatal("expected an error for an unknown competition")
	}
}
