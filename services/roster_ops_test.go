package services

import (
	"errors"
	"testing"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
	"github.com/tylacb11-spec/lienquan-sub000/season"
)

func testWorld(t *testing.T, phase models.Phase) *models.World {
	t.Helper()
	w, err := season.GenerateWorld(engine.NewSeededRand(8), "EU", "Ops United")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}
	w.Phase = phase
	return w
}

func TestSetLineupReordersRoster(t *testing.T) {
	w := testWorld(t, models.PhaseRegularSeason)
	team := w.HumanTeam()
	if len(team.Roster) < 6 {
		t.Fatalf("want a sub on the generated roster, got %d players", len(team.Roster))
	}

	// Swap the sub into the last lineup slot.
	ids := make([]int, 5)
	for i := 0; i < 4; i++ {
		ids[i] = team.Roster[i].ID
	}
	ids[4] = team.Roster[5].ID

	if err := SetLineup(w, ids); err != nil {
		t.Fatalf("SetLineup: %v", err)
	}
	lineup := team.Lineup()
	for i, id := range ids {
		if lineup[i].ID != id {
			t.Fatalf("lineup slot %d holds player %d, want %d", i, lineup[i].ID, id)
		}
	}
	if len(team.Roster) != 6 {
		t.Fatalf("roster size changed to %d", len(team.Roster))
	}
}

func TestSetLineupRejectsBadInput(t *testing.T) {
	w := testWorld(t, models.PhaseRegularSeason)
	team := w.HumanTeam()

	short := []int{team.Roster[0].ID}
	if err := SetLineup(w, short); !errors.Is(err, ErrInvalidLineup) {
		t.Errorf("short lineup: got %v, want ErrInvalidLineup", err)
	}

	dup := []int{team.Roster[0].ID, team.Roster[0].ID, team.Roster[1].ID, team.Roster[2].ID, team.Roster[3].ID}
	if err := SetLineup(w, dup); !errors.Is(err, ErrInvalidLineup) {
		t.Errorf("duplicate id: got %v, want ErrInvalidLineup", err)
	}

	foreign := []int{-1, team.Roster[1].ID, team.Roster[2].ID, team.Roster[3].ID, team.Roster[4].ID}
	if err := SetLineup(w, foreign); !errors.Is(err, ErrInvalidLineup) {
		t.Errorf("foreign id: got %v, want ErrInvalidLineup", err)
	}
}

func TestReleasePlayerRules(t *testing.T) {
	w := testWorld(t, models.PhaseRegularSeason)
	team := w.HumanTeam()
	target := team.Roster[len(team.Roster)-1]

	if err := ReleasePlayer(w, target.ID); !errors.Is(err, ErrTransferWindowShut) {
		t.Fatalf("closed window: got %v, want ErrTransferWindowShut", err)
	}

	w.Phase = models.PhaseMidSeasonBreak
	before := len(team.Roster)
	if err := ReleasePlayer(w, target.ID); err != nil {
		t.Fatalf("ReleasePlayer: %v", err)
	}
	if len(team.Roster) != before-1 {
		t.Fatalf("roster size %d after release, want %d", len(team.Roster), before-1)
	}
	if target.Contract != nil {
		t.Error("released player still under contract")
	}
	found := false
	for _, p := range w.FreeAgents {
		if p.ID == target.ID {
			found = true
		}
	}
	if !found {
		t.Error("released player not in the free-agent pool")
	}

	// Roster is now at the minimum; another release must refuse.
	if err := ReleasePlayer(w, team.Roster[0].ID); !errors.Is(err, ErrRosterMinimum) {
		t.Fatalf("at minimum: got %v, want ErrRosterMinimum", err)
	}

	if err := ReleasePlayer(w, target.ID); !errors.Is(err, ErrNotOnYourTeam) {
		t.Fatalf("already released: got %v, want ErrNotOnYourTeam", err)
	}
}

func TestSignPlayerRules(t *testing.T) {
	w := testWorld(t, models.PhaseSeasonEnd)
	team := w.HumanTeam()
	agent := w.FreeAgents[0]

	team.Budget = 100_000_000
	before := len(team.Roster)
	if err := SignPlayer(w, agent.ID); err != nil {
		t.Fatalf("SignPlayer: %v", err)
	}
	if len(team.Roster) != before+1 {
		t.Fatalf("roster size %d after signing, want %d", len(team.Roster), before+1)
	}
	if agent.Contract == nil || agent.Contract.TeamID != team.ID || agent.Contract.EndYear != w.Year+2 {
		t.Fatalf("bad contract after signing: %+v", agent.Contract)
	}
	if team.Budget >= 100_000_000 {
		t.Error("signing fee not charged")
	}

	if err := SignPlayer(w, agent.ID); !errors.Is(err, ErrNotFreeAgent) {
		t.Fatalf("re-sign rostered player: got %v, want ErrNotFreeAgent", err)
	}

	broke := w.FreeAgents[0]
	team.Budget = 0
	if err := SignPlayer(w, broke.ID); !errors.Is(err, ErrInsufficientBudget) {
		t.Fatalf("no budget: got %v, want ErrInsufficientBudget", err)
	}

	w.Phase = models.PhasePlayoffs
	team.Budget = 100_000_000
	if err := SignPlayer(w, broke.ID); !errors.Is(err, ErrTransferWindowShut) {
		t.Fatalf("closed window: got %v, want ErrTransferWindowShut", err)
	}

	w.Phase = models.PhaseSeasonEnd
	if err := SignPlayer(w, 999_999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown player: got %v, want ErrNotFound", err)
	}
}

func TestUpgradeStaffCostScales(t *testing.T) {
	w := testWorld(t, models.PhaseRegularSeason)
	team := w.HumanTeam()
	team.StaffLevel = 1
	team.Budget = 300_000

	if err := UpgradeStaff(w); err != nil {
		t.Fatalf("UpgradeStaff: %v", err)
	}
	if team.StaffLevel != 2 {
		t.Fatalf("staff level %d, want 2", team.StaffLevel)
	}
	if team.Budget != 0 {
		t.Fatalf("budget %d after a level-2 upgrade, want 0", team.Budget)
	}

	if err := UpgradeStaff(w); !errors.Is(err, ErrInsufficientBudget) {
		t.Fatalf("no budget: got %v, want ErrInsufficientBudget", err)
	}
}
