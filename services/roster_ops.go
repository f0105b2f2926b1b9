package services

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// Roster and finance operations on the human team. These are the
// user-facing business rules: each validates fully and either mutates the
// world or returns a sentinel error with nothing changed.

const (
	rosterMinimum    = 5
	staffUpgradeBase = 150_000
)

// transferWindowOpen reports whether roster moves are allowed in the
// current phase.
func transferWindowOpen(w *models.World) bool {
	return w.Phase == models.PhaseMidSeasonBreak || w.Phase == models.PhaseSeasonEnd
}

// SetLineup reorders the human roster so the five given players, one per
// lane in the given order, occupy the active slots.
func SetLineup(w *models.World, playerIDs []int) error {
	team := w.HumanTeam()
	if team == nil {
		return ErrNotFound
	}
	if len(playerIDs) != 5 {
		return ErrInvalidLineup
	}
	seen := make(map[int]bool, 5)
	var lineup []*models.Player
	for _, id := range playerIDs {
		if seen[id] {
			return ErrInvalidLineup
		}
		seen[id] = true
		found := false
		for _, p := range team.Roster {
			if p.ID == id {
				lineup = append(lineup, p)
				found = true
				break
			}
		}
		if !found {
			return ErrInvalidLineup
		}
	}
	var bench []*models.Player
	for _, p := range team.Roster {
		if !seen[p.ID] {
			bench = append(bench, p)
		}
	}
	team.Roster = append(lineup, bench...)
	return nil
}

// ReleasePlayer terminates a contract and moves the player to the
// free-agent pool. Only allowed inside a transfer window and never below
// the roster minimum.
func ReleasePlayer(w *models.World, playerID int) error {
	team := w.HumanTeam()
	if team == nil {
		return ErrNotFound
	}
	if !transferWindowOpen(w) {
		return ErrTransferWindowShut
	}
	idx := -1
	for i, p := range team.Roster {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotOnYourTeam
	}
	if len(team.Roster) <= rosterMinimum {
		return ErrRosterMinimum
	}
	p := team.Roster[idx]
	team.Roster = append(team.Roster[:idx], team.Roster[idx+1:]...)
	p.Contract = nil
	w.FreeAgents = append(w.FreeAgents, p)
	w.PushNews(fmt.Sprintf("%s released by %s", p.Name, team.Name),
		fmt.Sprintf("%s enters free agency.", p.Name),
		"transfer desk", "transfer", map[string]string{"player": p.Name, "team": team.Name})
	return nil
}

// SignPlayer signs a free agent for the asking salary. The signing fee is
// one year of salary up front.
func SignPlayer(w *models.World, playerID int) error {
	team := w.HumanTeam()
	if team == nil {
		return ErrNotFound
	}
	if !transferWindowOpen(w) {
		return ErrTransferWindowShut
	}
	for i, p := range w.FreeAgents {
		if p.ID != playerID {
			continue
		}
		salary := askingSalary(p)
		fee := salary * 52
		if team.Budget < fee {
			return ErrInsufficientBudget
		}
		team.Budget -= fee
		w.FreeAgents = append(w.FreeAgents[:i], w.FreeAgents[i+1:]...)
		p.Contract = &models.Contract{TeamID: team.ID, Salary: salary, EndYear: w.Year + 2}
		team.Roster = append(team.Roster, p)
		w.PushNews(fmt.Sprintf("%s sign %s", team.Name, p.Name),
			fmt.Sprintf("%s joins on a deal through season %d.", p.Name, w.Year+2),
			"transfer desk", "transfer", map[string]string{"player": p.Name, "team": team.Name})
		return nil
	}
	if w.PlayerByID(playerID) != nil {
		return ErrNotFreeAgent
	}
	return ErrNotFound
}

// askingSalary prices a free agent off skill and potential.
func askingSalary(p *models.Player) int {
	return 2_000 + (p.Mechanics+p.Tactics)*60 + p.Potential*400
}

// UpgradeStaff raises the support-staff level; cost grows with each level.
func UpgradeStaff(w *models.World) error {
	team := w.HumanTeam()
	if team == nil {
		return ErrNotFound
	}
	cost := staffUpgradeBase * (team.StaffLevel + 1)
	if team.Budget < cost {
		return ErrInsufficientBudget
	}
	team.Budget -= cost
	team.StaffLevel++
	return nil
}
