package season

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// startInvitational opens the mid-season international event. Only the top
// four of each major region's top tier qualify; the sixteen teams are
// drawn into two groups of eight playing a single round robin, with the
// top four per group advancing to a knockout.
func (m *Machine) startInvitational(w *models.World) error {
	var qualified []int
	for _, region := range MajorRegions {
		l := w.League(region, models.TierTop)
		if l == nil {
			return fmt.Errorf("season: major region %q has no top-tier league", region)
		}
		ranked := engine.Rank(l.Teams)
		for i := 0; i < 4 && i < len(ranked); i++ {
			qualified = append(qualified, ranked[i].ID)
			ranked[i].ResetIntlCounters()
		}
	}

	engine.Shuffle(m.rng, qualified)
	half := len(qualified) / 2
	inv := &models.Invitational{Groups: [][]int{qualified[:half], qualified[half:]}}
	for _, group := range inv.Groups {
		var matches []*models.Match
		for _, f := range engine.SingleRoundRobin(group) {
			matches = append(matches, w.NewMatch(f.HomeID, f.AwayID, w.Week, 1, fmt.Sprintf("Group Round %d", f.Round)))
		}
		inv.GroupMatches = append(inv.GroupMatches, matches)
	}
	w.Invitational = inv
	w.Phase = models.PhaseInvitational
	m.emit(w, "Mid-Season Invitational begins",
		"Sixteen teams from the four major regions enter the group stage.",
		"event desk", "phase", nil)
	if containsInt(qualified, w.HumanTeamID) {
		m.notify.Notify("Your team qualified for the Mid-Season Invitational!", "success")
	}
	return nil
}

func (m *Machine) dueInvitational(w *models.World) []dueMatch {
	inv := w.Invitational
	if inv == nil {
		return nil
	}
	var due []dueMatch
	for _, group := range inv.GroupMatches {
		for _, match := range group {
			if !match.Played {
				due = append(due, dueMatch{match: match, counter: counterIntl, adjust: engine.NoAdjust})
			}
		}
	}
	for _, match := range append(append([]*models.Match{}, inv.Quarters...), inv.Semis...) {
		if !match.Played {
			due = append(due, dueMatch{match: match, adjust: engine.NoAdjust})
		}
	}
	if inv.Final != nil && !inv.Final.Played {
		due = append(due, dueMatch{match: inv.Final, adjust: engine.NoAdjust})
	}
	return due
}

func (m *Machine) stepInvitational(w *models.World, res *StepResult) error {
	inv := w.Invitational
	if inv == nil {
		return fmt.Errorf("season: invitational phase with no artifact")
	}
	done, err := m.playDue(w, m.dueInvitational(w), res)
	if err != nil || !done {
		return err
	}

	switch {
	case inv.Quarters == nil:
		return m.seedInvitationalKnockout(w)
	case inv.Semis == nil:
		inv.Semis = []*models.Match{
			w.NewMatch(inv.Quarters[0].WinnerID(), inv.Quarters[1].WinnerID(), w.Week, 5, "Semifinal"),
			w.NewMatch(inv.Quarters[2].WinnerID(), inv.Quarters[3].WinnerID(), w.Week, 5, "Semifinal"),
		}
		return nil
	case inv.Final == nil:
		inv.Final = w.NewMatch(inv.Semis[0].WinnerID(), inv.Semis[1].WinnerID(), w.Week, 7, "Final")
		return nil
	default:
		return m.finishInvitational(w)
	}
}

// seedInvitationalKnockout ranks each group on international counters and
// pairs quarterfinals across groups: A1vB4, A3vB2, B1vA4, B3vA2.
func (m *Machine) seedInvitationalKnockout(w *models.World) error {
	inv := w.Invitational
	tops := make([][]*models.Team, 2)
	for gi, group := range inv.Groups {
		var teams []*models.Team
		for _, id := range group {
			t, err := w.MustTeam(id)
			if err != nil {
				return err
			}
			teams = append(teams, t)
		}
		ranked := engine.RankIntl(teams)
		if len(ranked) < 4 {
			return fmt.Errorf("season: invitational group %d has %d teams, need 4", gi, len(ranked))
		}
		tops[gi] = ranked[:4]
	}
	a, b := tops[0], tops[1]
	inv.Quarters = []*models.Match{
		w.NewMatch(a[0].ID, b[3].ID, w.Week, 5, "Quarterfinal"),
		w.NewMatch(a[2].ID, b[1].ID, w.Week, 5, "Quarterfinal"),
		w.NewMatch(b[0].ID, a[3].ID, w.Week, 5, "Quarterfinal"),
		w.NewMatch(b[2].ID, a[1].ID, w.Week, 5, "Quarterfinal"),
	}
	m.emit(w, "Invitational knockout set",
		"The top four of each group advance to the quarterfinals.",
		"event desk", "round", nil)
	return nil
}

func (m *Machine) finishInvitational(w *models.World) error {
	inv := w.Invitational
	champ, err := w.MustTeam(inv.Final.WinnerID())
	if err != nil {
		return err
	}
	placements := map[int]Placement{
		inv.Final.WinnerID():   PlacementChampion,
		inv.Final.LoserID():    PlacementRunnerUp,
		inv.Semis[0].LoserID(): PlacementSemifinal,
		inv.Semis[1].LoserID(): PlacementSemifinal,
	}
	for _, q := range inv.Quarters {
		placements[q.LoserID()] = PlacementQuarterfinal
	}
	for _, group := range inv.Groups {
		for _, id := range group {
			if _, placed := placements[id]; !placed {
				placements[id] = PlacementGroupStage
			}
		}
	}
	trophy := fmt.Sprintf("%d Mid-Season Invitational Champion", w.Year)
	if err := m.distribute(w, CompInvitational, placements, trophy); err != nil {
		return err
	}
	m.emit(w, fmt.Sprintf("%s win the Mid-Season Invitational", champ.Name),
		fmt.Sprintf("%s lift the trophy after a %d-%d final.", champ.Name, inv.Final.HomeScore, inv.Final.AwayScore),
		"event desk", "champion", map[string]string{"team": champ.Name})
	if champ.ID == w.HumanTeamID {
		m.notify.Notify("You are the Mid-Season Invitational champions!", "success")
	}

	w.Invitational = nil
	w.Phase = models.PhaseMidSeasonBreak
	m.emit(w, "Mid-season break", "The transfer window is open until the summer split.", "league office", "phase", nil)
	return nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
