package season

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// startChampionship seeds the end-of-season world championship: the top
// two of every region plus third and fourth place from the two designated
// regions, sixteen teams into a Swiss stage followed by a knockout.
func (m *Machine) startChampionship(w *models.World) error {
	var ids []int
	for _, region := range Regions {
		l := w.League(region, models.TierTop)
		if l == nil {
			return fmt.Errorf("season: region %q has no top-tier league", region)
		}
		ranked := engine.Rank(l.Teams)
		depth := 2
		if containsString(ChampionshipDoubleSlotRegions, region) {
			depth = 4
		}
		for i := 0; i < depth && i < len(ranked); i++ {
			ids = append(ids, ranked[i].ID)
			ranked[i].ResetSwissCounters()
		}
	}

	ch := &models.Championship{TeamIDs: ids}
	w.Championship = ch
	w.Phase = models.PhaseChampionship
	if err := m.openSwissRound(w); err != nil {
		return err
	}
	m.emit(w, "World Championship begins",
		fmt.Sprintf("%d teams enter the Swiss stage.", len(ids)),
		"event desk", "phase", nil)
	if containsInt(ids, w.HumanTeamID) {
		m.notify.Notify("Your team qualified for the World Championship!", "success")
	}
	return nil
}

// swissRecords builds the engine view of the Swiss table from team
// counters, in seeding (qualification) order.
func (m *Machine) swissRecords(w *models.World) ([]engine.SwissRecord, error) {
	ch := w.Championship
	recs := make([]engine.SwissRecord, 0, len(ch.TeamIDs))
	for _, id := range ch.TeamIDs {
		t, err := w.MustTeam(id)
		if err != nil {
			return nil, err
		}
		recs = append(recs, engine.SwissRecord{
			TeamID:    t.ID,
			Wins:      t.SwissWins,
			Losses:    t.SwissLosses,
			Opponents: t.SwissOpponents,
		})
	}
	return recs, nil
}

func (m *Machine) openSwissRound(w *models.World) error {
	ch := w.Championship
	recs, err := m.swissRecords(w)
	if err != nil {
		return err
	}
	ch.SwissRound++
	ch.RoundOpen = nil
	for _, pair := range engine.SwissPairings(m.rng, recs) {
		ch.RoundOpen = append(ch.RoundOpen,
			w.NewMatch(pair[0], pair[1], w.Week, 3, fmt.Sprintf("Swiss Round %d", ch.SwissRound)))
	}
	return nil
}

func (m *Machine) dueChampionship(w *models.World) []dueMatch {
	ch := w.Championship
	if ch == nil {
		return nil
	}
	var due []dueMatch
	if !ch.SwissDone {
		for _, match := range ch.RoundOpen {
			if !match.Played {
				due = append(due, dueMatch{match: match, counter: counterSwiss, adjust: engine.NoAdjust})
			}
		}
		return due
	}
	for _, match := range append(append([]*models.Match{}, ch.Quarters...), ch.Semis...) {
		if !match.Played {
			due = append(due, dueMatch{match: match, adjust: engine.NoAdjust})
		}
	}
	if ch.Final != nil && !ch.Final.Played {
		due = append(due, dueMatch{match: ch.Final, adjust: engine.NoAdjust})
	}
	return due
}

func (m *Machine) stepChampionship(w *models.World, res *StepResult) error {
	ch := w.Championship
	if ch == nil {
		return fmt.Errorf("season: championship phase with no artifact")
	}
	done, err := m.playDue(w, m.dueChampionship(w), res)
	if err != nil || !done {
		return err
	}

	if !ch.SwissDone {
		recs, err := m.swissRecords(w)
		if err != nil {
			return err
		}
		if !engine.SwissFinished(recs, ch.SwissRound) {
			return m.openSwissRound(w)
		}
		return m.seedChampionshipKnockout(w, recs)
	}

	switch {
	case ch.Semis == nil:
		ch.Semis = []*models.Match{
			w.NewMatch(ch.Quarters[0].WinnerID(), ch.Quarters[1].WinnerID(), w.Week, 5, "Semifinal"),
			w.NewMatch(ch.Quarters[2].WinnerID(), ch.Quarters[3].WinnerID(), w.Week, 5, "Semifinal"),
		}
		return nil
	case ch.Final == nil:
		ch.Final = w.NewMatch(ch.Semis[0].WinnerID(), ch.Semis[1].WinnerID(), w.Week, 7, "Final")
		return nil
	default:
		return m.finishChampionship(w)
	}
}

// seedChampionshipKnockout closes the Swiss stage and pairs quarterfinals
// 1v8, 4v5, 2v7, 3v6 from the Swiss seeding.
func (m *Machine) seedChampionshipKnockout(w *models.World, recs []engine.SwissRecord) error {
	ch := w.Championship
	ch.SwissDone = true
	ch.RoundOpen = nil
	q := engine.SwissQualified(recs)
	if len(q) < 8 {
		return fmt.Errorf("season: swiss stage qualified %d teams, need 8", len(q))
	}
	ch.Quarters = []*models.Match{
		w.NewMatch(q[0], q[7], w.Week, 5, "Quarterfinal"),
		w.NewMatch(q[3], q[4], w.Week, 5, "Quarterfinal"),
		w.NewMatch(q[1], q[6], w.Week, 5, "Quarterfinal"),
		w.NewMatch(q[2], q[5], w.Week, 5, "Quarterfinal"),
	}
	m.emit(w, "Swiss stage complete",
		"Eight teams advance to the championship knockout.",
		"event desk", "round", nil)
	return nil
}

func (m *Machine) finishChampionship(w *models.World) error {
	ch := w.Championship
	champ, err := w.MustTeam(ch.Final.WinnerID())
	if err != nil {
		return err
	}
	placements := map[int]Placement{
		ch.Final.WinnerID():   PlacementChampion,
		ch.Final.LoserID():    PlacementRunnerUp,
		ch.Semis[0].LoserID(): PlacementSemifinal,
		ch.Semis[1].LoserID(): PlacementSemifinal,
	}
	for _, q := range ch.Quarters {
		placements[q.LoserID()] = PlacementQuarterfinal
	}
	for _, id := range ch.TeamIDs {
		if _, placed := placements[id]; !placed {
			placements[id] = PlacementGroupStage
		}
	}
	trophy := fmt.Sprintf("%d World Champion", w.Year)
	if err := m.distribute(w, CompChampionship, placements, trophy); err != nil {
		return err
	}
	m.emit(w, fmt.Sprintf("%s are the world champions", champ.Name),
		fmt.Sprintf("%s win the grand final %d-%d.", champ.Name, ch.Final.HomeScore, ch.Final.AwayScore),
		"event desk", "champion", map[string]string{"team": champ.Name})
	if champ.ID == w.HumanTeamID {
		m.notify.Notify("World champions!", "success")
	}

	w.Championship = nil
	return m.rollover(w)
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
