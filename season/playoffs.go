package season

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// startPlayoffs closes the regular season: final standings are stamped and
// every league, both tiers of every region, gets a top-4 single-elimination
// bracket (1v4 and 2v3 best-of-5 semifinals, best-of-7 final). Leagues
// without four teams are left out.
func (m *Machine) startPlayoffs(w *models.World) error {
	m.finalizeStandings(w)
	w.Playoffs = nil
	for _, l := range w.Leagues {
		if len(l.Teams) < 4 {
			continue
		}
		ranked := engine.Rank(l.Teams)
		b := &models.PlayoffBracket{Region: l.Region, Tier: l.Tier}
		b.Semis = []*models.Match{
			w.NewMatch(ranked[0].ID, ranked[3].ID, w.Week, 5, "Semifinal"),
			w.NewMatch(ranked[1].ID, ranked[2].ID, w.Week, 5, "Semifinal"),
		}
		w.Playoffs = append(w.Playoffs, b)
		m.logStandings(w, l)
	}
	w.Phase = models.PhasePlayoffs
	m.emit(w, fmt.Sprintf("%s split playoffs begin", w.Split),
		"The top four of every region enter the bracket.",
		"league office", "phase", nil)
	return nil
}

func (m *Machine) duePlayoffs(w *models.World) []dueMatch {
	var due []dueMatch
	for _, b := range w.Playoffs {
		for _, s := range b.Semis {
			if !s.Played {
				due = append(due, dueMatch{match: s, adjust: engine.NoAdjust})
			}
		}
		if b.Final != nil && !b.Final.Played {
			due = append(due, dueMatch{match: b.Final, adjust: engine.NoAdjust})
		}
	}
	return due
}

// stepPlayoffs resolves the open bracket round everywhere, creates finals
// once both semifinals of a bracket are in, and hands the split over when
// every final is played.
func (m *Machine) stepPlayoffs(w *models.World, res *StepResult) error {
	done, err := m.playDue(w, m.duePlayoffs(w), res)
	if err != nil || !done {
		return err
	}

	created := false
	for _, b := range w.Playoffs {
		if b.Final == nil && b.Semis[0].Played && b.Semis[1].Played {
			b.Final = w.NewMatch(b.Semis[0].WinnerID(), b.Semis[1].WinnerID(), w.Week, 7, "Final")
			created = true
		}
	}
	if created {
		return nil
	}

	for _, b := range w.Playoffs {
		if b.Final == nil || !b.Final.Played {
			return nil
		}
	}
	return m.finishPlayoffs(w)
}

func (m *Machine) finishPlayoffs(w *models.World) error {
	trophy := fmt.Sprintf("%d %s Playoff Champion", w.Year, w.Split)
	for _, b := range w.Playoffs {
		champ, err := w.MustTeam(b.Final.WinnerID())
		if err != nil {
			return err
		}
		placements := map[int]Placement{
			b.Final.WinnerID():   PlacementChampion,
			b.Final.LoserID():    PlacementRunnerUp,
			b.Semis[0].LoserID(): PlacementSemifinal,
			b.Semis[1].LoserID(): PlacementSemifinal,
		}
		scope := b.Region
		if b.Tier == models.TierSecond {
			scope = b.Region + " second division"
		}
		if err := m.distribute(w, CompPlayoffs, placements, fmt.Sprintf("%s (%s)", trophy, scope)); err != nil {
			return err
		}
		m.emit(w, fmt.Sprintf("%s are the %s champions of %s", champ.Name, w.Split, scope),
			fmt.Sprintf("%s take the final %d-%d.", champ.Name, b.Final.HomeScore, b.Final.AwayScore),
			"league office", "champion", map[string]string{"region": b.Region, "team": champ.Name})
	}
	w.Playoffs = nil

	if w.Split == models.SplitSpring {
		return m.startInvitational(w)
	}
	return m.startPromotion(w)
}
