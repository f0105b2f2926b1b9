package season

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// startPromotion sets up the promotion/relegation deciders: in every
// region the bottom two of the top tier defend their slots against the top
// two of the second tier in best-of-5 series. The climbing side gets the
// underdog power adjustment during these matches only. Winners play top
// tier next season; the swap itself is applied at rollover.
func (m *Machine) startPromotion(w *models.World) error {
	m.finalizeStandings(w)
	w.PromotionTies = nil
	for _, region := range Regions {
		top := w.League(region, models.TierTop)
		second := w.League(region, models.TierSecond)
		if top == nil || second == nil {
			continue
		}
		topRanked := engine.Rank(top.Teams)
		secondRanked := engine.Rank(second.Teams)
		if len(topRanked) < 2 || len(secondRanked) < 2 {
			continue
		}
		n := len(topRanked)
		// Last defends against the second-tier champion, second-last
		// against the runner-up. Home side is the incumbent.
		pairs := [][2]*models.Team{
			{topRanked[n-1], secondRanked[0]},
			{topRanked[n-2], secondRanked[1]},
		}
		for _, pair := range pairs {
			w.PromotionTies = append(w.PromotionTies, &models.PromotionTie{
				Region: region,
				Match:  w.NewMatch(pair[0].ID, pair[1].ID, w.Week, 5, "Promotion Decider"),
			})
		}
	}
	w.Phase = models.PhasePromotion
	m.emit(w, "Promotion deciders begin",
		"Second-tier challengers fight for top-tier slots.",
		"league office", "phase", nil)
	return nil
}

func (m *Machine) duePromotion(w *models.World) []dueMatch {
	var due []dueMatch
	for _, tie := range w.PromotionTies {
		if !tie.Match.Played {
			due = append(due, dueMatch{match: tie.Match, adjust: engine.PromotionAdjust})
		}
	}
	return due
}

func (m *Machine) stepPromotion(w *models.World, res *StepResult) error {
	done, err := m.playDue(w, m.duePromotion(w), res)
	if err != nil || !done {
		return err
	}

	for _, tie := range w.PromotionTies {
		winner, err := w.MustTeam(tie.Match.WinnerID())
		if err != nil {
			return err
		}
		loser, err := w.MustTeam(tie.Match.LoserID())
		if err != nil {
			return err
		}
		m.emit(w, fmt.Sprintf("%s secure a top-tier slot in %s", winner.Name, tie.Region),
			fmt.Sprintf("%s will play the top tier next season; %s drop down.", winner.Name, loser.Name),
			"league office", "promotion", map[string]string{"region": tie.Region, "up": winner.Name, "down": loser.Name})
		if tie.Match.Involves(w.HumanTeamID) {
			if winner.ID == w.HumanTeamID {
				m.notify.Notify("You secured a top-tier slot for next season!", "success")
			} else {
				m.notify.Notify("You lost the promotion decider.", "error")
			}
		}
	}

	// Ties stay on the world until rollover applies the swaps.
	w.Phase = models.PhaseSeasonEnd
	m.emit(w, "Off-season", "The transfer window is open ahead of the world championship.", "league office", "phase", nil)
	return nil
}

// applyPromotion moves decider winners into the top tier and losers into
// the second tier. Both tiers keep their original team counts.
func (m *Machine) applyPromotion(w *models.World) error {
	for _, tie := range w.PromotionTies {
		winner, err := w.MustTeam(tie.Match.WinnerID())
		if err != nil {
			return fmt.Errorf("promotion swap: %w", err)
		}
		loser, err := w.MustTeam(tie.Match.LoserID())
		if err != nil {
			return fmt.Errorf("promotion swap: %w", err)
		}
		if winner.Tier == models.TierTop {
			continue // incumbent held the slot
		}
		top := w.League(tie.Region, models.TierTop)
		second := w.League(tie.Region, models.TierSecond)
		removeTeam(second, winner.ID)
		removeTeam(top, loser.ID)
		winner.Tier = models.TierTop
		loser.Tier = models.TierSecond
		top.Teams = append(top.Teams, winner)
		second.Teams = append(second.Teams, loser)
	}
	w.PromotionTies = nil
	return nil
}

func removeTeam(l *models.League, teamID int) {
	for i, t := range l.Teams {
		if t.ID == teamID {
			l.Teams = append(l.Teams[:i], l.Teams[i+1:]...)
			return
		}
	}
}
