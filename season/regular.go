package season

import (
	"fmt"
	"log/slog"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

const regularBestOf = 3

// regularWeeks is the length of a double round robin for the given team
// count, rounded up to even for the bye.
func regularWeeks(teamCount int) int {
	if teamCount%2 != 0 {
		teamCount++
	}
	return (teamCount - 1) * 2
}

func (m *Machine) dueRegular(w *models.World) []dueMatch {
	var due []dueMatch
	for _, l := range w.Leagues {
		for _, match := range l.WeekMatches(w.Week) {
			if !match.Played {
				due = append(due, dueMatch{match: match, counter: counterRegular, adjust: engine.NoAdjust})
			}
		}
	}
	return due
}

// stepRegular resolves the current week across every league and region,
// then either advances the week or closes the split.
func (m *Machine) stepRegular(w *models.World, res *StepResult) error {
	done, err := m.playDue(w, m.dueRegular(w), res)
	if err != nil || !done {
		return err
	}

	m.weeklyRecovery(w)
	m.emit(w, fmt.Sprintf("Week %d concluded", w.Week),
		fmt.Sprintf("All week %d series of the %s split are in the books.", w.Week, w.Split),
		"league office", "round", nil)

	human := w.HumanTeam()
	last := regularWeeks(len(m.topLeagueFor(w, human).Teams))
	if w.Week < last {
		w.Week++
		return nil
	}
	return m.startPlayoffs(w)
}

// topLeagueFor returns the human team's league, defaulting to the first
// league for headless worlds.
func (m *Machine) topLeagueFor(w *models.World, human *models.Team) *models.League {
	if human != nil {
		if l := w.League(human.Region, human.Tier); l != nil {
			return l
		}
	}
	return w.Leagues[0]
}

// weeklyRecovery applies the weekly player mutation and the recurring
// finance deltas: stamina recovers, form drifts, morale eases toward the
// middle, budgets move by income minus expense.
func (m *Machine) weeklyRecovery(w *models.World) {
	for _, l := range w.Leagues {
		for _, t := range l.Teams {
			t.Budget += t.WeeklyIncome - t.WeeklyExpense
			for _, p := range t.Roster {
				recoverPlayer(m.rng, p)
			}
		}
	}
	for _, p := range w.FreeAgents {
		recoverPlayer(m.rng, p)
	}
}

func recoverPlayer(rng engine.Rand, p *models.Player) {
	p.Stamina = clamp(p.Stamina + 10 + rng.Intn(6))
	p.Form = clamp(p.Form + rng.Intn(7) - 3)
	if p.Morale > 50 {
		p.Morale = clamp(p.Morale - 1)
	} else {
		p.Morale = clamp(p.Morale + 2)
	}
}

// finalizeStandings ranks every league and stamps team ranks, so later
// qualification gates read a consistent table.
func (m *Machine) finalizeStandings(w *models.World) {
	for _, l := range w.Leagues {
		ranked := engine.Rank(l.Teams)
		for i, t := range ranked {
			t.Rank = i + 1
		}
	}
}

func (m *Machine) logStandings(w *models.World, l *models.League) {
	for _, t := range engine.Rank(l.Teams) {
		m.log.Debug("standings",
			slog.String("region", l.Region),
			slog.Int("tier", int(l.Tier)),
			slog.String("team", t.Name),
			slog.Int("wins", t.Wins),
			slog.Int("losses", t.Losses),
			slog.Int("diff", t.RoundDiff()))
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
