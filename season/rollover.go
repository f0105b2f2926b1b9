package season

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// stepMidSeasonBreak closes the spring break and opens the summer split
// with fresh counters and fresh schedules. The break itself is a transfer
// window; the host can sit in it as long as it likes before advancing.
func (m *Machine) stepMidSeasonBreak(w *models.World, _ *StepResult) error {
	for _, l := range w.Leagues {
		for _, t := range l.Teams {
			t.ResetSeasonCounters()
			for _, p := range t.Roster {
				p.Stamina = clamp(p.Stamina + 30)
			}
		}
	}
	w.Split = models.SplitSummer
	w.Week = 1
	m.rebuildSchedules(w)
	w.Phase = models.PhaseRegularSeason
	m.emit(w, "Summer split begins", "Fresh standings, fresh schedule.", "league office", "phase", nil)
	return nil
}

// stepSeasonEnd leaves the off-season transfer window and starts the world
// championship.
func (m *Machine) stepSeasonEnd(w *models.World, _ *StepResult) error {
	return m.startChampionship(w)
}

// rollover turns the year over after the world championship: promotion
// swaps apply, contracts expire, the hero meta shifts, every counter
// resets and the next spring split is scheduled. There is no terminal
// state; the machine always lands back in a fresh regular season.
func (m *Machine) rollover(w *models.World) error {
	if err := m.applyPromotion(w); err != nil {
		return err
	}

	w.Year++
	m.expireContracts(w)
	m.metaShift(w)
	m.growPlayers(w)

	for _, l := range w.Leagues {
		for _, t := range l.Teams {
			t.ResetSeasonCounters()
			t.ResetSwissCounters()
			t.ResetIntlCounters()
			for _, p := range t.Roster {
				p.Stamina = 100
				p.Form = clamp(45 + m.rng.Intn(21))
				p.Morale = clamp(60 + m.rng.Intn(21))
			}
		}
	}

	w.Split = models.SplitSpring
	w.Week = 1
	m.rebuildSchedules(w)
	w.Phase = models.PhaseRegularSeason
	m.emit(w, fmt.Sprintf("Season %d begins", w.Year),
		"Promotion and relegation are settled and the spring split is scheduled.",
		"league office", "phase", nil)
	return nil
}

// rebuildSchedules regenerates every league's double round robin for the
// current split.
func (m *Machine) rebuildSchedules(w *models.World) {
	for _, l := range w.Leagues {
		ids := make([]int, len(l.Teams))
		for i, t := range l.Teams {
			ids[i] = t.ID
		}
		l.Schedule = nil
		for _, f := range engine.DoubleRoundRobin(ids) {
			l.Schedule = append(l.Schedule, w.NewMatch(f.HomeID, f.AwayID, f.Round, regularBestOf, ""))
		}
	}
}

// expireContracts releases players whose contracts ran out, as long as the
// roster keeps its minimum; otherwise the club renews on the spot. The
// human team renews automatically too: forcing a roster hole on load-in
// would be a business decision, not an engine one.
func (m *Machine) expireContracts(w *models.World) {
	for _, l := range w.Leagues {
		for _, t := range l.Teams {
			kept := t.Roster[:0]
			for _, p := range t.Roster {
				if p.Contract == nil || p.Contract.EndYear >= w.Year {
					kept = append(kept, p)
					continue
				}
				if len(t.Roster) <= 5 || t.ID == w.HumanTeamID || m.rng.Float64() < 0.7 {
					p.Contract.EndYear = w.Year + 1 + m.rng.Intn(2)
					kept = append(kept, p)
					continue
				}
				p.Contract = nil
				w.FreeAgents = append(w.FreeAgents, p)
				m.emit(w, fmt.Sprintf("%s becomes a free agent", p.Name),
					fmt.Sprintf("%s leaves %s as their contract expires.", p.Name, t.Name),
					"transfer desk", "transfer", map[string]string{"player": p.Name, "team": t.Name})
			}
			t.Roster = kept
		}
	}
}

// metaShift is the yearly global hero rebalance: each hero's scalars drift
// a few points. This is the only mutation heroes ever see.
func (m *Machine) metaShift(w *models.World) {
	for _, h := range w.Heroes {
		h.Mechanics = clampMeta(h.Mechanics + m.rng.Intn(11) - 5)
		h.Tactics = clampMeta(h.Tactics + m.rng.Intn(11) - 5)
	}
	m.emit(w, "Patch day", "The yearly balance patch reshuffles the hero meta.", "balance team", "meta", nil)
}

// growPlayers applies off-season development scaled by potential.
func (m *Machine) growPlayers(w *models.World) {
	grow := func(p *models.Player) {
		if p.Potential <= 0 {
			return
		}
		p.Mechanics = clamp(p.Mechanics + m.rng.Intn(p.Potential/2+2))
		p.Tactics = clamp(p.Tactics + m.rng.Intn(p.Potential/2+2))
	}
	for _, l := range w.Leagues {
		for _, t := range l.Teams {
			for _, p := range t.Roster {
				grow(p)
			}
		}
	}
	for _, p := range w.FreeAgents {
		grow(p)
	}
}

func clampMeta(v int) int {
	if v < 40 {
		return 40
	}
	if v > 95 {
		return 95
	}
	return v
}
