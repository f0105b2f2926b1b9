package season

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// Machine is the tournament state machine. It owns phase transitions and
// drives the schedule generator, match simulator, standings engine and
// prize distributor. It holds no world state itself: every call receives
// the current world, deep-clones it, mutates the clone and returns it, so
// the host swaps snapshots wholesale and never sees partial state. The
// host must serialize calls per world.
type Machine struct {
	rng    engine.Rand
	log    *slog.Logger
	news   NewsSink
	notify Notifier

	// AutoPilot resolves human-team matches without pausing. Used for
	// AI-only worlds and headless season simulation.
	AutoPilot bool
}

func NewMachine(rng engine.Rand, log *slog.Logger, news NewsSink, notify Notifier) *Machine {
	if log == nil {
		log = slog.Default()
	}
	if news == nil {
		news = NopSink{}
	}
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Machine{rng: rng, log: log, news: news, notify: notify}
}

// StepResult reports what one advancement step did.
type StepResult struct {
	// Pending is non-nil when the machine stopped because the next
	// unplayed match involves the human team. The host must resolve it
	// via ResolveHuman before advancing again.
	Pending      *models.Match
	PhaseChanged bool
	Phase        models.Phase
}

// counterKind selects which team counters a match result feeds.
type counterKind int

const (
	counterNone counterKind = iota
	counterRegular
	counterSwiss
	counterIntl
)

// dueMatch is one unresolved match of the active phase, with its series
// context.
type dueMatch struct {
	match   *models.Match
	counter counterKind
	adjust  engine.Adjust
}

// stepFunc advances one phase by one step. Transition logic lives in these
// functions and nowhere else.
type stepFunc func(*Machine, *models.World, *StepResult) error

var steps = map[models.Phase]stepFunc{
	models.PhaseRegularSeason:  (*Machine).stepRegular,
	models.PhasePlayoffs:       (*Machine).stepPlayoffs,
	models.PhaseInvitational:   (*Machine).stepInvitational,
	models.PhaseMidSeasonBreak: (*Machine).stepMidSeasonBreak,
	models.PhasePromotion:      (*Machine).stepPromotion,
	models.PhaseSeasonEnd:      (*Machine).stepSeasonEnd,
	models.PhaseChampionship:   (*Machine).stepChampionship,
}

// Advance performs one advancement step on a cloned world and returns the
// new snapshot. When the step pauses for the human team the returned world
// still carries the unplayed match; resolving it and calling Advance again
// resumes exactly where the machine stopped.
func (m *Machine) Advance(w *models.World) (*models.World, *StepResult, error) {
	next := w.Clone()
	res := &StepResult{}
	step, ok := steps[next.Phase]
	if !ok {
		return nil, nil, fmt.Errorf("season: no step for phase %q", next.Phase)
	}
	before := next.Phase
	if err := step(m, next, res); err != nil {
		return nil, nil, err
	}
	res.Phase = next.Phase
	res.PhaseChanged = next.Phase != before
	if res.PhaseChanged {
		m.log.Info("phase transition",
			slog.String("from", string(before)),
			slog.String("to", string(next.Phase)),
			slog.Int("year", next.Year),
			slog.Int("week", next.Week))
	}
	return next, res, nil
}

// ResolveHuman plays the pending human match with the supplied hero picks
// (one hero id per lineup slot; nil falls back to auto-picks) and returns
// the new snapshot. It does not advance further; the host calls Advance to
// resume the batch.
func (m *Machine) ResolveHuman(w *models.World, picks []int) (*models.World, *StepResult, error) {
	next := w.Clone()
	res := &StepResult{Phase: next.Phase}
	due, err := m.dueMatches(next)
	if err != nil {
		return nil, nil, err
	}
	for _, dm := range due {
		if dm.match.Played || !dm.match.Involves(next.HumanTeamID) {
			continue
		}
		if err := m.playMatch(next, dm, picks); err != nil {
			return nil, nil, err
		}
		return next, res, nil
	}
	return nil, nil, fmt.Errorf("season: no pending human match in phase %q", next.Phase)
}

// dueMatches lists the currently unresolved matches of the active phase in
// resolution order.
func (m *Machine) dueMatches(w *models.World) ([]dueMatch, error) {
	switch w.Phase {
	case models.PhaseRegularSeason:
		return m.dueRegular(w), nil
	case models.PhasePlayoffs:
		return m.duePlayoffs(w), nil
	case models.PhaseInvitational:
		return m.dueInvitational(w), nil
	case models.PhasePromotion:
		return m.duePromotion(w), nil
	case models.PhaseChampionship:
		return m.dueChampionship(w), nil
	default:
		return nil, nil
	}
}

// playDue resolves due matches in order. It stops and records a pending
// result when the next unplayed match involves the human team and the
// machine is not on autopilot; this is the single pause point shared by
// every phase. Returns true when everything due has been played.
func (m *Machine) playDue(w *models.World, due []dueMatch, res *StepResult) (bool, error) {
	for _, dm := range due {
		if dm.match.Played {
			continue
		}
		if !m.AutoPilot && dm.match.Involves(w.HumanTeamID) {
			res.Pending = dm.match
			return false, nil
		}
		if err := m.playMatch(w, dm, nil); err != nil {
			return false, err
		}
	}
	return true, nil
}

// playMatch simulates one series and applies its result to the world.
// humanPicks, when non-nil, are used for the human side.
func (m *Machine) playMatch(w *models.World, dm dueMatch, humanPicks []int) error {
	home, err := w.MustTeam(dm.match.HomeID)
	if err != nil {
		return err
	}
	away, err := w.MustTeam(dm.match.AwayID)
	if err != nil {
		return err
	}

	var homePicks, awayPicks []int
	if humanPicks != nil {
		if home.ID == w.HumanTeamID {
			homePicks = humanPicks
		} else if away.ID == w.HumanTeamID {
			awayPicks = humanPicks
		}
	}

	sr := engine.SimulateSeries(m.rng, home, away, homePicks, awayPicks,
		engine.SeriesFormat(dm.match.BestOf), w.Heroes, dm.adjust)

	dm.match.Played = true
	dm.match.HomeScore = sr.HomeScore
	dm.match.AwayScore = sr.AwayScore
	dm.match.Games = sr.Games

	for _, g := range sr.Games {
		if p := w.PlayerByID(g.MVPID); p != nil {
			p.MVPCount++
		}
	}

	switch dm.counter {
	case counterRegular:
		if dm.match.WinnerID() == home.ID {
			home.Wins++
			away.Losses++
		} else {
			away.Wins++
			home.Losses++
		}
		home.RoundsWon += sr.HomeScore
		home.RoundsLost += sr.AwayScore
		away.RoundsWon += sr.AwayScore
		away.RoundsLost += sr.HomeScore
	case counterSwiss:
		if dm.match.WinnerID() == home.ID {
			home.SwissWins++
			away.SwissLosses++
		} else {
			away.SwissWins++
			home.SwissLosses++
		}
		home.SwissOpponents = append(home.SwissOpponents, away.ID)
		away.SwissOpponents = append(away.SwissOpponents, home.ID)
	case counterIntl:
		if dm.match.WinnerID() == home.ID {
			home.IntlWins++
			away.IntlLosses++
		} else {
			away.IntlWins++
			home.IntlLosses++
		}
	}

	winner, _ := w.MustTeam(dm.match.WinnerID())
	m.emit(w, fmt.Sprintf("%s defeats %s", winner.Name, opponentName(home, away, winner)),
		fmt.Sprintf("%s wins the series %d-%d.", winner.Name, maxInt(sr.HomeScore, sr.AwayScore), minInt(sr.HomeScore, sr.AwayScore)),
		"match desk", "match", map[string]string{
			"match_id": strconv.Itoa(dm.match.ID),
			"home":     home.Name,
			"away":     away.Name,
			"score":    fmt.Sprintf("%d-%d", sr.HomeScore, sr.AwayScore),
		})
	if dm.match.Involves(w.HumanTeamID) {
		severity := "info"
		if winner.ID != w.HumanTeamID {
			severity = "warning"
		}
		m.notify.Notify(fmt.Sprintf("Result: %s %d - %d %s", home.Name, sr.HomeScore, sr.AwayScore, away.Name), severity)
	}
	return nil
}

func (m *Machine) emit(w *models.World, title, body, author, category string, meta map[string]string) {
	item := w.PushNews(title, body, author, category, meta)
	m.news.Emit(item)
}

func opponentName(home, away, winner *models.Team) string {
	if winner.ID == home.ID {
		return away.Name
	}
	return home.Name
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
