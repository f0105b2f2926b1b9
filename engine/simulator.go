package engine

import (
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// SeriesFormat is the best-of-N structure of a match.
type SeriesFormat int

const (
	BestOf1 SeriesFormat = 1
	BestOf3 SeriesFormat = 3
	BestOf5 SeriesFormat = 5
	BestOf7 SeriesFormat = 7
)

// WinsNeeded is the score that ends the series.
func (f SeriesFormat) WinsNeeded() int {
	return (int(f) + 1) / 2
}

// Tunables of the power formula. These are content parameters, not
// architectural contracts.
const (
	playerSkillWeight = 0.60
	heroSkillWeight   = 0.40

	formFloor    = 0.70
	staminaFloor = 0.60
	moraleFloor  = 0.80

	offRolePenalty = 0.80
	staffCoeff     = 0.02

	killMin = 8
	killMax = 32

	staminaPerGame = 3
	moraleSwing    = 5
	formSwing      = 4
)

// Adjust scales each side's team power for phase-specific contexts, e.g.
// the promotion/relegation decider boosts the second-tier side.
type Adjust struct {
	Home float64
	Away float64
}

// NoAdjust leaves both sides untouched.
var NoAdjust = Adjust{Home: 1.0, Away: 1.0}

// PromotionAdjust favours the climbing side in the decider.
var PromotionAdjust = Adjust{Home: 0.95, Away: 1.10}

// SeriesResult is the outcome of a simulated series.
type SeriesResult struct {
	HomeScore int
	AwayScore int
	Games     []models.GameResult
}

// SimulateSeries plays a full series between two teams. Hero picks are one
// hero id per lineup slot; pass nil for either side to auto-generate picks
// (the AI-vs-AI path). Simulation is best-effort: missing picks, empty
// role pools and short rosters degrade via documented fallbacks rather
// than aborting. Player stamina is decremented for every roster member
// after every game; morale and form shift once the series is decided.
func SimulateSeries(rng Rand, home, away *models.Team, homePicks, awayPicks []int, format SeriesFormat, heroes []*models.Hero, adj Adjust) SeriesResult {
	if adj.Home == 0 {
		adj.Home = 1.0
	}
	if adj.Away == 0 {
		adj.Away = 1.0
	}
	need := format.WinsNeeded()
	res := SeriesResult{}

	for res.HomeScore < need && res.AwayScore < need {
		hp := picksFor(rng, home, homePicks, heroes)
		ap := picksFor(rng, away, awayPicks, heroes)

		powHome, perHome := teamPower(home, hp, heroes, adj.Home)
		powAway, perAway := teamPower(away, ap, heroes, adj.Away)

		pHome := 0.5
		if powHome+powAway > 0 {
			pHome = powHome / (powHome + powAway)
		}
		homeWins := rng.Float64() < pHome

		game := models.GameResult{HomePicks: hp, AwayPicks: ap}
		kA := killMin + rng.Intn(killMax-killMin+1)
		kB := killMin + rng.Intn(killMax-killMin+1)
		if kA < kB {
			kA, kB = kB, kA
		}
		if homeWins {
			game.WinnerID = home.ID
			game.HomeKills, game.AwayKills = kA, kB
			game.MVPID = drawMVP(rng, home.Lineup(), perHome)
			res.HomeScore++
		} else {
			game.WinnerID = away.ID
			game.HomeKills, game.AwayKills = kB, kA
			game.MVPID = drawMVP(rng, away.Lineup(), perAway)
			res.AwayScore++
		}
		res.Games = append(res.Games, game)

		drainStamina(home)
		drainStamina(away)
	}

	winner, loser := home, away
	if res.AwayScore > res.HomeScore {
		winner, loser = away, home
	}
	for _, p := range winner.Roster {
		p.Morale = clampStat(p.Morale + moraleSwing)
		p.Form = clampStat(p.Form + rng.Intn(formSwing+1))
	}
	for _, p := range loser.Roster {
		p.Morale = clampStat(p.Morale - moraleSwing)
		p.Form = clampStat(p.Form - rng.Intn(formSwing+1))
	}
	return res
}

// picksFor returns the given picks when they cover the lineup, otherwise
// auto-generates one hero per slot from the heroes whose class fits the
// player's lane, falling back to any hero when no class matches.
func picksFor(rng Rand, team *models.Team, picks []int, heroes []*models.Hero) []int {
	lineup := team.Lineup()
	if len(picks) >= len(lineup) && len(lineup) > 0 {
		return append([]int(nil), picks[:len(lineup)]...)
	}
	out := make([]int, 0, len(lineup))
	for _, p := range lineup {
		var pool []*models.Hero
		for _, h := range heroes {
			if models.OnRole(p.Role, h.Role) {
				pool = append(pool, h)
			}
		}
		if len(pool) == 0 {
			pool = heroes
		}
		if len(pool) == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, Pick(rng, pool).ID)
	}
	return out
}

// PlayerPower is the effective power of one player on one hero: a 60/40
// player/hero blend on each skill axis, scaled by condition multipliers
// and the off-role penalty.
func PlayerPower(p *models.Player, h *models.Hero) float64 {
	heroMech, heroTact := 0.0, 0.0
	onRole := true
	if h != nil {
		heroMech, heroTact = float64(h.Mechanics), float64(h.Tactics)
		onRole = models.OnRole(p.Role, h.Role)
	}
	mech := playerSkillWeight*float64(p.Mechanics) + heroSkillWeight*heroMech
	tact := playerSkillWeight*float64(p.Tactics) + heroSkillWeight*heroTact
	power := (mech + tact) / 2

	power *= condition(formFloor, p.Form)
	power *= condition(staminaFloor, p.Stamina)
	power *= condition(moraleFloor, p.Morale)
	if !onRole {
		power *= offRolePenalty
	}
	return power
}

// condition interpolates linearly between floor and 1.0 as stat goes
// from 0 to 100.
func condition(floor float64, stat int) float64 {
	return floor + (1.0-floor)*float64(clampStat(stat))/100.0
}

// teamPower sums lineup powers and applies the support-staff bonus and the
// phase adjustment. Also returns the per-player powers for the MVP draw.
func teamPower(team *models.Team, picks []int, heroes []*models.Hero, adj float64) (float64, []float64) {
	lineup := team.Lineup()
	per := make([]float64, len(lineup))
	total := 0.0
	for i, p := range lineup {
		var hero *models.Hero
		if i < len(picks) {
			hero = heroByID(heroes, picks[i])
		}
		per[i] = PlayerPower(p, hero)
		total += per[i]
	}
	total *= 1.0 + float64(team.StaffLevel)*staffCoeff
	total *= adj
	return total, per
}

// drawMVP picks a winner-side MVP by power-weighted draw, falling back to
// the highest individual power when the draw cannot land.
func drawMVP(rng Rand, lineup []*models.Player, powers []float64) int {
	if len(lineup) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range powers {
		total += p
	}
	if total > 0 {
		target := rng.Float64() * total
		acc := 0.0
		for i, p := range powers {
			acc += p
			if target < acc {
				return lineup[i].ID
			}
		}
	}
	best, bestPower := lineup[0], -1.0
	for i, p := range lineup {
		if i < len(powers) && powers[i] > bestPower {
			best, bestPower = p, powers[i]
		}
	}
	return best.ID
}

func drainStamina(team *models.Team) {
	for _, p := range team.Roster {
		p.Stamina = clampStat(p.Stamina - staminaPerGame)
	}
}

func heroByID(heroes []*models.Hero, id int) *models.Hero {
	for _, h := range heroes {
		if h.ID == id {
			return h
		}
	}
	return nil
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
