package engine

import (
	"testing"

	"github.com/tylacb11-spec/lienquan-sub000/models"
)

func testHeroes() []*models.Hero {
	roles := []models.HeroRole{
		models.HeroFighter, models.HeroTank, models.HeroAssassin,
		models.HeroMage, models.HeroMarksman, models.HeroSupport,
	}
	heroes := make([]*models.Hero, 0, len(roles))
	for i, role := range roles {
		heroes = append(heroes, &models.Hero{
			ID:        1000 + i,
			Name:      "Hero",
			Role:      role,
			Mechanics: 70,
			Tactics:   70,
		})
	}
	return heroes
}

func testTeam(id, skill int) *models.Team {
	team := &models.Team{ID: id, Name: "Team", StaffLevel: 1}
	for i, role := range models.AllLanes {
		team.Roster = append(team.Roster, &models.Player{
			ID:        id*100 + i,
			Name:      "Player",
			Role:      role,
			Mechanics: skill,
			Tactics:   skill,
			Morale:    70,
			Form:      55,
			Stamina:   100,
			Potential: 5,
		})
	}
	return team
}

func TestSimulateSeriesScoreShape(t *testing.T) {
	heroes := testHeroes()
	for seed := int64(1); seed <= 50; seed++ {
		rng := NewSeededRand(seed)
		home, away := testTeam(1, 75), testTeam(2, 65)

		res := SimulateSeries(rng, home, away, nil, nil, BestOf5, heroes, NoAdjust)

		need := BestOf5.WinsNeeded()
		hi, lo := res.HomeScore, res.AwayScore
		if lo > hi {
			hi, lo = lo, hi
		}
		if hi != need {
			t.Fatalf("seed %d: winner score %d, want %d", seed, hi, need)
		}
		if lo >= need {
			t.Fatalf("seed %d: both sides reached %d wins", seed, need)
		}
		if len(res.Games) != res.HomeScore+res.AwayScore {
			t.Fatalf("seed %d: %d games recorded for score %d-%d",
				seed, len(res.Games), res.HomeScore, res.AwayScore)
		}
		for _, g := range res.Games {
			if g.WinnerID != home.ID && g.WinnerID != away.ID {
				t.Fatalf("seed %d: game winner %d is neither side", seed, g.WinnerID)
			}
			winnerKills, loserKills := g.HomeKills, g.AwayKills
			if g.WinnerID == away.ID {
				winnerKills, loserKills = loserKills, winnerKills
			}
			if winnerKills < loserKills {
				t.Errorf("seed %d: winner out-killed %d to %d", seed, winnerKills, loserKills)
			}
			if len(g.HomePicks) != 5 || len(g.AwayPicks) != 5 {
				t.Errorf("seed %d: picks not one per slot: %d/%d", seed, len(g.HomePicks), len(g.AwayPicks))
			}
		}
	}
}

func TestSimulateSeriesEqualPowerIsFair(t *testing.T) {
	heroes := testHeroes()
	rng := NewSeededRand(42)

	const trials = 10000
	homeWins := 0
	for i := 0; i < trials; i++ {
		home, away := testTeam(1, 70), testTeam(2, 70)
		res := SimulateSeries(rng, home, away, nil, nil, BestOf3, heroes, NoAdjust)
		if res.HomeScore > res.AwayScore {
			homeWins++
		}
	}
	rate := float64(homeWins) / trials
	if rate < 0.48 || rate > 0.52 {
		t.Fatalf("equal-power home win rate %.3f, want 0.50 within 2pp", rate)
	}
}

func TestSimulateSeriesStrongerSideWinsMore(t *testing.T) {
	heroes := testHeroes()
	rng := NewSeededRand(9)

	const trials = 2000
	strongWins := 0
	for i := 0; i < trials; i++ {
		strong, weak := testTeam(1, 90), testTeam(2, 50)
		res := SimulateSeries(rng, strong, weak, nil, nil, BestOf3, heroes, NoAdjust)
		if res.HomeScore > res.AwayScore {
			strongWins++
		}
	}
	rate := float64(strongWins) / trials
	if rate < 0.60 {
		t.Fatalf("90-skill side only won %.3f of series against 50-skill side", rate)
	}
}

func TestSimulateSeriesDrainsStamina(t *testing.T) {
	heroes := testHeroes()
	rng := NewSeededRand(3)
	home, away := testTeam(1, 70), testTeam(2, 70)

	res := SimulateSeries(rng, home, away, nil, nil, BestOf3, heroes, NoAdjust)

	games := len(res.Games)
	want := 100 - games*staminaPerGame
	for _, team := range []*models.Team{home, away} {
		for _, p := range team.Roster {
			if p.Stamina != want {
				t.Fatalf("player %d stamina %d after %d games, want %d", p.ID, p.Stamina, games, want)
			}
		}
	}
}

func TestPromotionAdjustBoostsAwaySide(t *testing.T) {
	home := testTeam(1, 70)
	picks := make([]int, 5)
	for i := range picks {
		picks[i] = testHeroes()[i].ID
	}
	base, _ := teamPower(home, picks, testHeroes(), NoAdjust.Home)
	boosted, _ := teamPower(home, picks, testHeroes(), PromotionAdjust.Away)
	if boosted <= base {
		t.Fatalf("away adjust %.2f did not raise power: %.2f vs %.2f", PromotionAdjust.Away, boosted, base)
	}
}
