package season

import (
	"fmt"
	"testing"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

func TestGenerateWorldShape(t *testing.T) {
	rng := engine.NewSeededRand(1)
	w, err := GenerateWorld(rng, "KR", "Test Esports")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}

	if len(w.Leagues) != len(Regions)*2 {
		t.Fatalf("got %d leagues, want %d", len(w.Leagues), len(Regions)*2)
	}
	for _, l := range w.Leagues {
		if len(l.Teams) != 8 {
			t.Fatalf("league %s tier %d has %d teams, want 8", l.Region, l.Tier, len(l.Teams))
		}
		if len(l.Schedule) != 14*4 {
			t.Fatalf("league %s tier %d has %d scheduled matches, want 56", l.Region, l.Tier, len(l.Schedule))
		}
		for _, team := range l.Teams {
			if len(team.Roster) < 5 {
				t.Fatalf("team %s roster has %d players, want at least 5", team.Name, len(team.Roster))
			}
			for _, p := range team.Roster {
				if p.Contract == nil || p.Contract.TeamID != team.ID {
					t.Fatalf("player %s on %s lacks a matching contract", p.Name, team.Name)
				}
			}
		}
	}

	human := w.HumanTeam()
	if human == nil {
		t.Fatal("human team not set")
	}
	if human.Name != "Test Esports" || human.Region != "KR" || human.Tier != models.TierTop {
		t.Fatalf("human team misplaced: %q in %s tier %d", human.Name, human.Region, human.Tier)
	}
	if len(w.Heroes) == 0 {
		t.Fatal("no heroes generated")
	}
	if len(w.FreeAgents) == 0 {
		t.Fatal("no free agents generated")
	}
	if w.Phase != models.PhaseRegularSeason || w.Split != models.SplitSpring || w.Week != 1 {
		t.Fatalf("wrong opening state: %s / %s / week %d", w.Phase, w.Split, w.Week)
	}
}

func TestGenerateWorldRejectsUnknownRegion(t *testing.T) {
	if _, err := GenerateWorld(engine.NewSeededRand(1), "MOON", "X"); err == nil {
		t.Fatal("expected an error for an unknown region")
	}
}

// TestFullYearAutoPilot drives a generated world through an entire
// competitive year without human input and checks that every phase occurs
// and the machine lands back in a fresh spring split.
func TestFullYearAutoPilot(t *testing.T) {
	rng := engine.NewSeededRand(99)
	w, err := GenerateWorld(rng, "EU", "Loop Crew")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}

	m := NewMachine(rng, nil, nil, nil)
	m.AutoPilot = true

	visited := map[models.Phase]bool{w.Phase: true}
	const maxSteps = 2000
	steps := 0
	for ; steps < maxSteps; steps++ {
		next, res, err := m.Advance(w)
		if err != nil {
			t.Fatalf("step %d (%s): %v", steps, w.Phase, err)
		}
		if res.Pending != nil {
			t.Fatalf("step %d: autopilot paused for a human match", steps)
		}
		w = next
		visited[w.Phase] = true
		if w.Year == 2 && w.Phase == models.PhaseRegularSeason {
			break
		}
	}
	if steps == maxSteps {
		t.Fatalf("year never rolled over within %d steps (stuck in %s)", maxSteps, w.Phase)
	}

	for _, phase := range []models.Phase{
		models.PhaseRegularSeason,
		models.PhasePlayoffs,
		models.PhaseInvitational,
		models.PhaseMidSeasonBreak,
		models.PhasePromotion,
		models.PhaseSeasonEnd,
		models.PhaseChampionship,
	} {
		if !visited[phase] {
			t.Errorf("phase %s never occurred", phase)
		}
	}

	// All transient artifacts must be gone after rollover.
	if w.Playoffs != nil || w.Invitational != nil || w.Championship != nil || w.PromotionTies != nil {
		t.Error("transient phase artifacts survived the rollover")
	}
	if w.Split != models.SplitSpring || w.Week != 1 {
		t.Errorf("new year opens at %s week %d, want spring week 1", w.Split, w.Week)
	}

	// Promotion swaps must keep league sizes intact.
	for _, l := range w.Leagues {
		if len(l.Teams) != 8 {
			t.Errorf("league %s tier %d has %d teams after rollover, want 8", l.Region, l.Tier, len(l.Teams))
		}
		for _, team := range l.Teams {
			if team.Tier != l.Tier {
				t.Errorf("team %s carries tier %d inside tier-%d league", team.Name, team.Tier, l.Tier)
			}
			if team.Wins != 0 || team.Losses != 0 || team.SwissWins != 0 || team.IntlWins != 0 {
				t.Errorf("team %s counters not reset after rollover", team.Name)
			}
		}
	}

	// Somebody must have won something over a full year.
	trophies := 0
	for _, l := range w.Leagues {
		for _, team := range l.Teams {
			trophies += len(team.Trophies)
		}
	}
	if trophies == 0 {
		t.Error("no trophies awarded across a full competitive year")
	}
}

// TestPlayoffsCoverEveryLeague drives a world to the playoff phase and
// checks that both tiers of every region get a bracket and that every
// bracket crowns a champion.
func TestPlayoffsCoverEveryLeague(t *testing.T) {
	rng := engine.NewSeededRand(23)
	w, err := GenerateWorld(rng, "SEA", "Bracket Watch")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}
	m := NewMachine(rng, nil, nil, nil)
	m.AutoPilot = true

	const maxSteps = 200
	for steps := 0; w.Phase != models.PhasePlayoffs; steps++ {
		if steps == maxSteps {
			t.Fatalf("playoffs never started within %d steps", maxSteps)
		}
		next, _, err := m.Advance(w)
		if err != nil {
			t.Fatalf("Advance (%s): %v", w.Phase, err)
		}
		w = next
	}

	if len(w.Playoffs) != len(w.Leagues) {
		t.Fatalf("got %d playoff brackets, want one per league (%d)", len(w.Playoffs), len(w.Leagues))
	}
	seen := make(map[string]bool)
	for _, b := range w.Playoffs {
		league := w.League(b.Region, b.Tier)
		if league == nil {
			t.Fatalf("bracket for unknown league %s tier %d", b.Region, b.Tier)
		}
		key := fmt.Sprintf("%s/%d", b.Region, b.Tier)
		if seen[key] {
			t.Fatalf("duplicate bracket for %s tier %d", b.Region, b.Tier)
		}
		seen[key] = true
		if len(b.Semis) != 2 {
			t.Fatalf("bracket %s tier %d has %d semifinals, want 2", b.Region, b.Tier, len(b.Semis))
		}
		for _, s := range b.Semis {
			if league.TeamByID(s.HomeID) == nil || league.TeamByID(s.AwayID) == nil {
				t.Fatalf("bracket %s tier %d seeds a team from another league", b.Region, b.Tier)
			}
		}
	}

	// Play the phase out and check every league produced a playoff champion.
	for steps := 0; w.Phase == models.PhasePlayoffs; steps++ {
		if steps == maxSteps {
			t.Fatalf("playoffs never finished within %d steps", maxSteps)
		}
		next, _, err := m.Advance(w)
		if err != nil {
			t.Fatalf("Advance (%s): %v", w.Phase, err)
		}
		w = next
	}
	trophies := 0
	for _, l := range w.Leagues {
		for _, team := range l.Teams {
			trophies += len(team.Trophies)
		}
	}
	if trophies != len(w.Leagues) {
		t.Fatalf("%d playoff trophies awarded, want one per league (%d)", trophies, len(w.Leagues))
	}
}

func TestAdvancePausesForHumanMatch(t *testing.T) {
	rng := engine.NewSeededRand(5)
	w, err := GenerateWorld(rng, "NA", "Pause Club")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}
	m := NewMachine(rng, nil, nil, nil)

	next, res, err := m.Advance(w)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if res.Pending == nil {
		t.Fatal("expected a pending human match in week 1")
	}
	if !res.Pending.Involves(w.HumanTeamID) {
		t.Fatalf("pending match %d does not involve the human team", res.Pending.ID)
	}
	if res.Pending.Played {
		t.Fatal("pending match already played")
	}

	resolved, _, err := m.ResolveHuman(next, nil)
	if err != nil {
		t.Fatalf("ResolveHuman: %v", err)
	}
	human := resolved.HumanTeam()
	if human.Wins+human.Losses != 1 {
		t.Fatalf("human team record %d-%d after resolving, want one result", human.Wins, human.Losses)
	}

	if _, _, err := m.ResolveHuman(resolved, nil); err == nil {
		t.Fatal("second ResolveHuman should fail with nothing pending")
	}

	// The rest of the week plays out without pausing again.
	after, res2, err := m.Advance(resolved)
	if err != nil {
		t.Fatalf("Advance after resolve: %v", err)
	}
	if res2.Pending != nil {
		t.Fatal("machine paused again for an already-played match")
	}
	if after.Week != 2 {
		t.Fatalf("week %d after finishing week 1, want 2", after.Week)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	rng := engine.NewSeededRand(11)
	w, err := GenerateWorld(rng, "CN", "Frozen")
	if err != nil {
		t.Fatalf("GenerateWorld: %v", err)
	}
	m := NewMachine(rng, nil, nil, nil)
	m.AutoPilot = true

	weekBefore := w.Week
	playedBefore := 0
	for _, l := range w.Leagues {
		for _, match := range l.Schedule {
			if match.Played {
				playedBefore++
			}
		}
	}

	if _, _, err := m.Advance(w); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if w.Week != weekBefore {
		t.Error("Advance mutated the input world's week")
	}
	playedAfter := 0
	for _, l := range w.Leagues {
		for _, match := range l.Schedule {
			if match.Played {
				playedAfter++
			}
		}
	}
	if playedAfter != playedBefore {
		t.Error("Advance mutated the input world's schedule")
	}
}
