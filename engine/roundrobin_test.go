package engine

import "testing"

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func TestDoubleRoundRobinEveryPairTwice(t *testing.T) {
	ids := []int{10, 20, 30, 40, 50, 60, 70, 80}
	fixtures := DoubleRoundRobin(ids)

	wantRounds := 2 * (len(ids) - 1)
	wantMatches := wantRounds * len(ids) / 2
	if len(fixtures) != wantMatches {
		t.Fatalf("got %d fixtures, want %d", len(fixtures), wantMatches)
	}

	// Every unordered pair must meet exactly twice, once per half, with
	// home and away swapped between the legs.
	meetings := make(map[[2]int][]Fixture)
	for _, f := range fixtures {
		if f.Round < 1 || f.Round > wantRounds {
			t.Fatalf("fixture round %d out of range 1..%d", f.Round, wantRounds)
		}
		meetings[pairKey(f.HomeID, f.AwayID)] = append(meetings[pairKey(f.HomeID, f.AwayID)], f)
	}
	for pair, ms := range meetings {
		if len(ms) != 2 {
			t.Fatalf("pair %v met %d times, want 2", pair, len(ms))
		}
		a, b := ms[0], ms[1]
		if a.HomeID != b.AwayID || a.AwayID != b.HomeID {
			t.Errorf("pair %v legs not home/away swapped: %+v vs %+v", pair, a, b)
		}
		half := len(ids) - 1
		if (a.Round <= half) == (b.Round <= half) {
			t.Errorf("pair %v legs in the same half: rounds %d and %d", pair, a.Round, b.Round)
		}
	}

	// Each team plays exactly once per round.
	for r := 1; r <= wantRounds; r++ {
		seen := make(map[int]bool)
		for _, f := range fixtures {
			if f.Round != r {
				continue
			}
			if seen[f.HomeID] || seen[f.AwayID] {
				t.Fatalf("round %d schedules a team twice", r)
			}
			seen[f.HomeID], seen[f.AwayID] = true, true
		}
		if len(seen) != len(ids) {
			t.Fatalf("round %d covers %d teams, want %d", r, len(seen), len(ids))
		}
	}
}

func TestSingleRoundRobinOddFieldUsesBye(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5}
	fixtures := SingleRoundRobin(ids)

	// 5 teams pad to 6: five rounds of two real matches each.
	if len(fixtures) != 10 {
		t.Fatalf("got %d fixtures, want 10", len(fixtures))
	}
	meetings := make(map[[2]int]int)
	for _, f := range fixtures {
		if f.HomeID < 1 || f.AwayID < 1 {
			t.Fatalf("bye leaked into fixtures: %+v", f)
		}
		meetings[pairKey(f.HomeID, f.AwayID)]++
	}
	if len(meetings) != 10 {
		t.Fatalf("got %d distinct pairs, want 10", len(meetings))
	}
	for pair, n := range meetings {
		if n != 1 {
			t.Errorf("pair %v met %d times, want 1", pair, n)
		}
	}
}

func TestRoundRobinDegenerateInputs(t *testing.T) {
	if got := SingleRoundRobin(nil); got != nil {
		t.Errorf("nil input: got %v, want nil", got)
	}
	if got := SingleRoundRobin([]int{7}); got != nil {
		t.Errorf("single team: got %v, want nil", got)
	}
}
