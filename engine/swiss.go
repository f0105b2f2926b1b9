package engine

import "sort"

// Swiss-stage pairing for a 16-team qualifier: each round the teams still
// alive (under 3 wins and under 3 losses) are grouped by identical record
// and paired randomly inside each group. The stage terminates as soon as 8
// teams have 3 wins, 8 have 3 losses, or 5 rounds have elapsed, whichever
// comes first.

const (
	SwissTargetWins   = 3
	SwissTargetLosses = 3
	SwissMaxRounds    = 5
	SwissQualifyCount = 8
)

// SwissRecord is one team's view of the stage.
type SwissRecord struct {
	TeamID    int
	Wins      int
	Losses    int
	Opponents []int
}

func (r SwissRecord) qualified() bool  { return r.Wins >= SwissTargetWins }
func (r SwissRecord) eliminated() bool { return r.Losses >= SwissTargetLosses }
func (r SwissRecord) active() bool     { return !r.qualified() && !r.eliminated() }

// SwissFinished reports whether the stage is over after the given number of
// completed rounds.
func SwissFinished(recs []SwissRecord, roundsPlayed int) bool {
	if roundsPlayed >= SwissMaxRounds {
		return true
	}
	q, e := 0, 0
	for _, r := range recs {
		if r.qualified() {
			q++
		}
		if r.eliminated() {
			e++
		}
	}
	return q >= SwissQualifyCount || e >= SwissQualifyCount
}

// SwissPairings pairs the active teams for the next round: partition by
// identical win-loss record, shuffle each partition, pair adjacent entries.
// An odd team out sits the round (group sizes are even in the modeled
// format, so this is a degenerate-input fallback, not an error).
func SwissPairings(rng Rand, recs []SwissRecord) [][2]int {
	groups := make(map[[2]int][]int)
	var order [][2]int
	for _, r := range recs {
		if !r.active() {
			continue
		}
		key := [2]int{r.Wins, r.Losses}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r.TeamID)
	}
	// Visit groups best record first so pairings come out in table order.
	sort.Slice(order, func(i, j int) bool {
		if order[i][0] != order[j][0] {
			return order[i][0] > order[j][0]
		}
		return order[i][1] < order[j][1]
	})

	var pairs [][2]int
	for _, key := range order {
		ids := groups[key]
		Shuffle(rng, ids)
		for i := 0; i+1 < len(ids); i += 2 {
			pairs = append(pairs, [2]int{ids[i], ids[i+1]})
		}
	}
	return pairs
}

// SwissSeeding ranks the field for knockout seeding: wins descending, then
// Buchholz (sum of opponents' win-loss differentials) descending, then
// input order. When the 5-round cap cuts the stage short of 8 qualified
// teams, the top of this ordering fills the qualified set.
func SwissSeeding(recs []SwissRecord) []int {
	diff := make(map[int]int, len(recs))
	for _, r := range recs {
		diff[r.TeamID] = r.Wins - r.Losses
	}
	idx := make([]int, len(recs))
	for i := range idx {
		idx[i] = i
	}
	buchholz := func(r SwissRecord) int {
		sum := 0
		for _, opp := range r.Opponents {
			sum += diff[opp]
		}
		return sum
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := recs[idx[a]], recs[idx[b]]
		if ra.Wins != rb.Wins {
			return ra.Wins > rb.Wins
		}
		return buchholz(ra) > buchholz(rb)
	})
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = recs[j].TeamID
	}
	return out
}

// SwissQualified returns the qualified team ids in seed order, topping the
// set up to SwissQualifyCount from the seeding when the round cap fired
// before enough teams reached the win threshold.
func SwissQualified(recs []SwissRecord) []int {
	seeded := SwissSeeding(recs)
	byID := make(map[int]SwissRecord, len(recs))
	for _, r := range recs {
		byID[r.TeamID] = r
	}
	var out []int
	for _, id := range seeded {
		if byID[id].qualified() {
			out = append(out, id)
		}
	}
	for _, id := range seeded {
		if len(out) >= SwissQualifyCount {
			break
		}
		if !byID[id].qualified() && !containsInt(out, id) {
			out = append(out, id)
		}
	}
	if len(out) > SwissQualifyCount {
		out = out[:SwissQualifyCount]
	}
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
