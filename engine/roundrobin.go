package engine

// Fixture is one generated pairing. Round numbering starts at 1.
type Fixture struct {
	HomeID int
	AwayID int
	Round  int
}

// byeID pads an odd field for the circle method. Pairings against the bye
// are filtered out of the result.
const byeID = -1

// SingleRoundRobin generates one round robin via the circle method: the
// first entry stays fixed while the rest rotate, giving n-1 rounds for even
// n. Deterministic given the input order.
func SingleRoundRobin(teamIDs []int) []Fixture {
	return circle(teamIDs, false)
}

// DoubleRoundRobin generates 2*(n-1) rounds. The second half replays every
// pairing with home and away swapped, approximating a return leg.
func DoubleRoundRobin(teamIDs []int) []Fixture {
	return circle(teamIDs, true)
}

func circle(teamIDs []int, double bool) []Fixture {
	ids := append([]int(nil), teamIDs...)
	if len(ids)%2 != 0 {
		ids = append(ids, byeID)
	}
	n := len(ids)
	if n < 2 {
		return nil
	}
	rounds := n - 1

	var fixtures []Fixture
	// rot holds everything but the fixed first entry.
	rot := append([]int(nil), ids[1:]...)
	for r := 1; r <= rounds; r++ {
		pair := func(home, away, round int) {
			if home == byeID || away == byeID {
				return
			}
			fixtures = append(fixtures, Fixture{HomeID: home, AwayID: away, Round: round})
			if double {
				fixtures = append(fixtures, Fixture{HomeID: away, AwayID: home, Round: round + rounds})
			}
		}
		pair(ids[0], rot[len(rot)-1], r)
		for i := 0; i < (n/2)-1; i++ {
			pair(rot[i], rot[len(rot)-2-i], r)
		}
		// rotate clockwise
		rot = append(rot[len(rot)-1:], rot[:len(rot)-1]...)
	}
	return fixtures
}
