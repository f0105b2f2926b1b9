package engine

import (
	"sort"

	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// Rank orders teams by wins descending, then round differential descending,
// then losses ascending. The sort is stable, so residual ties keep the
// input order. Pure: the input slice is not touched.
func Rank(teams []*models.Team) []*models.Team {
	ranked := make([]*models.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.RoundDiff() != b.RoundDiff() {
			return a.RoundDiff() > b.RoundDiff()
		}
		return a.Losses < b.Losses
	})
	return ranked
}

// RankIntl orders teams by international group counters: wins descending,
// then losses ascending, stable.
func RankIntl(teams []*models.Team) []*models.Team {
	ranked := make([]*models.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.IntlWins != b.IntlWins {
			return a.IntlWins > b.IntlWins
		}
		return a.IntlLosses < b.IntlLosses
	})
	return ranked
}
