package engine

import (
	"testing"

	"github.com/tylacb11-spec/lienquan-sub000/models"
)

func TestRankOrdering(t *testing.T) {
	teams := []*models.Team{
		{ID: 1, Wins: 8, Losses: 6, RoundsWon: 20, RoundsLost: 15},
		{ID: 2, Wins: 10, Losses: 4, RoundsWon: 24, RoundsLost: 12},
		{ID: 3, Wins: 8, Losses: 6, RoundsWon: 22, RoundsLost: 14},
		{ID: 4, Wins: 2, Losses: 12, RoundsWon: 9, RoundsLost: 26},
	}
	ranked := Rank(teams)

	want := []int{2, 3, 1, 4}
	for i, team := range ranked {
		if team.ID != want[i] {
			t.Fatalf("position %d: got team %d, want %d", i, team.ID, want[i])
		}
	}
	// Input must stay untouched.
	if teams[0].ID != 1 {
		t.Errorf("Rank mutated its input")
	}
}

func TestRankStableOnFullTies(t *testing.T) {
	teams := []*models.Team{
		{ID: 5, Wins: 7, Losses: 7, RoundsWon: 18, RoundsLost: 18},
		{ID: 6, Wins: 7, Losses: 7, RoundsWon: 18, RoundsLost: 18},
		{ID: 7, Wins: 7, Losses: 7, RoundsWon: 18, RoundsLost: 18},
	}
	ranked := Rank(teams)
	for i, want := range []int{5, 6, 7} {
		if ranked[i].ID != want {
			t.Fatalf("tied teams reordered: got %d at position %d, want %d", ranked[i].ID, i, want)
		}
	}
}

func TestRankIntlOrdering(t *testing.T) {
	teams := []*models.Team{
		{ID: 1, IntlWins: 4, IntlLosses: 3},
		{ID: 2, IntlWins: 6, IntlLosses: 1},
		{ID: 3, IntlWins: 4, IntlLosses: 2},
	}
	ranked := RankIntl(teams)
	want := []int{2, 3, 1}
	for i, team := range ranked {
		if team.ID != want[i] {
			t.Fatalf("position %d: got team %d, want %d", i, team.ID, want[i])
		}
	}
}
