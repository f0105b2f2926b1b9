package season

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// Placement is the coarse exit bucket a team leaves a competition in.
type Placement string

const (
	PlacementChampion     Placement = "champion"
	PlacementRunnerUp     Placement = "runner_up"
	PlacementSemifinal    Placement = "semifinal"
	PlacementQuarterfinal Placement = "quarterfinal"
	PlacementGroupStage   Placement = "group_stage"
)

// Competition identifies a prize table.
type Competition string

const (
	CompPlayoffs     Competition = "playoffs"
	CompInvitational Competition = "invitational"
	CompChampionship Competition = "championship"
)

// prizeTables maps placement buckets to money per competition. The mapping
// is configuration data, not logic.
var prizeTables = map[Competition]map[Placement]int{
	CompPlayoffs: {
		PlacementChampion:  500_000,
		PlacementRunnerUp:  250_000,
		PlacementSemifinal: 100_000,
	},
	CompInvitational: {
		PlacementChampion:     1_200_000,
		PlacementRunnerUp:     600_000,
		PlacementSemifinal:    300_000,
		PlacementQuarterfinal: 150_000,
		PlacementGroupStage:   75_000,
	},
	CompChampionship: {
		PlacementChampion:     2_500_000,
		PlacementRunnerUp:     1_200_000,
		PlacementSemifinal:    600_000,
		PlacementQuarterfinal: 300_000,
		PlacementGroupStage:   120_000,
	},
}

// distribute credits each placed team's budget from the competition table
// and records the trophy on the champion and on every champion roster
// player. Trophy and achievement appends are idempotent, so replaying the
// same award never duplicates an entry.
func (m *Machine) distribute(w *models.World, comp Competition, placements map[int]Placement, trophy string) error {
	table, ok := prizeTables[comp]
	if !ok {
		return fmt.Errorf("season: no prize table for competition %q", comp)
	}
	for teamID, place := range placements {
		team, err := w.MustTeam(teamID)
		if err != nil {
			return fmt.Errorf("prize distribution for %s: %w", comp, err)
		}
		team.Budget += table[place]
		if place == PlacementChampion {
			team.AddTrophy(trophy)
			for _, p := range team.Roster {
				p.AddAchievement(trophy)
			}
		}
	}
	return nil
}
