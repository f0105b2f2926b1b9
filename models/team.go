package models

// Tier is the competitive division within a region.
type Tier int

const (
	TierTop    Tier = 1
	TierSecond Tier = 2
)

type Team struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Tier   Tier   `json:"tier"`

	// Roster is ordered: the first five players are the active lineup,
	// one per lane in AllLanes order where possible.
	Roster []*Player `json:"roster"`

	// Regular-season counters, reset on rollover.
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	RoundsWon  int `json:"rounds_won"`
	RoundsLost int `json:"rounds_lost"`

	// Swiss-stage counters, live only while a Swiss stage is active.
	SwissWins      int   `json:"swiss_wins"`
	SwissLosses    int   `json:"swiss_losses"`
	SwissOpponents []int `json:"swiss_opponents,omitempty"`

	// International group-stage counters.
	IntlWins   int `json:"intl_wins"`
	IntlLosses int `json:"intl_losses"`

	Budget        int `json:"budget"`
	WeeklyIncome  int `json:"weekly_income"`
	WeeklyExpense int `json:"weekly_expense"`
	StaffLevel    int `json:"staff_level"`

	Trophies []string `json:"trophies,omitempty"`
	Rank     int      `json:"rank"`
}

// RoundDiff is rounds won minus rounds lost, the second standings key.
func (t *Team) RoundDiff() int {
	return t.RoundsWon - t.RoundsLost
}

// AddTrophy appends a trophy unless the same name is already present.
func (t *Team) AddTrophy(name string) {
	for _, tr := range t.Trophies {
		if tr == name {
			return
		}
	}
	t.Trophies = append(t.Trophies, name)
}

// Lineup returns the first five roster slots, or the whole roster when it
// is short. Simulation degrades gracefully on short rosters.
func (t *Team) Lineup() []*Player {
	if len(t.Roster) >= 5 {
		return t.Roster[:5]
	}
	return t.Roster
}

func (t *Team) Clone() *Team {
	cp := *t
	cp.Roster = make([]*Player, len(t.Roster))
	for i, p := range t.Roster {
		cp.Roster[i] = p.Clone()
	}
	cp.SwissOpponents = append([]int(nil), t.SwissOpponents...)
	cp.Trophies = append([]string(nil), t.Trophies...)
	return &cp
}

// ResetSeasonCounters clears the per-season standings counters.
func (t *Team) ResetSeasonCounters() {
	t.Wins, t.Losses = 0, 0
	t.RoundsWon, t.RoundsLost = 0, 0
	t.Rank = 0
}

// ResetSwissCounters clears the Swiss-stage counters.
func (t *Team) ResetSwissCounters() {
	t.SwissWins, t.SwissLosses = 0, 0
	t.SwissOpponents = nil
}

// ResetIntlCounters clears the international group-stage counters.
func (t *Team) ResetIntlCounters() {
	t.IntlWins, t.IntlLosses = 0, 0
}
