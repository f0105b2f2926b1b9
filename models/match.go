package models

// GameResult is one game inside a series.
type GameResult struct {
	WinnerID  int   `json:"winner_id"`
	HomeKills int   `json:"home_kills"`
	AwayKills int   `json:"away_kills"`
	MVPID     int   `json:"mvp_id"`
	HomePicks []int `json:"home_picks,omitempty"`
	AwayPicks []int `json:"away_picks,omitempty"`
}

// Match is a scheduled series between two teams. It is created by the
// schedule generator or by bracket advancement, has its result set exactly
// once, and is never deleted.
type Match struct {
	ID        int    `json:"id"`
	HomeID    int    `json:"home_id"`
	AwayID    int    `json:"away_id"`
	Week      int    `json:"week"`
	BestOf    int    `json:"best_of"`
	RoundName string `json:"round_name,omitempty"`

	Played    bool         `json:"played"`
	HomeScore int          `json:"home_score"`
	AwayScore int          `json:"away_score"`
	Games     []GameResult `json:"games,omitempty"`
}

// WinnerID returns the winning team id, or 0 for an unplayed match.
func (m *Match) WinnerID() int {
	if !m.Played {
		return 0
	}
	if m.HomeScore > m.AwayScore {
		return m.HomeID
	}
	return m.AwayID
}

// LoserID returns the losing team id, or 0 for an unplayed match.
func (m *Match) LoserID() int {
	if !m.Played {
		return 0
	}
	if m.HomeScore > m.AwayScore {
		return m.AwayID
	}
	return m.HomeID
}

// Involves reports whether the given team plays in this match.
func (m *Match) Involves(teamID int) bool {
	return m.HomeID == teamID || m.AwayID == teamID
}

func (m *Match) Clone() *Match {
	cp := *m
	cp.Games = make([]GameResult, len(m.Games))
	for i, g := range m.Games {
		cp.Games[i] = g
		cp.Games[i].HomePicks = append([]int(nil), g.HomePicks...)
		cp.Games[i].AwayPicks = append([]int(nil), g.AwayPicks...)
	}
	return &cp
}
