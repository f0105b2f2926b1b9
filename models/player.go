package models

// Contract binds a player to a team by id. The team id is a back-reference
// used for lookups, never a structural parent pointer: a player's team
// affiliation changes independently of the player's lifetime.
type Contract struct {
	TeamID  int `json:"team_id"`
	Salary  int `json:"salary"`
	EndYear int `json:"end_year"`
}

type Player struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Role LaneRole `json:"role"`

	// Core skill scalars, 0-100, moved only by training and rollover growth.
	Mechanics int `json:"mechanics"`
	Tactics   int `json:"tactics"`

	// Volatile condition scalars, 0-100, mutated after every match and
	// every week of recovery.
	Morale  int `json:"morale"`
	Form    int `json:"form"`
	Stamina int `json:"stamina"`

	// Potential is a static 1-10 scouting rank set at generation.
	Potential int `json:"potential"`

	// Contract is nil for free agents.
	Contract *Contract `json:"contract,omitempty"`

	MVPCount     int      `json:"mvp_count"`
	Achievements []string `json:"achievements,omitempty"`
}

// FreeAgent reports whether the player currently has no contract.
func (p *Player) FreeAgent() bool {
	return p.Contract == nil
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	cp := *p
	if p.Contract != nil {
		c := *p.Contract
		cp.Contract = &c
	}
	cp.Achievements = append([]string(nil), p.Achievements...)
	return &cp
}

// AddAchievement appends an achievement unless it is already recorded.
func (p *Player) AddAchievement(name string) {
	for _, a := range p.Achievements {
		if a == name {
			return
		}
	}
	p.Achievements = append(p.Achievements, name)
}
