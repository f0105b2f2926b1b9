package models

// Hero is a playable avatar. Its two skill scalars blend with a player's
// own scalars during simulation. Heroes are only rebalanced by the
// season-rollover meta shift, never by match results.
type Hero struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Role      HeroRole `json:"role"`
	Mechanics int      `json:"mechanics"`
	Tactics   int      `json:"tactics"`
}

func (h *Hero) Clone() *Hero {
	cp := *h
	return &cp
}
