package models

import "fmt"

// Phase is the current stage of the season state machine.
type Phase string

const (
	PhaseRegularSeason  Phase = "regular_season"
	PhasePlayoffs       Phase = "playoffs"
	PhaseInvitational   Phase = "invitational"
	PhaseMidSeasonBreak Phase = "mid_season_break"
	PhasePromotion      Phase = "promotion_relegation"
	PhaseChampionship   Phase = "championship"
	PhaseSeasonEnd      Phase = "season_end"
)

// Split is a half of the season.
type Split string

const (
	SplitSpring Split = "spring"
	SplitSummer Split = "summer"
)

// PlayoffBracket is the transient top-4 single-elimination bracket of one
// league. It exists only during PhasePlayoffs.
type PlayoffBracket struct {
	Region string   `json:"region"`
	Tier   Tier     `json:"tier"`
	Semis  []*Match `json:"semis"`
	Final  *Match   `json:"final,omitempty"`
}

// PromotionTie is one promotion/relegation decider series: the winner plays
// top tier next season, the loser plays second tier.
type PromotionTie struct {
	Region string `json:"region"`
	Match  *Match `json:"match"`
}

// Invitational is the transient mid-season international event: two
// round-robin groups of eight feeding a single-elimination knockout.
type Invitational struct {
	Groups       [][]int    `json:"groups"`
	GroupMatches [][]*Match `json:"group_matches"`
	Quarters     []*Match   `json:"quarters,omitempty"`
	Semis        []*Match   `json:"semis,omitempty"`
	Final        *Match     `json:"final,omitempty"`
}

// Championship is the transient end-of-season international event: a Swiss
// stage of sixteen feeding a single-elimination knockout of eight.
type Championship struct {
	TeamIDs    []int    `json:"team_ids"`
	SwissRound int      `json:"swiss_round"`
	SwissDone  bool     `json:"swiss_done"`
	RoundOpen  []*Match `json:"round_open,omitempty"`
	Quarters   []*Match `json:"quarters,omitempty"`
	Semis      []*Match `json:"semis,omitempty"`
	Final      *Match   `json:"final,omitempty"`
}

// World is the whole game state: one aggregate value threaded through every
// engine call and replaced wholesale on each advancement step. Every field
// serializes to JSON; nothing is derived lazily.
type World struct {
	Year  int   `json:"year"`
	Split Split `json:"split"`
	Week  int   `json:"week"`
	Phase Phase `json:"phase"`

	Leagues     []*League `json:"leagues"`
	FreeAgents  []*Player `json:"free_agents,omitempty"`
	Heroes      []*Hero   `json:"heroes"`
	HumanTeamID int       `json:"human_team_id"`

	// Transient phase artifacts; non-nil only while their phase is active.
	Playoffs      []*PlayoffBracket `json:"playoffs,omitempty"`
	PromotionTies []*PromotionTie   `json:"promotion_ties,omitempty"`
	Invitational  *Invitational     `json:"invitational,omitempty"`
	Championship  *Championship     `json:"championship,omitempty"`

	News []NewsItem `json:"news,omitempty"`

	NextMatchID int `json:"next_match_id"`
	NextNewsID  int `json:"next_news_id"`
}

// League returns the league of a (region, tier) pair, or nil.
func (w *World) League(region string, tier Tier) *League {
	for _, l := range w.Leagues {
		if l.Region == region && l.Tier == tier {
			return l
		}
	}
	return nil
}

// TeamByID looks a team up across all leagues.
func (w *World) TeamByID(id int) *Team {
	for _, l := range w.Leagues {
		if t := l.TeamByID(id); t != nil {
			return t
		}
	}
	return nil
}

// MustTeam is TeamByID for callers holding an id that must exist; a miss is
// a data-integrity violation surfaced as an error, never swallowed.
func (w *World) MustTeam(id int) (*Team, error) {
	if t := w.TeamByID(id); t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("world: team %d not found", id)
}

// HumanTeam returns the human-controlled team, or nil before world gen.
func (w *World) HumanTeam() *Team {
	return w.TeamByID(w.HumanTeamID)
}

// PlayerByID searches rosters and the free-agent pool.
func (w *World) PlayerByID(id int) *Player {
	for _, l := range w.Leagues {
		for _, t := range l.Teams {
			for _, p := range t.Roster {
				if p.ID == id {
					return p
				}
			}
		}
	}
	for _, p := range w.FreeAgents {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// HeroByID returns the hero with the given id, or nil.
func (w *World) HeroByID(id int) *Hero {
	for _, h := range w.Heroes {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// NewMatch allocates a match id and returns a fresh unplayed match.
func (w *World) NewMatch(homeID, awayID, week, bestOf int, roundName string) *Match {
	w.NextMatchID++
	return &Match{
		ID:        w.NextMatchID,
		HomeID:    homeID,
		AwayID:    awayID,
		Week:      week,
		BestOf:    bestOf,
		RoundName: roundName,
	}
}

// PushNews appends a news item to the history and returns it.
func (w *World) PushNews(title, body, author, category string, meta map[string]string) NewsItem {
	w.NextNewsID++
	item := NewsItem{
		ID:       w.NextNewsID,
		Year:     w.Year,
		Week:     w.Week,
		Title:    title,
		Body:     body,
		Author:   author,
		Category: category,
		Meta:     meta,
	}
	w.News = append(w.News, item)
	return item
}

// Clone deep-copies the world. Advancement steps mutate a clone and the
// host swaps it in, so a failed step never leaves partial state behind.
func (w *World) Clone() *World {
	cp := *w
	cp.Leagues = make([]*League, len(w.Leagues))
	for i, l := range w.Leagues {
		cp.Leagues[i] = l.Clone()
	}
	cp.FreeAgents = make([]*Player, len(w.FreeAgents))
	for i, p := range w.FreeAgents {
		cp.FreeAgents[i] = p.Clone()
	}
	cp.Heroes = make([]*Hero, len(w.Heroes))
	for i, h := range w.Heroes {
		cp.Heroes[i] = h.Clone()
	}
	if w.Playoffs != nil {
		cp.Playoffs = make([]*PlayoffBracket, len(w.Playoffs))
		for i, b := range w.Playoffs {
			nb := &PlayoffBracket{Region: b.Region, Tier: b.Tier}
			nb.Semis = cloneMatches(b.Semis)
			if b.Final != nil {
				nb.Final = b.Final.Clone()
			}
			cp.Playoffs[i] = nb
		}
	}
	if w.PromotionTies != nil {
		cp.PromotionTies = make([]*PromotionTie, len(w.PromotionTies))
		for i, tie := range w.PromotionTies {
			cp.PromotionTies[i] = &PromotionTie{Region: tie.Region, Match: tie.Match.Clone()}
		}
	}
	if w.Invitational != nil {
		inv := &Invitational{}
		inv.Groups = make([][]int, len(w.Invitational.Groups))
		for i, g := range w.Invitational.Groups {
			inv.Groups[i] = append([]int(nil), g...)
		}
		inv.GroupMatches = make([][]*Match, len(w.Invitational.GroupMatches))
		for i, ms := range w.Invitational.GroupMatches {
			inv.GroupMatches[i] = cloneMatches(ms)
		}
		inv.Quarters = cloneMatches(w.Invitational.Quarters)
		inv.Semis = cloneMatches(w.Invitational.Semis)
		if w.Invitational.Final != nil {
			inv.Final = w.Invitational.Final.Clone()
		}
		cp.Invitational = inv
	}
	if w.Championship != nil {
		ch := &Championship{
			SwissRound: w.Championship.SwissRound,
			SwissDone:  w.Championship.SwissDone,
		}
		ch.TeamIDs = append([]int(nil), w.Championship.TeamIDs...)
		ch.RoundOpen = cloneMatches(w.Championship.RoundOpen)
		ch.Quarters = cloneMatches(w.Championship.Quarters)
		ch.Semis = cloneMatches(w.Championship.Semis)
		if w.Championship.Final != nil {
			ch.Final = w.Championship.Final.Clone()
		}
		cp.Championship = ch
	}
	cp.News = make([]NewsItem, len(w.News))
	for i, n := range w.News {
		cp.News[i] = n.clone()
	}
	return &cp
}

func cloneMatches(ms []*Match) []*Match {
	if ms == nil {
		return nil
	}
	out := make([]*Match, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
