package models

// League is the (region, tier) pair owning a team set and its schedule.
// Exactly one league exists per pair.
type League struct {
	Region   string   `json:"region"`
	Tier     Tier     `json:"tier"`
	Teams    []*Team  `json:"teams"`
	Schedule []*Match `json:"schedule"`
}

// TeamByID returns the league team with the given id, or nil.
func (l *League) TeamByID(id int) *Team {
	for _, t := range l.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// WeekMatches returns the scheduled matches of one week, in schedule order.
func (l *League) WeekMatches(week int) []*Match {
	var out []*Match
	for _, m := range l.Schedule {
		if m.Week == week {
			out = append(out, m)
		}
	}
	return out
}

func (l *League) Clone() *League {
	cp := &League{Region: l.Region, Tier: l.Tier}
	cp.Teams = make([]*Team, len(l.Teams))
	for i, t := range l.Teams {
		cp.Teams[i] = t.Clone()
	}
	cp.Schedule = make([]*Match, len(l.Schedule))
	for i, m := range l.Schedule {
		cp.Schedule[i] = m.Clone()
	}
	return cp
}
