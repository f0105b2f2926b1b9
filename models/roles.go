package models

// LaneRole is one of the five fixed positions a player occupies in a lineup.
type LaneRole string

const (
	LaneTop      LaneRole = "top"
	LaneJungle   LaneRole = "jungle"
	LaneMid      LaneRole = "mid"
	LaneMarksman LaneRole = "marksman"
	LaneSupport  LaneRole = "support"
)

// AllLanes lists lane roles in lineup order.
var AllLanes = []LaneRole{LaneTop, LaneJungle, LaneMid, LaneMarksman, LaneSupport}

// HeroRole is the class tag carried by a hero, not a lane.
type HeroRole string

const (
	HeroFighter  HeroRole = "fighter"
	HeroTank     HeroRole = "tank"
	HeroAssassin HeroRole = "assassin"
	HeroMage     HeroRole = "mage"
	HeroMarksman HeroRole = "marksman"
	HeroSupport  HeroRole = "support"
)

// onRoleHeroes maps a lane to the hero classes considered on-role for it.
// Picking outside this set carries a power penalty in simulation.
var onRoleHeroes = map[LaneRole][]HeroRole{
	LaneTop:      {HeroFighter, HeroTank},
	LaneJungle:   {HeroAssassin, HeroFighter},
	LaneMid:      {HeroMage, HeroAssassin},
	LaneMarksman: {HeroMarksman},
	LaneSupport:  {HeroSupport, HeroTank},
}

// OnRole reports whether a hero class is a natural fit for the given lane.
func OnRole(lane LaneRole, role HeroRole) bool {
	for _, r := range onRoleHeroes[lane] {
		if r == role {
			return true
		}
	}
	return false
}
