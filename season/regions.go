package season

// Regions is the fixed set of competitive regions, majors first.
var Regions = []string{"CN", "KR", "EU", "NA", "SEA", "SA"}

// MajorRegions qualify their top four for the mid-season invitational.
var MajorRegions = []string{"CN", "KR", "EU", "NA"}

// ChampionshipDoubleSlotRegions send third and fourth place to the world
// championship on top of the usual two slots.
var ChampionshipDoubleSlotRegions = []string{"CN", "KR"}
