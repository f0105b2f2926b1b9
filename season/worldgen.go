package season

import (
	"fmt"

	"github.com/tylacb11-spec/lienquan-sub000/engine"
	"github.com/tylacb11-spec/lienquan-sub000/models"
)

// World generation: six regions, two tiers of eight teams each, five-player
// rosters by lane, a hero pool covering every class, and a small free-agent
// pool. The human team is the given team of the given region's top tier.

const (
	teamsPerTier    = 8
	startBudget     = 2_000_000
	secondTierScale = 80 // second-tier skill cap as a percentage
)

var teamWords1 = []string{
	"Crimson", "Azure", "Golden", "Shadow", "Iron", "Royal", "Storm", "Lunar",
	"Ember", "Frost", "Jade", "Obsidian", "Silver", "Phantom", "Thunder", "Vivid",
}

var teamWords2 = []string{
	"Dragons", "Wolves", "Phoenix", "Titans", "Serpents", "Falcons", "Giants",
	"Ravens", "Tigers", "Kraken", "Lions", "Vipers", "Hawks", "Spectres", "Bears", "Foxes",
}

var givenNames = []string{
	"Li", "Min", "Jun", "Hao", "Bin", "Tae", "Seo", "Kai", "Leo", "Max",
	"Ivo", "Ben", "Sam", "Rin", "Duy", "Anh", "Vu", "Khoa", "Nam", "Phong",
}

var gamerTags = []string{
	"Blade", "Nova", "Zeal", "Echo", "Pulse", "Drift", "Spark", "Viper",
	"Ghost", "Rogue", "Titan", "Comet", "Shade", "Bolt", "Frost", "Sage",
	"Raze", "Onyx", "Vex", "Lumen", "Cipher", "Havoc", "Mirage", "Quill",
}

var heroNames = []string{
	"Aurix", "Belka", "Cindral", "Dareth", "Elowen", "Fenrik", "Galea",
	"Hollow", "Ishtar", "Jarek", "Kaida", "Lorvan", "Mythra", "Nerith",
	"Oberon", "Pyra", "Quorin", "Ravas", "Sylphie", "Tormund", "Umbra",
	"Veyra", "Wrenna", "Xal", "Ysolde", "Zephyr", "Ardan", "Brassa", "Corvin", "Drezna",
}

var heroRoleCycle = []models.HeroRole{
	models.HeroFighter, models.HeroTank, models.HeroAssassin,
	models.HeroMage, models.HeroMarksman, models.HeroSupport,
}

// GenerateWorld builds a fresh world in week 1 of the spring regular
// season. humanRegion must be one of Regions; the human team keeps the
// given name and starts in the top tier.
func GenerateWorld(rng engine.Rand, humanRegion, humanTeamName string) (*models.World, error) {
	if !containsString(Regions, humanRegion) {
		return nil, fmt.Errorf("season: unknown region %q", humanRegion)
	}
	w := &models.World{
		Year:  1,
		Split: models.SplitSpring,
		Week:  1,
		Phase: models.PhaseRegularSeason,
	}

	gen := &worldGen{rng: rng, w: w}
	gen.heroes()
	for _, region := range Regions {
		for _, tier := range []models.Tier{models.TierTop, models.TierSecond} {
			league := &models.League{Region: region, Tier: tier}
			for i := 0; i < teamsPerTier; i++ {
				league.Teams = append(league.Teams, gen.team(region, tier))
			}
			w.Leagues = append(w.Leagues, league)
		}
	}

	human := w.League(humanRegion, models.TierTop).Teams[0]
	if humanTeamName != "" {
		human.Name = humanTeamName
	}
	w.HumanTeamID = human.ID

	for i := 0; i < 20; i++ {
		p := gen.player(models.AllLanes[i%len(models.AllLanes)], 100)
		p.Contract = nil
		w.FreeAgents = append(w.FreeAgents, p)
	}

	m := &Machine{rng: rng}
	m.rebuildSchedules(w)
	return w, nil
}

type worldGen struct {
	rng        engine.Rand
	w          *models.World
	nextTeam   int
	nextPlayer int
	usedNames  map[string]bool
}

func (g *worldGen) heroes() {
	for i, name := range heroNames {
		g.w.Heroes = append(g.w.Heroes, &models.Hero{
			ID:        i + 1,
			Name:      name,
			Role:      heroRoleCycle[i%len(heroRoleCycle)],
			Mechanics: 55 + g.rng.Intn(36),
			Tactics:   55 + g.rng.Intn(36),
		})
	}
}

func (g *worldGen) team(region string, tier models.Tier) *models.Team {
	g.nextTeam++
	scale := 100
	if tier == models.TierSecond {
		scale = secondTierScale
	}
	t := &models.Team{
		ID:            g.nextTeam,
		Name:          g.teamName(region),
		Region:        region,
		Tier:          tier,
		Budget:        startBudget,
		WeeklyIncome:  60_000 + g.rng.Intn(20_000),
		WeeklyExpense: 45_000 + g.rng.Intn(15_000),
		StaffLevel:    1 + g.rng.Intn(3),
	}
	for _, lane := range models.AllLanes {
		p := g.player(lane, scale)
		p.Contract = &models.Contract{
			TeamID:  t.ID,
			Salary:  8_000 + g.rng.Intn(12_000),
			EndYear: 1 + g.rng.Intn(3),
		}
		t.Roster = append(t.Roster, p)
	}
	// one substitute
	sub := g.player(models.AllLanes[g.rng.Intn(len(models.AllLanes))], scale)
	sub.Contract = &models.Contract{TeamID: t.ID, Salary: 5_000 + g.rng.Intn(5_000), EndYear: 1 + g.rng.Intn(2)}
	t.Roster = append(t.Roster, sub)
	return t
}

func (g *worldGen) teamName(region string) string {
	if g.usedNames == nil {
		g.usedNames = make(map[string]bool)
	}
	for {
		name := fmt.Sprintf("%s %s %s", region,
			engine.Pick(g.rng, teamWords1), engine.Pick(g.rng, teamWords2))
		if !g.usedNames[name] {
			g.usedNames[name] = true
			return name
		}
	}
}

func (g *worldGen) player(lane models.LaneRole, scalePct int) *models.Player {
	g.nextPlayer++
	skill := func() int {
		v := 50 + g.rng.Intn(41)
		return v * scalePct / 100
	}
	return &models.Player{
		ID:        g.nextPlayer,
		Name:      fmt.Sprintf("%s \"%s\"", engine.Pick(g.rng, givenNames), engine.Pick(g.rng, gamerTags)),
		Role:      lane,
		Mechanics: skill(),
		Tactics:   skill(),
		Morale:    70,
		Form:      40 + g.rng.Intn(31),
		Stamina:   100,
		Potential: 1 + g.rng.Intn(10),
	}
}
