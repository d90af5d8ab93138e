package tribe

const (
	baseVitality    = 70
	baseStanding    = 50
	defaultMaxVital = 100

	playerStartVitality = 100
	playerStartStanding = 50
)

// NewMate builds a non-player agent whose stats derive from its traits.
func NewMate(name string, attributes, flaws []string, table TraitTable) Agent {
	a := Agent{
		Name:        name,
		VitalityMax: defaultMaxVital,
		Attributes:  attributes,
		Flaws:       flaws,
	}
	a.InitializeStats(table)
	return a
}

// NewPlayer builds the controlled agent from a preset. Players start at
// fixed stats instead of trait-derived ones.
func NewPlayer(preset PlayerPreset) Agent {
	return Agent{
		Name:        preset.Name,
		Vitality:    playerStartVitality,
		VitalityMax: defaultMaxVital,
		Standing:    playerStartStanding,
		Attributes:  preset.Attributes,
		Flaws:       preset.Flaws,
		IsPlayer:    true,
	}
}

// InitializeStats derives vitality and standing from the agent's traits:
// each attribute adds its score to standing and half the score to vitality,
// each flaw does the same with its penalty. Halving floors toward negative
// infinity, so a -7 flaw costs 4 vitality.
func (a *Agent) InitializeStats(table TraitTable) {
	a.Vitality = baseVitality
	a.Standing = baseStanding
	for _, attr := range a.Attributes {
		score := table.Attributes[attr]
		a.Standing += score
		a.Vitality += halfFloor(score)
	}
	for _, flaw := range a.Flaws {
		penalty := table.Flaws[flaw]
		a.Standing += penalty
		a.Vitality += halfFloor(penalty)
	}
	if a.Vitality > a.VitalityMax {
		a.Vitality = a.VitalityMax
	}
	if a.Vitality < 0 {
		a.Vitality = 0
	}
	if a.Standing < 0 {
		a.Standing = 0
	}
}

// ApplyVitality adjusts vitality, clamped to [0, VitalityMax].
func (a *Agent) ApplyVitality(delta int) {
	a.Vitality += delta
	if a.Vitality > a.VitalityMax {
		a.Vitality = a.VitalityMax
	}
	if a.Vitality < 0 {
		a.Vitality = 0
	}
}

// ApplyStanding adjusts standing, floored at 0. Standing has no ceiling.
func (a *Agent) ApplyStanding(delta int) {
	a.Standing += delta
	if a.Standing < 0 {
		a.Standing = 0
	}
}

func (a *Agent) IsAlive() bool {
	return a.Vitality > 0
}

func halfFloor(n int) int {
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}
