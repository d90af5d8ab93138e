package tribe

// TraitTable maps trait names to their stat contributions. Attribute scores
// are non-negative, flaw penalties non-positive. The table is passed by
// reference into agent construction and never mutated.
type TraitTable struct {
	Attributes map[string]int
	Flaws      map[string]int
}

func DefaultTraitTable() TraitTable {
	return TraitTable{
		Attributes: map[string]int{
			"Extrovert":   5,
			"Disarming":   10,
			"Smart":       7,
			"Confident":   8,
			"Athletic":    6,
			"Resourceful": 7,
			"Sneaky":      4,
			"Sweet":       5,
			"Charismatic": 9,
			"Patient":     6,
			"Resilient":   9,
		},
		Flaws: map[string]int{
			"Cerebral":               -4,
			"Naive":                  -2,
			"Unathletic":             -5,
			"Moody":                  -6,
			"Insecure":               -7,
			"Follower":               -3,
			"Delusionally Confident": -6,
			"Self-Indulgent":         -5,
			"Jealous":                -8,
			"Blunt":                  -10,
		},
	}
}

// ValidTraits returns every trait name in the table, attributes first.
// The trait-recall contest accepts any of them.
func (t TraitTable) ValidTraits() []string {
	out := make([]string, 0, len(t.Attributes)+len(t.Flaws))
	for name := range t.Attributes {
		out = append(out, name)
	}
	for name := range t.Flaws {
		out = append(out, name)
	}
	return out
}

// MateNamePool is the fixed pool tribe mates are drawn from.
var MateNamePool = []string{
	"Brice", "Cirie", "Zeke", "Boston Rob", "Tasha", "Spencer",
	"Jaison", "Fabio", "Kass", "Ozzy", "Shan", "Adam", "Franny", "Q",
	"Donathan", "Desi", "Katurah", "Shambo", "Wendell", "Rachel",
	"Hunter", "Venus",
}

// PlayerPreset is one of the selectable starting characters.
type PlayerPreset struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
	Flaws      []string `json:"flaws"`
}

func PlayerPresets() []PlayerPreset {
	return []PlayerPreset{
		{
			Name:       "Evvie",
			Attributes: []string{"Extrovert", "Disarming", "Smart"},
			Flaws:      []string{"Cerebral", "Naive", "Unathletic"},
		},
		{
			Name:       "Teeny",
			Attributes: []string{"Disarming", "Sneaky", "Sweet"},
			Flaws:      []string{"Moody", "Insecure", "Follower"},
		},
		{
			Name:       "Parvati",
			Attributes: []string{"Confident", "Athletic", "Resourceful"},
			Flaws:      []string{"Delusionally Confident", "Self-Indulgent", "Jealous"},
		},
	}
}
