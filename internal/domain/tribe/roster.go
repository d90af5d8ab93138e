package tribe

import (
	"errors"
	"sort"
)

const (
	TribeSize     = 5
	traitsPerMate = 3
)

var ErrUnknownPreset = errors.New("unknown player preset")

// PresetByName looks up a selectable starting character.
func PresetByName(name string) (PlayerPreset, error) {
	for _, preset := range PlayerPresets() {
		if preset.Name == name {
			return preset, nil
		}
	}
	return PlayerPreset{}, ErrUnknownPreset
}

// GenerateTribe produces the starting tribe: TribeSize mates drawn from the
// name pool, each with three attributes and three flaws sampled without
// replacement from the trait table.
func GenerateTribe(table TraitTable, rng Rand) []Agent {
	attrPool := sortedKeys(table.Attributes)
	flawPool := sortedKeys(table.Flaws)

	mates := make([]Agent, 0, TribeSize)
	for _, name := range sample(rng, MateNamePool, TribeSize) {
		attrs := sample(rng, attrPool, traitsPerMate)
		flaws := sample(rng, flawPool, traitsPerMate)
		mates = append(mates, NewMate(name, attrs, flaws, table))
	}
	return mates
}

// NewGame assembles the round-zero state for a fresh session.
func NewGame(gameID string, preset PlayerPreset, table TraitTable, rng Rand) GameState {
	return GameState{
		GameID:  gameID,
		Day:     1,
		Player:  NewPlayer(preset),
		Tribe:   GenerateTribe(table, rng),
		Jury:    []Agent{},
		Phase:   PhaseCamp,
		Version: 1,
	}
}

// Map iteration order is random; the trait pools must be stable so a seeded
// Rand yields a reproducible tribe.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
