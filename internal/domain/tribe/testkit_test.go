package tribe

// scriptRand feeds deterministic sequences into the randomized rules.
// Intn pops the next scripted value modulo n; Float64 pops the next float.
// An exhausted script yields zeros.
type scriptRand struct {
	ints   []int
	floats []float64
}

func (r *scriptRand) Intn(n int) int {
	if n <= 0 {
		panic("Intn called with non-positive n")
	}
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func testMates(names ...string) []Agent {
	mates := make([]Agent, 0, len(names))
	for _, name := range names {
		mates = append(mates, Agent{
			Name:        name,
			Vitality:    70,
			VitalityMax: 100,
			Standing:    50,
		})
	}
	return mates
}

func testPlayer(standing, vitality int) Agent {
	return Agent{
		Name:        "P",
		Vitality:    vitality,
		VitalityMax: 100,
		Standing:    standing,
		IsPlayer:    true,
	}
}

func testState(player Agent, mates []Agent) GameState {
	return GameState{
		GameID:  "game-1",
		Day:     1,
		Player:  player,
		Tribe:   mates,
		Jury:    []Agent{},
		Phase:   PhaseCamp,
		Version: 1,
	}
}
