package tribe

import (
	"math/rand"
	"time"
)

// Rand is the randomness consumed by the voting and contest rules. Tests
// inject scripted sequences; production wiring uses math/rand.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a Rand seeded with the given seed, or with the current
// time when seed is zero.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly chosen element of names.
func pick(rng Rand, names []string) string {
	return names[rng.Intn(len(names))]
}

// sample returns n distinct elements drawn uniformly from pool without
// modifying it.
func sample(rng Rand, pool []string, n int) []string {
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	for i := len(idx) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}
