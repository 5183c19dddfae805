package gamemath

import "math/rand"

// Rand is a seeded uniform source. Two Rands with the same seed produce the
// same sequence.
type Rand struct {
	r *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Float01 returns a uniform value in [0, 1).
func (r *Rand) Float01() float64 {
	return r.r.Float64()
}
