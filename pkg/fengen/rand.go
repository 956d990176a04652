package fengen

import (
	"math/rand"
	"time"
)

// Source is the random capability the placement engine draws from.
// Any implementation works: pseudo-random, cryptographic, or a
// scripted one for deterministic tests.
type Source interface {
	// Bool is a fair coin flip.
	Bool() bool
	// Intn draws uniformly from [0, n). n must be positive.
	Intn(n int) int
}

type mathSource struct {
	rng *rand.Rand
}

// NewSource returns a time-seeded pseudo-random Source.
func NewSource() Source {
	return &mathSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *mathSource) Bool() bool {
	return s.rng.Intn(2) == 0
}

func (s *mathSource) Intn(n int) int {
	return s.rng.Intn(n)
}
