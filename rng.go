package quantum

import (
	"time"

	"golang.org/x/exp/rand"
)

// newRand returns a pseudo-random source, seeded from the caller's seed
// when one is given so phase generation, collapse sampling and annealing
// proposals can be replayed exactly.
func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}
