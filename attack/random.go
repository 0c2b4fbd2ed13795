package attack

import (
	"cmp"
	"math/rand"

	"github.com/katalvlaran/resilience/core"
)

// defaultRNGSeed is used for seed 0 and when RandomOrder receives a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for RandomOrder.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomOrder returns a uniformly random permutation of the vertices of g,
// drawn from rng by a Fisher–Yates shuffle of the sorted vertex list. A nil
// rng falls back to a fixed default seed, so results are always reproducible.
// Works on directed and undirected graphs alike; g is not modified.
//
// Complexity: O(n·log n) for the sort, O(n) for the shuffle.
func RandomOrder[K cmp.Ordered](g *core.Graph[K], rng *rand.Rand) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if rng == nil {
		rng = NewRand(0)
	}

	order := g.Vertices()
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return order, nil
}
