package attack

import (
	"cmp"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/resilience/core"
)

// Order dispatches to the algorithm named by s. rng is only consulted by
// the Random strategy.
func Order[K cmp.Ordered](g *core.Graph[K], s Strategy, rng *rand.Rand) ([]K, error) {
	switch s {
	case Targeted:
		return TargetedOrder(g)
	case FastTargeted:
		return FastTargetedOrder(g)
	case Random:
		return RandomOrder(g, rng)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}
