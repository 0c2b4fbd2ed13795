package attack

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for attack-order computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("attack: graph is nil")

	// ErrDirectedGraph is returned for directed graphs; degree-based attacks
	// are defined on undirected graphs only.
	ErrDirectedGraph = errors.New("attack: directed graphs not supported")

	// ErrUnknownStrategy is returned by ParseStrategy and Order for an
	// unrecognized strategy name.
	ErrUnknownStrategy = errors.New("attack: unknown strategy")
)

// Strategy names an attack-order algorithm.
type Strategy string

const (
	// Targeted selects TargetedOrder.
	Targeted Strategy = "targeted"
	// FastTargeted selects FastTargetedOrder.
	FastTargeted Strategy = "fast"
	// Random selects RandomOrder.
	Random Strategy = "random"
)

// Strategies lists every supported strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{Targeted, FastTargeted, Random}
}

// ParseStrategy maps a case-insensitive name onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case Targeted, FastTargeted, Random:
		return s, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
