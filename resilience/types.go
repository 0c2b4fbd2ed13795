package resilience

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for resilience evaluation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("resilience: graph is nil")

	// ErrDirectedGraph is returned for directed graphs; component sizes are
	// defined on undirected graphs only.
	ErrDirectedGraph = errors.New("resilience: directed graphs not supported")
)

// Curve is the sequence of largest-component sizes observed during an attack.
type Curve []int

// Initial returns the size before any removal, or 0 for an empty curve.
func (c Curve) Initial() int {
	if len(c) == 0 {
		return 0
	}

	return c[0]
}

// Final returns the size after the last removal, or 0 for an empty curve.
func (c Curve) Final() int {
	if len(c) == 0 {
		return 0
	}

	return c[len(c)-1]
}

// Option configures Compute.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger sets the logger used for per-removal debug records and the
// final summary. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
