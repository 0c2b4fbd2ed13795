package builder

import (
	"fmt"
	"math"
)

// Parameter domains shared by constructors.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN is rejected.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
