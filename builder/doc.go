// Package builder provides reusable “functional‐options”‐style graph
// generators for resilience experiments. Every generator produces a
// *core.Graph[int] whose vertices are 0..n-1.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG.
//   - Constructors:
//     – Complete(n):        the complete graph K_n.
//     – RandomSparse(n,p):  Erdős–Rényi G(n,p); each admissible edge kept with probability p.
//   - Validation helpers:
//     – validateMin:         ensure integer ≥ minimum.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//
// Guarantees:
//
//   - Determinism: a fixed seed (WithSeed) yields an identical graph.
//   - No hidden globals: randomness flows only through WithSeed/WithRand.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with the
//     constructor name for context.
//
// Complexity:
//
//   - Complete:     O(n²) edges.
//   - RandomSparse: O(n²) Bernoulli trials.
package builder
