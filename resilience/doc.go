// Package resilience replays an attack order against a graph and records
// how the largest connected component shrinks.
//
// Compute returns a Curve of length len(order)+1: element 0 is the largest
// component size of the intact graph and element i the size after the first
// i removals.
//
// Compute mutates the graph it is given; pass g.Clone() to keep the
// original. The order is checked against the graph before the first
// removal, so an invalid order never leaves a half-attacked graph behind.
//
// Example:
//
//	order, _ := attack.FastTargetedOrder(g)
//	curve, err := resilience.Compute(g.Clone(), order)
package resilience
