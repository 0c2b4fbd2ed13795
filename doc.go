// Package resilience is an in-memory toolkit for measuring how a network
// falls apart when its nodes are removed one by one.
//
// What is inside?
//
//	core/         — generic Graph: vertices, edges, O(degree) vertex removal, deep copies
//	connectivity/ — BFS reachability, connected components, largest component size
//	attack/       — attack orders: naive max-degree, degree-bucket max-degree, random
//	resilience/   — replays an attack order and records the resilience curve
//	degree/       — in-degree counts and distributions
//	builder/      — complete and Erdős–Rényi graph generators
//	loader/       — adjacency text format from files and URLs
//	cmd/resilience — command line driver and HTTP API
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)},
//		builder.RandomSparse(1000, 0.004))
//	order, _ := attack.FastTargetedOrder(g)
//	curve, _ := resilience.Compute(g.Clone(), order)
//
// curve[i] is the size of the largest connected component after the first
// i removals.
package resilience
