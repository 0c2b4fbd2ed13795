// Package connectivity provides breadth-first reachability and connected-component
// enumeration over a core.Graph.
//
// What
//
//   - Visited: the exact set of vertices reachable from a start vertex (the
//     start included). Each reachable vertex is enqueued exactly once, no matter
//     how many edges lead to it.
//   - Components: the connected components of an undirected graph. The returned
//     sets partition the vertex set: pairwise disjoint, union equal to V.
//   - LargestComponentSize: max |C| over all components, 0 for an empty graph.
//
// Why
//
//   - Resilience analysis re-evaluates the largest component after every vertex
//     removal, so these routines sit on the hot path of the evaluator.
//
// Determinism
//
//	Results are sets, so neighbor visit order does not matter and Visited uses
//	the unordered core.Graph.EachNeighbor. Components seeds its searches in
//	ascending vertex order, so the order of the returned slice is reproducible.
//
// Complexity
//
//   - Visited:              O(V_c + E_c) for the component of start.
//   - Components:           O(V + E), plus O(V·log V) for the seed order.
//   - LargestComponentSize: O(V + E).
//
// Errors
//
//   - ErrGraphNil:            nil graph.
//   - ErrStartVertexNotFound: start vertex is absent.
//   - ErrDirectedGraph:       component enumeration requested on a directed graph.
//   - ErrOptionViolation:     invalid option (e.g. negative MaxDepth).
package connectivity
