// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// weighted neighbor source.
//
// Dijkstra computes the minimum-cost path from a single root vertex to
// every other reachable vertex, assuming non-negative edge weights. It
// consumes the core.WeightedSource capability — vertex/index resolution
// plus weighted adjacency — so any structure satisfying that contract
// (core.WeightedGraph in this module) can drive it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted from the priority queue at most once.
//   - Each edge relaxation may push a new entry onto the heap
//     ("lazy decrease-key": stale entries are skipped when popped).
//   - Space: O(V + E) for the distance table and heap entries.
//
// Implementation notes:
//
//   - All edges are pre-scanned once (O(E)) to detect negative weights
//     and fail fast with ErrNegativeWeight.
//   - Exploration stops once the minimum distance in the heap exceeds
//     MaxDistance (WithMaxDistance).
//   - Distances are indexed by vertex index; unreachable vertices hold
//     math.Inf(1).
//
// Errors (sentinel):
//
//   - ErrNilSource        if the provided source is nil.
//   - ErrNegativeWeight   if any edge weight is negative.
//   - ErrOptionViolation  if an invalid option value is supplied.
//   - ErrUnreachable      from Result.PathTo for vertices the root
//     cannot reach.
//   - core.ErrVertexNotFound for an unknown root or destination value.
package dijkstra
