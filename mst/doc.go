// Package mst computes minimum spanning trees of undirected, weighted
// graphs via Kruskal's and Prim's algorithms.
//
// Both algorithms consume the core.WeightedSource capability rather than
// a concrete graph type and return the tree as a slice of weighted edges
// plus its total weight.
//
//   - Kruskal: collect every connection once (adjacency stores each
//     connection twice; the mirror with the larger first endpoint is
//     dropped), sort ascending by weight with core.ByWeight under a
//     stable sort, then merge components with a union-find until V−1
//     edges are chosen. Ties between equal weights keep insertion order.
//     Complexity: O(E log E + α(V)·E) ≈ O(E log V).
//   - Prim: grow a single tree from a root vertex, keeping a min-heap of
//     frontier edges ordered by core.ByWeight and repeatedly adopting
//     the cheapest edge that reaches a new vertex.
//     Complexity: O(E log V).
//
// Self-loops are skipped by construction: a loop can never extend a
// spanning tree.
//
// Error Conditions:
//
//   - ErrNilSource      : source is nil.
//   - ErrDisconnected   : |V| == 0, or |V| > 1 and fewer than V−1 edges
//     could be chosen (no spanning tree exists).
//   - ErrUnknownMethod  : Compute received a Method it does not know.
//   - core.ErrVertexNotFound (Prim only): root does not resolve.
//
// A single-vertex graph has a trivial MST: no edges, weight 0.
//
// Use Kruskal when one global pass over all edges is natural; prefer
// Prim on sparse graphs with a known good starting vertex. Compute
// dispatches between them via Options.
package mst
