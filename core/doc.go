// Package core provides an in-memory, index-addressed, undirected graph
// over a generic vertex type, in unweighted (Graph) and weighted
// (WeightedGraph) flavors.
//
// Data model
//
//   - Vertices live in an append-only sequence; a vertex's position in
//     that sequence is its index, and indices are the identity every
//     edge operation uses. Indices are stable because nothing is ever
//     removed.
//   - Edges live in adjacency lists, one list per vertex index. Every
//     undirected connection is stored as exactly two records: (U,V) in
//     U's list and its Reversed() mirror (V,U) in V's list. EdgeCount
//     therefore reports twice the number of connections, by contract.
//   - The two sequences grow in lockstep: AddVertex appends a vertex and
//     its empty adjacency list together, so len(edges) == len(vertices)
//     holds after every operation.
//
// Vertex values need not be unique. IndexOf is a linear scan that
// returns the first match, so by-value operations are ambiguous under
// duplicates; keeping values distinct is the caller's responsibility.
//
// Graph and WeightedGraph are independent structures: the weighted
// variant carries its own []WeightedEdge adjacency storage rather than
// layering weights onto Graph. Both satisfy NeighborSource, the query
// contract traversal collaborators consume; WeightedGraph additionally
// satisfies WeightedSource for cost-aware collaborators (see the
// dijkstra and mst packages).
//
// Core Methods (both flavors unless noted):
//
//	VertexCount() int                          // O(1)
//	EdgeCount() int                            // O(V), counts both directions
//	AddVertex(value V) int                     // O(1) amortized, returns new index
//	AddEdge(e Edge) error                      // O(1) amortized
//	AddEdgeByIndices(u, v int[, w]) error      // O(1) amortized
//	AddEdgeByVertices(first, second V[, w]) error // O(V) lookups
//	VertexAt(index int) (V, error)             // O(1)
//	IndexOf(value V) (int, error)              // O(V), first match wins
//	NeighborsForIndex(index int) ([]V, error)  // O(deg)
//	NeighborsForVertex(value V) ([]V, error)   // O(V + deg)
//	EdgesForIndex(index int) ([]Edge, error)   // O(deg), copies
//	EdgesForVertex(value V) ([]Edge, error)    // O(V + deg)
//	NeighborsForIndexWithWeights(index int) ([]WeightedNeighbor[V], error) // weighted only
//
// Errors:
//
//	ErrIndexOutOfRange – index argument outside [0, VertexCount())
//	ErrVertexNotFound  – value-based lookup matched no vertex
//
// Mutating operations validate every index before touching storage, so a
// failed call leaves the graph exactly as it was.
//
// Neither structure is safe for concurrent mutation. All operations are
// synchronous in-memory computations with no I/O and no locking; callers
// sharing a graph across goroutines must serialize access externally.
package core
