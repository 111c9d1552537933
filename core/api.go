// File: api.go
// Role: Capability interfaces shared by Graph and WeightedGraph.
//
// Traversal and pathfinding collaborators depend on these contracts
// rather than on a concrete graph type, so the unweighted and weighted
// structures stay independent while remaining interchangeable wherever
// only queries are needed.
package core

// NeighborSource is the index/value query contract common to Graph and
// WeightedGraph. It is the full read surface an unweighted traversal
// (e.g. breadth-first search) needs to expand a frontier.
type NeighborSource[V comparable] interface {
	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of stored edge records (two per
	// undirected connection).
	EdgeCount() int

	// VertexAt returns the value at index, or ErrIndexOutOfRange.
	VertexAt(index int) (V, error)

	// IndexOf returns the first-matching index of value, or
	// ErrVertexNotFound.
	IndexOf(value V) (int, error)

	// NeighborsForIndex returns adjacent values in adjacency-list order,
	// or ErrIndexOutOfRange.
	NeighborsForIndex(index int) ([]V, error)

	// NeighborsForVertex composes IndexOf and NeighborsForIndex, or
	// ErrVertexNotFound.
	NeighborsForVertex(value V) ([]V, error)
}

// WeightedSource extends NeighborSource with weight-aware adjacency,
// the capability cost-driven collaborators (shortest path, minimum
// spanning tree) consume.
type WeightedSource[V comparable] interface {
	NeighborSource[V]

	// NeighborsForIndexWithWeights returns (vertex, weight) pairs in
	// adjacency-list order, or ErrIndexOutOfRange.
	NeighborsForIndexWithWeights(index int) ([]WeightedNeighbor[V], error)

	// EdgesForIndex returns a copy of the weighted adjacency list at
	// index, or ErrIndexOutOfRange.
	EdgesForIndex(index int) ([]WeightedEdge, error)
}

// Compile-time contract checks.
var (
	_ NeighborSource[string] = (*Graph[string])(nil)
	_ WeightedSource[string] = (*WeightedGraph[string])(nil)
)
