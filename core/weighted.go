package core

import "fmt"

// WeightedGraph is an undirected graph over vertex values of type V
// whose every connection carries a float64 weight.
//
// It offers the same index/value contract as Graph but owns its own
// parallel WeightedEdge adjacency storage rather than wrapping a Graph:
// the two structures are independent and share only the NeighborSource
// query contract.
//
// WeightedGraph is not safe for concurrent mutation.
type WeightedGraph[V comparable] struct {
	vertices []V
	edges    [][]WeightedEdge // edges[i] is the adjacency list of vertex i
}

// NewWeightedGraph returns a WeightedGraph seeded with the given
// vertices, in order. Backing storage is freshly allocated per call;
// the arguments are copied, never aliased.
// Complexity: O(len(vertices))
func NewWeightedGraph[V comparable](vertices ...V) *WeightedGraph[V] {
	g := &WeightedGraph[V]{
		vertices: make([]V, len(vertices)),
		edges:    make([][]WeightedEdge, len(vertices)),
	}
	copy(g.vertices, vertices)

	return g
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *WeightedGraph[V]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of stored edge records, twice the
// number of successful AddEdge* calls.
// Complexity: O(V)
func (g *WeightedGraph[V]) EdgeCount() int {
	total := 0
	for _, adj := range g.edges {
		total += len(adj)
	}

	return total
}

// AddVertex appends value together with an empty adjacency list for it
// and returns the new vertex's index.
// Complexity: O(1) amortized
func (g *WeightedGraph[V]) AddVertex(value V) int {
	g.vertices = append(g.vertices, value)
	g.edges = append(g.edges, nil)

	return len(g.vertices) - 1
}

// AddEdge stores e in U's adjacency list and its weight-preserving
// Reversed() mirror in V's. Both endpoints are validated before either
// list is touched, so a failed call leaves the graph unchanged.
//
// Returns ErrIndexOutOfRange if either endpoint index is invalid.
// Complexity: O(1) amortized
func (g *WeightedGraph[V]) AddEdge(e WeightedEdge) error {
	if !g.validIndex(e.U) || !g.validIndex(e.V) {
		return fmt.Errorf("%w: edge (%d,%d) in graph of %d vertices",
			ErrIndexOutOfRange, e.U, e.V, len(g.vertices))
	}
	g.edges[e.U] = append(g.edges[e.U], e)
	g.edges[e.V] = append(g.edges[e.V], e.Reversed())

	return nil
}

// AddEdgeByIndices connects the vertices at indices u and v with the
// given weight. Returns ErrIndexOutOfRange if either index is invalid.
func (g *WeightedGraph[V]) AddEdgeByIndices(u, v int, weight float64) error {
	return g.AddEdge(WeightedEdge{U: u, V: v, Weight: weight})
}

// AddEdgeByVertices connects the first occurrences of two vertex values
// with the given weight. Returns ErrVertexNotFound if either value is
// absent; the graph is unchanged on failure.
// Complexity: O(V) per endpoint lookup
func (g *WeightedGraph[V]) AddEdgeByVertices(first, second V, weight float64) error {
	u, err := g.IndexOf(first)
	if err != nil {
		return err
	}
	v, err := g.IndexOf(second)
	if err != nil {
		return err
	}

	return g.AddEdgeByIndices(u, v, weight)
}

// VertexAt returns the vertex value stored at index.
// Returns ErrIndexOutOfRange if index is invalid.
// Complexity: O(1)
func (g *WeightedGraph[V]) VertexAt(index int) (V, error) {
	if !g.validIndex(index) {
		var zero V
		return zero, fmt.Errorf("%w: index %d in graph of %d vertices",
			ErrIndexOutOfRange, index, len(g.vertices))
	}

	return g.vertices[index], nil
}

// IndexOf returns the index of the first vertex equal to value.
// Linear scan; first match wins when duplicate values exist.
// Returns ErrVertexNotFound if no vertex matches.
// Complexity: O(V)
func (g *WeightedGraph[V]) IndexOf(value V) (int, error) {
	for i, v := range g.vertices {
		if v == value {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, value)
}

// NeighborsForIndex returns the values adjacent to the vertex at index,
// in adjacency-list order, without weights.
// Returns ErrIndexOutOfRange if index is invalid.
// Complexity: O(deg)
func (g *WeightedGraph[V]) NeighborsForIndex(index int) ([]V, error) {
	if !g.validIndex(index) {
		return nil, fmt.Errorf("%w: index %d in graph of %d vertices",
			ErrIndexOutOfRange, index, len(g.vertices))
	}
	adj := g.edges[index]
	neighbors := make([]V, 0, len(adj))
	for _, e := range adj {
		neighbors = append(neighbors, g.vertices[e.V])
	}

	return neighbors, nil
}

// NeighborsForVertex resolves value to its first-matching index and
// returns that vertex's neighbors without weights.
// Returns ErrVertexNotFound if value is absent.
// Complexity: O(V + deg)
func (g *WeightedGraph[V]) NeighborsForVertex(value V) ([]V, error) {
	index, err := g.IndexOf(value)
	if err != nil {
		return nil, err
	}

	return g.NeighborsForIndex(index)
}

// NeighborsForIndexWithWeights returns (vertex, weight) pairs for each
// edge at index, preserving adjacency-list order. The mirror record at
// the opposite endpoint carries the same weight.
// Returns ErrIndexOutOfRange if index is invalid.
// Complexity: O(deg)
func (g *WeightedGraph[V]) NeighborsForIndexWithWeights(index int) ([]WeightedNeighbor[V], error) {
	if !g.validIndex(index) {
		return nil, fmt.Errorf("%w: index %d in graph of %d vertices",
			ErrIndexOutOfRange, index, len(g.vertices))
	}
	adj := g.edges[index]
	neighbors := make([]WeightedNeighbor[V], 0, len(adj))
	for _, e := range adj {
		neighbors = append(neighbors, WeightedNeighbor[V]{Vertex: g.vertices[e.V], Weight: e.Weight})
	}

	return neighbors, nil
}

// EdgesForIndex returns a copy of the adjacency list of the vertex at
// index. The graph retains exclusive ownership of its storage.
// Returns ErrIndexOutOfRange if index is invalid.
// Complexity: O(deg)
func (g *WeightedGraph[V]) EdgesForIndex(index int) ([]WeightedEdge, error) {
	if !g.validIndex(index) {
		return nil, fmt.Errorf("%w: index %d in graph of %d vertices",
			ErrIndexOutOfRange, index, len(g.vertices))
	}
	out := make([]WeightedEdge, len(g.edges[index]))
	copy(out, g.edges[index])

	return out, nil
}

// EdgesForVertex returns the adjacency list of the first vertex equal
// to value, composing IndexOf with EdgesForIndex.
// Returns ErrVertexNotFound if value is absent.
// Complexity: O(V + deg)
func (g *WeightedGraph[V]) EdgesForVertex(value V) ([]WeightedEdge, error) {
	index, err := g.IndexOf(value)
	if err != nil {
		return nil, err
	}

	return g.EdgesForIndex(index)
}

// validIndex reports whether index falls inside [0, VertexCount()).
func (g *WeightedGraph[V]) validIndex(index int) bool {
	return index >= 0 && index < len(g.vertices)
}
