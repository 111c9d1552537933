package core

import "fmt"

// Graph is an undirected, unweighted graph over vertex values of type V.
//
// Vertices are addressed by index (their position in the append-only
// vertex sequence); values are resolved to indices with a first-match
// linear scan, so duplicate values make by-value operations ambiguous.
//
// Graph is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize access externally.
type Graph[V comparable] struct {
	vertices []V
	edges    [][]Edge // edges[i] is the adjacency list of vertex i
}

// NewGraph returns a Graph seeded with the given vertices, in order.
// Backing storage is freshly allocated per call; the arguments are
// copied, never aliased, so callers may reuse their slice freely.
// Complexity: O(len(vertices))
func NewGraph[V comparable](vertices ...V) *Graph[V] {
	g := &Graph[V]{
		vertices: make([]V, len(vertices)),
		edges:    make([][]Edge, len(vertices)),
	}
	copy(g.vertices, vertices)

	return g
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph[V]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the total number of stored edge records. Each
// undirected connection contributes one record per direction, so the
// result is twice the number of successful AddEdge* calls.
// Complexity: O(V)
func (g *Graph[V]) EdgeCount() int {
	total := 0
	for _, adj := range g.edges {
		total += len(adj)
	}

	return total
}

// AddVertex appends value together with an empty adjacency list for it,
// keeping the vertex and edge sequences aligned, and returns the new
// vertex's index.
// Complexity: O(1) amortized
func (g *Graph[V]) AddVertex(value V) int {
	g.vertices = append(g.vertices, value)
	g.edges = append(g.edges, nil)

	return len(g.vertices) - 1
}

// AddEdge stores e in U's adjacency list and its Reversed() mirror in
// V's. Both endpoints are validated before either list is touched, so a
// failed call leaves the graph unchanged.
//
// Returns ErrIndexOutOfRange if either endpoint index is invalid.
// Complexity: O(1) amortized
func (g *Graph[V]) AddEdge(e Edge) error {
	if !g.validIndex(e.U) || !g.validIndex(e.V) {
		return fmt.Errorf("%w: edge (%d,%d) in graph of %d vertices",
			ErrIndexOutOfRange, e.U, e.V, len(g.vertices))
	}
	g.edges[e.U] = append(g.edges[e.U], e)
	g.edges[e.V] = append(g.edges[e.V], e.Reversed())

	return nil
}

// AddEdgeByIndices connects the vertices at indices u and v.
// Returns ErrIndexOutOfRange if either index is invalid.
func (g *Graph[V]) AddEdgeByIndices(u, v int) error {
	return g.AddEdge(Edge{U: u, V: v})
}

// AddEdgeByVertices connects the first occurrences of two vertex
// values. Returns ErrVertexNotFound if either value is absent; the
// graph is unchanged on failure.
// Complexity: O(V) per endpoint lookup
func (g *Graph[V]) AddEdgeByVertices(first, second V) error {
	u, err := g.IndexOf(first)
	if err != nil {
		return err
	}
	v, err := g.IndexOf(second)
	if err != nil {
		return err
	}

	return g.AddEdgeByIndices(u, v)
}

// VertexAt returns the vertex value stored at index.
// Returns ErrIndexOutOfRange if index is invalid.
// Complexity: O(1)
func (g *Graph[V]) VertexAt(index int) (V, error) {
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
func (g *Graph[V]) IndexOf(value V) (int, error) {
	for i, v := range g.vertices {
		if v == value {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, value)
}

// NeighborsForIndex returns the values adjacent to the vertex at index,
// in adjacency-list order. Mirror records appear in the order their
// owning connection was added, not necessarily the order edges were
// added from this vertex's own perspective.
// Returns ErrIndexOutOfRange if index is invalid.
// Complexity: O(deg)
func (g *Graph[V]) NeighborsForIndex(index int) ([]V, error) {
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
// returns that vertex's neighbors.
// Returns ErrVertexNotFound if value is absent.
// Complexity: O(V + deg)
func (g *Graph[V]) NeighborsForVertex(value V) ([]V, error) {
	index, err := g.IndexOf(value)
	if err != nil {
		return nil, err
	}

	return g.NeighborsForIndex(index)
}

// EdgesForIndex returns a copy of the adjacency list of the vertex at
// index. The graph retains exclusive ownership of its storage; mutating
// the returned slice does not affect the graph.
// Returns ErrIndexOutOfRange if index is invalid.
// Complexity: O(deg)
func (g *Graph[V]) EdgesForIndex(index int) ([]Edge, error) {
	if !g.validIndex(index) {
		return nil, fmt.Errorf("%w: index %d in graph of %d vertices",
			ErrIndexOutOfRange, index, len(g.vertices))
	}
	out := make([]Edge, len(g.edges[index]))
	copy(out, g.edges[index])

	return out, nil
}

// EdgesForVertex returns the adjacency list of the first vertex equal
// to value, composing IndexOf with EdgesForIndex.
// Returns ErrVertexNotFound if value is absent.
// Complexity: O(V + deg)
func (g *Graph[V]) EdgesForVertex(value V) ([]Edge, error) {
	index, err := g.IndexOf(value)
	if err != nil {
		return nil, err
	}

	return g.EdgesForIndex(index)
}

// validIndex reports whether index falls inside [0, VertexCount()).
func (g *Graph[V]) validIndex(index int) bool {
	return index >= 0 && index < len(g.vertices)
}
