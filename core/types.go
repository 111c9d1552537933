// Package core declares the Edge and WeightedEdge records, the weight
// comparator used by sorting consumers, and the sentinel errors shared
// by every graph operation.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrIndexOutOfRange indicates an index argument outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrVertexNotFound indicates a value-based lookup matched no vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is one stored direction of an undirected, unweighted connection
// between two vertex indices. Every connection is materialized as two
// Edge records: (U,V) in U's adjacency list and the Reversed() mirror
// (V,U) in V's.
type Edge struct {
	// U is the index of the vertex whose adjacency list holds this record.
	U int

	// V is the index of the neighboring vertex.
	V int
}

// Reversed returns the mirror record (V,U) that populates the other
// endpoint's adjacency list.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// WeightedEdge is an edge record carrying a float64 cost. Both stored
// directions of a connection carry the same weight.
//
// Weighted edges order by Weight alone; see ByWeight.
type WeightedEdge struct {
	// U is the index of the vertex whose adjacency list holds this record.
	U int

	// V is the index of the neighboring vertex.
	V int

	// Weight is the cost of traversing the connection.
	Weight float64
}

// Reversed returns the mirror record with endpoints swapped and the
// weight preserved.
func (e WeightedEdge) Reversed() WeightedEdge {
	return WeightedEdge{U: e.V, V: e.U, Weight: e.Weight}
}

// ByWeight reports whether a orders strictly before b, comparing by
// Weight only. Equal weights are unordered; pair ByWeight with
// sort.SliceStable when insertion order must survive ties.
func ByWeight(a, b WeightedEdge) bool { return a.Weight < b.Weight }

// WeightedNeighbor pairs a neighboring vertex value with the weight of
// the edge reaching it, as returned by NeighborsForIndexWithWeights.
type WeightedNeighbor[V comparable] struct {
	// Vertex is the neighboring vertex value.
	Vertex V

	// Weight is the cost of the connecting edge.
	Weight float64
}
