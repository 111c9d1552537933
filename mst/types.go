// Package mst defines configuration options and sentinel errors for
// minimum-spanning-tree computation, and the Compute dispatcher that
// selects between Kruskal and Prim.
package mst

import (
	"errors"
	"fmt"

	"github.com/vtxgraph/vtxgraph/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilSource indicates a nil weighted source.
	ErrNilSource = errors.New("mst: weighted source is nil")

	// ErrDisconnected indicates that no spanning tree covering all
	// vertices exists: the graph is empty or not fully connected.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates an unrecognized Options.Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Options configures which MST algorithm Compute runs and, for Prim,
// which starting vertex to use. Use DefaultOptions for the default
// setup (Kruskal).
type Options[V comparable] struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by
	// Kruskal. When unset, Prim starts from the vertex at index 0.
	Root V

	rootSet bool
}

// Option configures Options via functional arguments.
type Option[V comparable] func(*Options[V])

// WithMethod sets the algorithm Method.
// Allowed values: MethodKruskal, MethodPrim.
func WithMethod[V comparable](m string) Option[V] {
	return func(o *Options[V]) {
		o.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; Kruskal
// ignores it.
func WithRoot[V comparable](root V) Option[V] {
	return func(o *Options[V]) {
		o.Root = root
		o.rootSet = true
	}
}

// DefaultOptions returns Options initialized for Kruskal.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Method: MethodKruskal,
	}
}

// Compute selects and runs an MST algorithm based on the options.
//
//   - MethodKruskal (default): calls Kruskal(src).
//   - MethodPrim: calls Prim(src, root), defaulting the root to the
//     vertex at index 0 when WithRoot was not supplied.
//   - Anything else: ErrUnknownMethod.
//
// Returns the MST edge set, its total weight, and an error as documented
// on Kruskal and Prim.
func Compute[V comparable](src core.WeightedSource[V], opts ...Option[V]) ([]core.WeightedEdge, float64, error) {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(src)
	case MethodPrim:
		if src == nil {
			return nil, 0, ErrNilSource
		}
		root := cfg.Root
		if !cfg.rootSet {
			if src.VertexCount() == 0 {
				return nil, 0, ErrDisconnected
			}
			var err error
			if root, err = src.VertexAt(0); err != nil {
				return nil, 0, err
			}
		}
		return Prim(src, root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// spanningCandidates collects every connection of src exactly once.
// Adjacency lists store each connection as two mirrored records; keeping
// only records with U < V drops the mirrors and, as a side effect, the
// self-loops a spanning tree could never use.
func spanningCandidates[V comparable](src core.WeightedSource[V]) ([]core.WeightedEdge, error) {
	n := src.VertexCount()
	candidates := make([]core.WeightedEdge, 0, n)
	for i := 0; i < n; i++ {
		edges, err := src.EdgesForIndex(i)
		if err != nil {
			return nil, fmt.Errorf("mst: failed to read edges of %d: %w", i, err)
		}
		for _, e := range edges {
			if e.U < e.V {
				candidates = append(candidates, e)
			}
		}
	}

	return candidates, nil
}
