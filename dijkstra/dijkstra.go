package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/vtxgraph/vtxgraph/core"
)

// Dijkstra computes shortest distances from root to all reachable
// vertices of src. It accepts functional options to customize behavior.
//
// Preconditions and validation (in order):
//  1. src must be non-nil (ErrNilSource).
//  2. Options must be valid (ErrOptionViolation).
//  3. root must resolve to an index (core.ErrVertexNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight, fail fast).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V comparable](src core.WeightedSource[V], root V, opts ...Option) (*Result[V], error) {
	// 1) Validate source
	if src == nil {
		return nil, ErrNilSource
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Resolve root to its index (first match wins under duplicates)
	rootIdx, err := src.IndexOf(root)
	if err != nil {
		return nil, err
	}

	n := src.VertexCount()

	// 4) Pre-scan all adjacency lists to detect negative weights.
	//    Each connection is stored twice; scanning both records is
	//    harmless for this check.
	for i := 0; i < n; i++ {
		edges, eErr := src.EdgesForIndex(i)
		if eErr != nil {
			return nil, fmt.Errorf("dijkstra: failed to read edges of %d: %w", i, eErr)
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge (%d,%d) weight=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
			}
		}
	}

	// 5) Prepare distance table: +Inf everywhere except the root.
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[rootIdx] = 0

	// 6) Initialize runner state and run the main loop.
	r := &runner[V]{
		src:     src,
		options: cfg,
		dist:    dist,
		pathMap: make(map[int]core.WeightedEdge, n),
		visited: make([]bool, n),
		pq:      make(distPQ, 0, n),
	}
	r.init(rootIdx)
	if err = r.process(); err != nil {
		return nil, err
	}

	return &Result[V]{
		src:     src,
		rootIdx: rootIdx,
		Dist:    r.dist,
		PathMap: r.pathMap,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	src     core.WeightedSource[V]    // read-only weighted adjacency
	options Options                   // configuration (MaxDistance)
	dist    []float64                 // vertex index → best-known distance
	pathMap map[int]core.WeightedEdge // vertex index → edge arriving there
	visited []bool                    // finalized vertices
	pq      distPQ                    // lazy-decrease-key min-heap
}

// init establishes heap invariants and seeds the root at distance 0.
func (r *runner[V]) init(rootIdx int) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &distItem{index: rootIdx, dist: 0})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes
// its outgoing edges, until the heap drains or MaxDistance is exceeded.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*distItem)

		// Skip stale heap entries (already finalized).
		if r.visited[item.index] {
			continue
		}
		// Beyond the cap, nothing closer remains in the heap.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.index] = true

		if err := r.relax(item.index); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve distances to every neighbor of u; improved
// vertices get a new heap entry (stale ones are skipped on pop).
func (r *runner[V]) relax(u int) error {
	edges, err := r.src.EdgesForIndex(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to read edges of %d: %w", u, err)
	}

	for _, e := range edges {
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[e.V] {
			continue
		}

		r.dist[e.V] = newDist
		r.pathMap[e.V] = e
		heap.Push(&r.pq, &distItem{index: e.V, dist: newDist})
	}

	return nil
}

// Result holds the outcome of a Dijkstra run.
//
//   - Dist: best distance per vertex index; math.Inf(1) if unreachable.
//   - PathMap: for each reached non-root index, the edge the shortest
//     path arrives through. Walking PathMap from a destination back to
//     the root reconstructs the path.
type Result[V comparable] struct {
	src     core.WeightedSource[V]
	rootIdx int

	Dist    []float64
	PathMap map[int]core.WeightedEdge
}

// DistTo returns the shortest distance to dest, resolving dest by value.
// Unreachable destinations report math.Inf(1).
// Returns core.ErrVertexNotFound for unknown values.
func (r *Result[V]) DistTo(dest V) (float64, error) {
	idx, err := r.src.IndexOf(dest)
	if err != nil {
		return 0, err
	}

	return r.Dist[idx], nil
}

// PathTo reconstructs the shortest path to dest as the sequence of
// weighted edges from the root, in travel order. The path to the root
// itself is empty.
// Returns core.ErrVertexNotFound for unknown values and ErrUnreachable
// when no path exists.
func (r *Result[V]) PathTo(dest V) ([]core.WeightedEdge, error) {
	idx, err := r.src.IndexOf(dest)
	if err != nil {
		return nil, err
	}
	if idx == r.rootIdx {
		return []core.WeightedEdge{}, nil
	}
	if math.IsInf(r.Dist[idx], 1) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}

	// walk arrival edges back to the root
	path := []core.WeightedEdge{}
	for cur := idx; cur != r.rootIdx; {
		e := r.PathMap[cur]
		path = append(path, e)
		cur = e.U
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// distItem pairs a vertex index with its candidate distance from root.
type distItem struct {
	index int
	dist  float64
}

// distPQ is a min-heap of *distItem ordered by dist ascending, used with
// the lazy-decrease-key strategy: improved distances push duplicates and
// stale entries are ignored when popped.
type distPQ []*distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(*distItem)) }

func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
