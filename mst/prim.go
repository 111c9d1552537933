// Prim's Minimum Spanning Tree over a weighted source: single-tree
// growth from a root through a min-heap frontier.
package mst

import (
	"container/heap"
	"fmt"

	"github.com/vtxgraph/vtxgraph/core"
)

// Prim computes the minimum spanning tree of src by growing a single
// tree from root. A min-heap holds the frontier edges (tree → outside),
// ordered by core.ByWeight; each round adopts the cheapest edge that
// reaches a vertex not yet in the tree.
//
// Returns core.ErrVertexNotFound when root does not resolve and
// ErrDisconnected when the tree cannot span every vertex.
//
// Complexity: O(E log V). Memory: O(V + E).
func Prim[V comparable](src core.WeightedSource[V], root V) ([]core.WeightedEdge, float64, error) {
	if src == nil {
		return nil, 0, ErrNilSource
	}

	n := src.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	rootIdx, err := src.IndexOf(root)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		return []core.WeightedEdge{}, 0, nil
	}

	visited := make([]bool, n)
	pq := make(edgePQ, 0, n)
	heap.Init(&pq)

	// grow marks index as in-tree and pushes its edges to outside
	// vertices onto the frontier.
	grow := func(index int) error {
		visited[index] = true
		edges, eErr := src.EdgesForIndex(index)
		if eErr != nil {
			return fmt.Errorf("mst: failed to read edges of %d: %w", index, eErr)
		}
		for _, e := range edges {
			if !visited[e.V] {
				heap.Push(&pq, e)
			}
		}
		return nil
	}

	if err = grow(rootIdx); err != nil {
		return nil, 0, err
	}

	mst := make([]core.WeightedEdge, 0, n-1)
	var total float64
	for pq.Len() > 0 {
		e := heap.Pop(&pq).(core.WeightedEdge)
		if visited[e.V] {
			// stale frontier entry; its far endpoint joined through a
			// cheaper edge meanwhile
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if err = grow(e.V); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// edgePQ is a min-heap of frontier edges ordered by core.ByWeight.
type edgePQ []core.WeightedEdge

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return core.ByWeight(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.WeightedEdge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
