// Kruskal's Minimum Spanning Tree over a weighted source: global
// ascending-weight edge pass merged through a disjoint-set.
package mst

import (
	"sort"

	"github.com/vtxgraph/vtxgraph/core"
)

// Kruskal computes the minimum spanning tree of src.
// It uses a disjoint-set (union-find) over vertex indices with path
// compression and union by rank.
//
// Steps:
//  1. Validate src; |V| == 0 → ErrDisconnected, |V| == 1 → trivial MST.
//  2. Collect each connection once (mirrors and self-loops dropped).
//  3. Stable-sort candidates ascending by core.ByWeight, so equal
//     weights keep insertion order deterministically.
//  4. Sweep the sorted edges, adopting each edge whose endpoints lie in
//     different components, until |V|−1 edges are chosen.
//  5. Fewer than |V|−1 adopted edges → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[V comparable](src core.WeightedSource[V]) ([]core.WeightedEdge, float64, error) {
	if src == nil {
		return nil, 0, ErrNilSource
	}

	n := src.VertexCount()
	// No vertices: by convention a disconnected graph.
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	// A single vertex spans itself: empty MST, zero weight.
	if n == 1 {
		return []core.WeightedEdge{}, 0, nil
	}

	edges, err := spanningCandidates(src)
	if err != nil {
		return nil, 0, err
	}
	sort.SliceStable(edges, func(i, j int) bool { return core.ByWeight(edges[i], edges[j]) })

	ds := newDisjointSet(n)
	mst := make([]core.WeightedEdge, 0, n-1)
	var total float64
	for _, e := range edges {
		if ds.find(e.U) == ds.find(e.V) {
			// endpoints already connected; adopting e would close a cycle
			continue
		}
		ds.union(e.U, e.V)
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find over vertex indices with path compression
// and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the component root of u, halving the path as it walks.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the components of u and v, attaching the shallower tree
// under the deeper root.
func (ds *disjointSet) union(u, v int) {
	rootU, rootV := ds.find(u), ds.find(v)
	if rootU == rootV {
		return
	}
	if ds.rank[rootU] < ds.rank[rootV] {
		ds.parent[rootU] = rootV
		return
	}
	ds.parent[rootV] = rootU
	if ds.rank[rootU] == ds.rank[rootV] {
		ds.rank[rootU]++
	}
}
