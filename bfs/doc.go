// Package bfs provides breadth-first search over any neighbor function,
// returning unweighted shortest-path distances, parent links, and visit
// order.
//
// BFS is deliberately decoupled from the graph representation: it
// consumes only a NeighborFunc — "given a vertex, produce its
// neighbors" — so a core.Graph's NeighborsForVertex method, a
// core.WeightedGraph's, or any closure of the same shape can drive it:
//
//	g := core.NewGraph("Boston", "New York", "Philadelphia")
//	g.AddEdgeByVertices("Boston", "New York")
//	g.AddEdgeByVertices("New York", "Philadelphia")
//
//	res, err := bfs.BFS(g.NeighborsForVertex, "Boston",
//		bfs.WithGoal[string](func(v string) bool { return v == "Philadelphia" }),
//	)
//	path, _ := res.PathTo("Philadelphia")
//
// BFS explores vertices in increasing hop distance from the start, with
// optional hooks (OnEnqueue, OnDequeue, OnVisit), depth limiting,
// neighbor filtering, goal short-circuiting, and context cancellation.
//
// Vertices are deduplicated by value: a graph holding duplicate vertex
// values is traversed as if the duplicates were one vertex, consistent
// with the first-match semantics of value-based graph lookups.
//
// Complexity: O(V + E) time, O(V) space, for the subgraph reachable
// within MaxDepth.
package bfs
