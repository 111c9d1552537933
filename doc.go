// Package vtxgraph is a small, generic, in-memory graph toolkit:
// index-addressed undirected graphs plus the traversal and pathfinding
// collaborators that consume them.
//
// Everything is organized under four subpackages:
//
//	core/     — Graph and WeightedGraph over any comparable vertex type,
//	            append-only adjacency-list storage, capability interfaces
//	bfs/      — breadth-first search over a plain neighbor function
//	dijkstra/ — single-source shortest paths over weighted adjacency
//	mst/      — minimum spanning trees (Kruskal, Prim)
//
// The core stores graphs as two parallel sequences — vertices and
// per-vertex adjacency lists — with every undirected connection
// materialized as a pair of mirrored edge records. Collaborators never
// touch that storage directly: BFS consumes a "vertex → neighbors"
// function, and the cost-aware algorithms consume the core.WeightedSource
// query contract, so alternative graph representations can drive the
// same algorithms.
//
// Quick start:
//
//	g := core.NewGraph("A", "B", "C")
//	g.AddEdgeByVertices("A", "B")
//	g.AddEdgeByVertices("B", "C")
//	res, _ := bfs.BFS(g.NeighborsForVertex, "A")
//	path, _ := res.PathTo("C") // [A B C]
//
// The structures are single-threaded by design: no locks, no I/O, no
// hidden goroutines. Callers sharing a graph across goroutines must
// serialize mutation externally.
package vtxgraph
