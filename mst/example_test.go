package mst_test

import (
	"fmt"

	"github.com/vtxgraph/vtxgraph/core"
	"github.com/vtxgraph/vtxgraph/mst"
)

// ExampleKruskal spans a small network at minimum total cost.
func ExampleKruskal() {
	g := core.NewWeightedGraph("A", "B", "C", "D")
	g.AddEdgeByVertices("A", "B", 1)
	g.AddEdgeByVertices("B", "C", 2)
	g.AddEdgeByVertices("C", "D", 1)
	g.AddEdgeByVertices("A", "D", 5)
	g.AddEdgeByVertices("B", "D", 4)

	edges, total, err := mst.Kruskal[string](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tree edges:", len(edges), "total weight:", total)
	// Output:
	// tree edges: 3 total weight: 4
}

// ExampleCompute dispatches to Prim through options.
func ExampleCompute() {
	g := core.NewWeightedGraph("A", "B", "C")
	g.AddEdgeByVertices("A", "B", 1)
	g.AddEdgeByVertices("B", "C", 2)
	g.AddEdgeByVertices("A", "C", 3)

	_, total, err := mst.Compute[string](g,
		mst.WithMethod[string](mst.MethodPrim), mst.WithRoot("B"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total weight:", total)
	// Output:
	// total weight: 3
}
