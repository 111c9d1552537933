package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/vtxgraph/vtxgraph/bfs"
	"github.com/vtxgraph/vtxgraph/core"
)

// chain builds A-B, B-C, ... over the given vertex values and returns
// the graph's neighbor function.
func chain(values ...string) bfs.NeighborFunc[string] {
	g := core.NewGraph(values...)
	for i := 1; i < len(values); i++ {
		_ = g.AddEdgeByIndices(i-1, i)
	}
	return g.NeighborsForVertex
}

// cityGraph reproduces the fifteen-city highway network used across the
// weighted and unweighted fixtures.
func cityGraph() *core.Graph[string] {
	g := core.NewGraph(
		"Seattle", "San Francisco", "Los Angeles", "Riverside", "Phoenix",
		"Chicago", "Boston", "New York", "Atlanta", "Miami",
		"Dallas", "Houston", "Detroit", "Philadelphia", "Washington",
	)
	for _, pair := range [][2]string{
		{"Seattle", "Chicago"}, {"Seattle", "San Francisco"},
		{"Chicago", "Riverside"}, {"Chicago", "Dallas"}, {"Chicago", "Atlanta"}, {"Chicago", "Detroit"},
		{"San Francisco", "Riverside"}, {"San Francisco", "Los Angeles"},
		{"Riverside", "Los Angeles"}, {"Riverside", "Phoenix"},
		{"Dallas", "Phoenix"}, {"Dallas", "Houston"}, {"Dallas", "Atlanta"},
		{"Atlanta", "Houston"}, {"Atlanta", "Washington"}, {"Atlanta", "Miami"},
		{"Detroit", "Washington"}, {"Detroit", "New York"}, {"Detroit", "Boston"},
		{"Los Angeles", "Phoenix"}, {"Phoenix", "Houston"}, {"Houston", "Miami"},
		{"Washington", "Philadelphia"}, {"Washington", "Miami"},
		{"New York", "Boston"}, {"New York", "Philadelphia"},
	} {
		if err := g.AddEdgeByVertices(pair[0], pair[1]); err != nil {
			panic(err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil neighbor function
	if _, err := bfs.BFS[string](nil, "A"); !errors.Is(err, bfs.ErrNilNeighborFunc) {
		t.Errorf("nil neighbors: want ErrNilNeighborFunc, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(chain("A"), "A", bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// neighbor lookup failure is wrapped in ErrNeighbors
	failing := func(string) ([]string, error) { return nil, errors.New("boom") }
	if _, err := bfs.BFS(failing, "A"); !errors.Is(err, bfs.ErrNeighbors) {
		t.Errorf("failing neighbors: want ErrNeighbors, got %v", err)
	}
}

// TestBFS_StartNotInGraph shows the graph-backed neighbor function
// surfacing its NotFound error through ErrNeighbors.
func TestBFS_StartNotInGraph(t *testing.T) {
	_, err := bfs.BFS(chain("A", "B"), "missing")
	if !errors.Is(err, bfs.ErrNeighbors) {
		t.Fatalf("missing start: want ErrNeighbors, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(chain("A"), "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewGraph("A", "B", "C", "D")
	for _, pair := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if err := g.AddEdgeByIndices(pair[0], pair[1]); err != nil {
			t.Fatal(err)
		}
	}

	res, err := bfs.BFS(g.NeighborsForVertex, "A")
	if err != nil {
		t.Fatal(err)
	}
	// Must start at A
	if res.Order[0] != "A" {
		t.Errorf("first vertex = %s; want A", res.Order[0])
	}
	// Next two must be B and D in any order
	layer1 := map[string]bool{res.Order[1]: true, res.Order[2]: true}
	if !layer1["B"] || !layer1["D"] {
		t.Errorf("depth-1 layer = %v; want {B,D}", res.Order[1:3])
	}
	// Finally C
	if res.Order[3] != "C" {
		t.Errorf("last vertex = %s; want C", res.Order[3])
	}

	// Depth checks
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	for v, want := range wantDepth {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero
// (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	neighbors := chain("A", "B", "C")
	// depth = 1 should only visit A,B
	if res, _ := bfs.BFS(neighbors, "A", bfs.WithMaxDepth[string](1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(neighbors, "A", bfs.WithMaxDepth[string](0)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=0: got %v; want [A B C]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(neighbors, "A", bfs.WithMaxDepth[string](10)); !reflect.DeepEqual(res.Order, []string{"A", "B", "C"}) {
		t.Errorf("MaxDepth=10: got %v; want [A B C]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain expansions.
func TestBFS_FilterNeighbor(t *testing.T) {
	res, _ := bfs.BFS(chain("A", "B", "C"), "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	neighbors := chain("A", "B", "C")

	var enq, deq, vis []string
	makeEntry := func(prefix, v string, d int) string {
		return prefix + ":" + v + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		neighbors, "A",
		bfs.WithOnEnqueue(func(v string, d int) { enq = append(enq, makeEntry("e", v, d)) }),
		bfs.WithOnDequeue(func(v string, d int) { deq = append(deq, makeEntry("d", v, d)) }),
		bfs.WithOnVisit(func(v string, d int) error { vis = append(vis, makeEntry("v", v, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_OnVisitError verifies a hook error aborts the search.
func TestBFS_OnVisitError(t *testing.T) {
	boom := errors.New("stop here")
	_, err := bfs.BFS(chain("A", "B"), "A",
		bfs.WithOnVisit(func(v string, d int) error {
			if v == "B" {
				return boom
			}
			return nil
		}),
	)
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit error: want %v, got %v", boom, err)
	}
}

// TestBFS_Goal checks goal short-circuiting and reported hit.
func TestBFS_Goal(t *testing.T) {
	res, err := bfs.BFS(chain("A", "B", "C", "D"), "A",
		bfs.WithGoal[string](func(v string) bool { return v == "C" }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || res.Goal != "C" {
		t.Errorf("goal: Found=%v Goal=%q; want true, C", res.Found, res.Goal)
	}
	// D lies beyond the goal and must never be visited
	if _, ok := res.Depth["D"]; ok {
		t.Errorf("goal: D explored past the goal; Order = %v", res.Order)
	}
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, _ := bfs.BFS(chain("X"), "X")
	if path, _ := res.PathTo("X"); !reflect.DeepEqual(path, []string{"X"}) {
		t.Errorf("PathTo start: got %v; want [X]", path)
	}
	_, err := res.PathTo("Y")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_CityGraph finds the hop-shortest Boston→Miami route on the
// fifteen-city network.
func TestBFS_CityGraph(t *testing.T) {
	g := cityGraph()
	res, err := bfs.BFS(g.NeighborsForVertex, "Boston",
		bfs.WithGoal[string](func(v string) bool { return v == "Miami" }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("Miami not reached from Boston")
	}
	path, err := res.PathTo("Miami")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Boston", "Detroit", "Washington", "Miami"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	if d := res.Depth["Miami"]; d != 3 {
		t.Errorf("Depth[Miami] = %d; want 3", d)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	vertices := make([]string, 101)
	for i := range vertices {
		vertices[i] = fmt.Sprintf("v%d", i)
	}
	neighbors := chain(vertices...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(neighbors, "v0", bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_WeightedGraphNeighbors drives BFS from a weighted graph's
// plain neighbor surface; weights are invisible to the traversal.
func TestBFS_WeightedGraphNeighbors(t *testing.T) {
	g := core.NewWeightedGraph("A", "B", "C")
	_ = g.AddEdgeByVertices("A", "B", 100)
	_ = g.AddEdgeByVertices("B", "C", 1)

	res, err := bfs.BFS(g.NeighborsForVertex, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}
