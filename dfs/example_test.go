package dfs_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
)

// ExampleDFS shows post-order on a small diamond with a tail:
//
//	A → B → D → E
//	A → C → D → F
func ExampleDFS() {
	g := core.NewDigraph[string]()
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}, {"D", "F"},
	} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))
	fmt.Println(strings.Join(res.PreOrder, " "))
	// Output:
	// E F D B C A
	// A B D E F C
}

// ExampleDFS_maxDepth stops descending after two hops along a chain.
func ExampleDFS_maxDepth() {
	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(6))

	res, _ := dfs.DFS(g, "A", dfs.WithMaxDepth[string](2))
	fmt.Println(res.PreOrder)
	// Output:
	// [A B C]
}

// ExampleTopologicalSort orders the steps of a build pipeline.
func ExampleTopologicalSort() {
	g := core.NewDigraph[string]()
	for _, e := range [][2]string{
		{"fetch", "compile"}, {"fetch", "lint"},
		{"compile", "test"}, {"lint", "test"},
		{"test", "release"},
	} {
		_ = g.AddEdge(e[0], e[1], 1)
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [fetch lint compile test release]
}

// ExampleTopologicalSort_cycle reports the offending cycle.
func ExampleTopologicalSort_cycle() {
	g := core.NewDigraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "A", 1)

	_, err := dfs.TopologicalSort(g)
	var ce *dfs.CycleError[string]
	if errors.As(err, &ce) {
		fmt.Println(ce.Cycle)
	}
	fmt.Println(err)
	// Output:
	// [A B C]
	// dfs: cycle detected: [A B C]
}
