package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
// The start "0,0" comes first, then its 2 neighbors, then the next frontier.
func ExampleBFS_gridTraversal() {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithUndirected()}, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2]
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path when two routes
// exist from "A" to "K": one of length 4, another of length 3.
func ExampleBFS_shortestPathNetwork() {
	g := core.NewDigraph[string]()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"}, // 4 hops
		{"A", "E"}, {"E", "F"}, {"F", "K"}, // 3 hops
		{"C", "G"}, {"G", "H"}, {"D", "I"}, {"I", "J"},
	} {
		_ = g.AddUndirectedEdge(e[0], e[1], 1)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathNodes("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path, res.Distance("K"))
	// Output:
	// [A E F K] 3
}

// ExampleBFS_depthLimitOnChain applies WithMaxDepth to a 10-node chain.
func ExampleBFS_depthLimitOnChain() {
	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Path(10))

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth[string](2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}

// ExampleBFS_hooksAndCancellation shows hooks alongside cancellation from
// inside OnVisit on a 7-node chain.
func ExampleBFS_hooksAndCancellation() {
	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("n")}, builder.Path(7))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, visSeq []string
	_, err := bfs.BFS(g, "n0",
		bfs.WithContext[string](ctx),
		bfs.WithOnEnqueue(func(n string, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%s@%d]", n, d)) }),
		bfs.WithOnVisit(func(n string, d int) error {
			visSeq = append(visSeq, fmt.Sprintf("V[%s@%d]", n, d))
			if d == 3 {
				cancel()
			}
			return nil
		}),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: context canceled
	// Enqueued: [E[n0@0] E[n1@1] E[n2@2] E[n3@3] E[n4@4]]
	// Visited:  [V[n0@0] V[n1@1] V[n2@2] V[n3@3]]
}
