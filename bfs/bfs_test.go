package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
)

// undirected builds a digraph with both directions of every pair.
func undirected(t *testing.T, pairs ...[2]string) *core.Digraph[string] {
	t.Helper()
	g := core.NewDigraph[string]()
	for _, p := range pairs {
		require.NoError(t, g.AddUndirectedEdge(p[0], p[1], 1))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewDigraph[string]()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "A", bfs.WithMaxSteps[string](-3))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])

	path, err := res.PathTo("A")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, path)
}

// TestBFS_CycleAndDepths covers a simple cycle and checks layering.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Len(t, res.Order, 4)
	assert.Equal(t, "A", res.Order[0])
	assert.ElementsMatch(t, []string{"B", "D"}, res.Order[1:3])
	assert.Equal(t, "C", res.Order[3])

	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 1, res.Depth["B"])
	assert.Equal(t, 1, res.Depth["D"])
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, 2.0, res.Distance("C"))
}

// TestBFS_ShortestByEdgeCount prefers fewer hops regardless of weights.
func TestBFS_ShortestByEdgeCount(t *testing.T) {
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "T", 1))
	require.NoError(t, g.AddEdge("S", "T", 100))

	res, err := bfs.BFS(g, "S")
	require.NoError(t, err)
	nodes, err := res.PathNodes("T")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "T"}, nodes)

	edges, err := res.PathTo("T")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, 100.0, edges[0].Weight, "tree edges keep graph weights")
}

// TestBFS_Disconnected ensures BFS only explores the start's component and
// reports the rest as unreachable.
func TestBFS_Disconnected(t *testing.T) {
	g := undirected(t, [2]string{"X", "Y"}, [2]string{"P", "Q"})

	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
	assert.True(t, math.IsInf(res.DistTo["P"], 1))
	assert.False(t, res.HasPathTo("Q"))

	_, err = res.PathNodes("P")
	assert.ErrorIs(t, err, core.ErrUnreachable)
	_, err = res.PathTo("P")
	assert.ErrorIs(t, err, core.ErrUnreachable)
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	for _, tc := range []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	} {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth[string](tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestBFS_MaxSteps stops after the budget and returns the partial result.
func TestBFS_MaxSteps(t *testing.T) {
	g := core.NewDigraph[int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxSteps[int](3))
	require.ErrorIs(t, err, bfs.ErrStepBudget)
	require.NotNil(t, res)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "B" && nbr == "C")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_SelfLoopAndDiamond ensures no node is enqueued twice.
func TestBFS_SelfLoopAndDiamond(t *testing.T) {
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddEdge("A", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	var enqueued []string
	res, err := bfs.BFS(g, "A", bfs.WithOnEnqueue(func(n string, _ int) { enqueued = append(enqueued, n) }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, []string{"A", "B", "C", "D"}, enqueued)

	nodes, err := res.PathNodes("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, nodes)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	var enq, deq, vis []string
	entry := func(prefix, n string, d int) string {
		return prefix + ":" + n + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(g, "A",
		bfs.WithOnEnqueue(func(n string, d int) { enq = append(enq, entry("e", n, d)) }),
		bfs.WithOnDequeue(func(n string, d int) { deq = append(deq, entry("d", n, d)) }),
		bfs.WithOnVisit(func(n string, d int) error { vis = append(vis, entry("v", n, d)); return nil }),
	)
	require.NoError(t, err)

	for i, suffix := range []string{"A@0", "B@1", "C@2"} {
		assert.True(t, strings.HasSuffix(enq[i], suffix), enq[i])
		assert.True(t, strings.HasSuffix(deq[i], suffix), deq[i])
		assert.True(t, strings.HasSuffix(vis[i], suffix), vis[i])
	}
}

// TestBFS_VisitHookError aborts the traversal and wraps the hook error.
func TestBFS_VisitHookError(t *testing.T) {
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	boom := errors.New("boom")

	res, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(n string, _ int) error {
		if n == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewDigraph[string]()
	for i := 0; i < 100; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "v0", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_Logger emits start and finish events at Debug.
func TestBFS_Logger(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g := undirected(t, [2]string{"A", "B"})

	_, err := bfs.BFS(g, "A", bfs.WithLogger[string](zap.New(obsCore)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("bfs: start").Len())
	finish := logs.FilterMessage("bfs: finish").All()
	require.Len(t, finish, 1)
	assert.Equal(t, int64(2), finish[0].ContextMap()["visited"])
}

// TestBFS_ConcurrentSafety ensures concurrent runs on a shared graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := undirected(t, [2]string{"A", "B"})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-errs)
	}
}
