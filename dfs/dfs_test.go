package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
)

// digraph builds a directed graph from "U->V" pairs.
func digraph(t *testing.T, edges ...[2]string) *core.Digraph[string] {
	t.Helper()
	g := core.NewDigraph[string]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS[string](nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(core.NewDigraph[string](), "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_BadOption(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"})
	_, err := dfs.DFS(g, "A", dfs.WithMaxSteps[string](-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddVertex("X")

	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.True(t, res.Visited["X"])
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := digraph(t, [2]string{"A", "A"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Order)
	assert.Equal(t, []string{"A", "B", "C"}, res.PreOrder)
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, 2, res.Depth["C"])
}

// TestDFS_Diamond checks that a shared child is discovered once, through
// the first branch.
func TestDFS_Diamond(t *testing.T) {
	g := digraph(t,
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
	)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.PreOrder)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, "B", res.Parent["D"])
}

func TestDFS_Disconnected(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"})
	g.AddVertex("C")

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"])

	full, err := dfs.DFS(g, "", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, full.Order)
	assert.True(t, full.Visited["C"])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.False(t, res.Visited["B"])

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"}, [2]string{"A", "C"})

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(n string) bool { return n != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.False(t, res.Visited["C"])
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"})
	var pre, post []string

	_, err := dfs.DFS(g, "A",
		dfs.WithOnVisit(func(n string) error { pre = append(pre, n); return nil }),
		dfs.WithOnExit(func(n string) error { post = append(post, n); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, pre)
	assert.Equal(t, []string{"B", "A"}, post)
}

func TestDFS_OnExitError(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"})
	halt := errors.New("halt at B on exit")

	res, err := dfs.DFS(g, "A", dfs.WithOnExit(func(n string) error {
		if n == "B" {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
	assert.Empty(t, res.Order)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("stop")

	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(n string) error {
		if n == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Empty(t, res.Order)
	assert.True(t, res.Visited["C"])
}

func TestDFS_MaxSteps(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(50))
	require.NoError(t, err)

	res, err := dfs.DFS(g, "0", dfs.WithMaxSteps[string](10))
	require.ErrorIs(t, err, dfs.ErrStepBudget)
	assert.Len(t, res.PreOrder, 10)
}

func TestDFS_Cancellation(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(100))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dfs.DFS(g, "0", dfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDFS_DeepChain would overflow a recursive walker's budget long before
// the explicit stack runs out.
func TestDFS_DeepChain(t *testing.T) {
	const n = 200000
	g := core.NewDigraph[int]()
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Order[0])
	assert.Equal(t, n-1, res.Depth[n-1])
}

func TestDFS_Logger(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g := digraph(t, [2]string{"A", "B"})

	_, err := dfs.DFS(g, "A", dfs.WithLogger[string](zap.New(obsCore)))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("dfs: finish").Len())
	assert.Equal(t, int64(2), logs.FilterMessage("dfs: finish").All()[0].ContextMap()["visited"])
}

func TestDFS_ForestOnGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Len(t, res.Order, 9)
	// a single tree rooted at the top-left corner covers the whole DAG
	assert.Len(t, res.Parent, 8)
	assert.Equal(t, "0,0", res.Order[len(res.Order)-1])
	// right-first descent reaches the far corner along the top row
	assert.Equal(t, 4, res.Depth["2,2"])
}
