package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
)

// assertTopological checks that every edge u→v of g has u before v in order.
func assertTopological[N comparable](t *testing.T, g core.Graph[N], order []N) {
	t.Helper()
	pos := make(map[N]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	require.Len(t, pos, len(g.Nodes()), "order must contain every node once")
	for _, u := range g.Nodes() {
		for _, v := range g.Neighbors(u) {
			assert.Less(t, pos[u], pos[v], "edge %v→%v out of order", u, v)
		}
	}
}

func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := dfs.TopologicalSort[string](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewDigraph[string]())
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopologicalSort_NoEdges(t *testing.T) {
	g := core.NewDigraph[string]()
	for _, v := range []string{"A", "B", "C"} {
		g.AddVertex(v)
	}

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, order)
}

func TestTopologicalSort_Diamond(t *testing.T) {
	g := digraph(t,
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
	)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, order)
	assertTopological[string](t, g, order)
}

func TestTopologicalSort_RandomDAG(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomDAG(40, 0.15),
		)
		require.NoError(t, err)

		order, err := dfs.TopologicalSort(g)
		require.NoError(t, err, "seed %d", seed)
		assertTopological[string](t, g, order)
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	order, err := dfs.TopologicalSort(g)
	assert.Nil(t, order)
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	var ce *dfs.CycleError[string]
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"A", "B", "C"}, ce.Cycle)
}

func TestTopologicalSort_SelfLoop(t *testing.T) {
	g := digraph(t, [2]string{"A", "B"}, [2]string{"B", "B"})

	_, err := dfs.TopologicalSort(g)
	var ce *dfs.CycleError[string]
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"B"}, ce.Cycle)
}

func TestTopologicalSort_Cancelled(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(10))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
