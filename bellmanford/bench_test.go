package bellmanford_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/bellmanford"
	"github.com/katalvlaran/lvsearch/builder"
)

// BenchmarkBellmanFord_RandomSparse measures early-exit and full-round runs.
func BenchmarkBellmanFord_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithIntWeights(1, 10)},
		builder.RandomSparse(500, 0.01),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("EarlyExit", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bellmanford.BellmanFord(g, "0")
		}
	})
	b.Run("FullRounds", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bellmanford.BellmanFord(g, "0", bellmanford.WithFullRounds())
		}
	})
}
