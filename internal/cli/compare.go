package cli

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/bellmanford"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/internal/graphfile"
)

// errMismatch is returned when Dijkstra and Bellman-Ford disagree.
var errMismatch = errors.New("dijkstra and bellmanford disagree")

const compareTolerance = 1e-9

func newCompareCommand(ctx context.Context, in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare GRAPH",
		Short: "Run Dijkstra and Bellman-Ford concurrently and check that their distances agree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			g, err := f.Graph()
			if err != nil {
				return err
			}
			src, err := resolveSource(g, in.cfg.Search)
			if err != nil {
				return err
			}

			var dj, bf *core.ShortestPaths[string]
			eg, egCtx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				var err error
				dj, err = dijkstra.Dijkstra(g, src,
					dijkstra.WithContext(egCtx),
					dijkstra.WithArity(in.cfg.Search.Arity),
					dijkstra.WithLogger(in.logger),
				)
				return err
			})
			eg.Go(func() error {
				var err error
				bf, err = bellmanford.BellmanFord(g, src,
					bellmanford.WithContext(egCtx),
					bellmanford.WithLogger(in.logger),
				)
				return err
			})
			if err = eg.Wait(); err != nil {
				return err
			}

			err = diffDistances(g.Nodes(), dj, bf)
			if err != nil {
				in.logger.Warn("distance mismatch", zap.String("graph", f.Name), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: dijkstra and bellmanford agree on %d nodes from %s\n", f.Name, len(g.Nodes()), src)

			return nil
		},
	}
	cmd.Flags().StringVarP(&in.source, "source", "s", "", "source node (default: first node of the graph)")
	cmd.Flags().IntVar(&in.arity, "arity", 2, "dijkstra: heap arity")

	return cmd
}

// diffDistances reports every node whose distances differ.
func diffDistances(nodes []string, a, b *core.ShortestPaths[string]) error {
	var err error
	for _, n := range nodes {
		da, db := a.Distance(n), b.Distance(n)
		if da == db || math.Abs(da-db) <= compareTolerance {
			continue
		}
		err = multierr.Append(err, fmt.Errorf("%w: %s dijkstra=%g bellmanford=%g", errMismatch, n, da, db))
	}

	return err
}
