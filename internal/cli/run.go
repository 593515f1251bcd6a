package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/graphfile"
)

func newRunCommand(ctx context.Context, in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run GRAPH",
		Short: "Run one algorithm on a graph file and print distances, a path or an order",
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
			in.logger.Debug("graph loaded",
				zap.String("graph", f.Name),
				zap.Int("nodes", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()),
			)

			out, err := search(ctx, g, in.cfg.Search, in.logger)
			if err != nil {
				return err
			}

			return printOutcome(cmd.OutOrStdout(), g, out, in.cfg.Search.Target)
		},
	}
	in.addSearchFlags(cmd.Flags())

	return cmd
}

func printOutcome(w io.Writer, g core.Graph[string], out *outcome, target string) error {
	if out.Paths == nil {
		fmt.Fprintf(w, "order: %s\n", strings.Join(out.Order, " "))
		if out.PostOrder != nil {
			fmt.Fprintf(w, "postorder: %s\n", strings.Join(out.PostOrder, " "))
		}
		return nil
	}

	if target != "" {
		nodes, err := out.Paths.NodesTo(target)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "path: %s\ndistance: %s\n", strings.Join(nodes, " -> "), formatDist(out.Paths.Distance(target)))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tVIA")
	for _, n := range g.Nodes() {
		via := "-"
		if e, ok := out.Paths.EdgeTo[n]; ok {
			via = e.From
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n, formatDist(out.Paths.Distance(n)), via)
	}

	return tw.Flush()
}

func formatDist(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}
