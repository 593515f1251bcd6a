package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/graphfile"
)

// batchResult is the summary line of one graph file.
type batchResult struct {
	Path     string
	Nodes    int
	Edges    int
	Reached  int
	Farthest float64
	Err      error
}

func newBatchCommand(ctx context.Context, in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch PATTERN...",
		Short: "Run the configured algorithm over every graph file matching the glob patterns (** supported)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expand(args)
			if err != nil {
				return err
			}
			in.logger.Info("batch start", zap.Int("files", len(paths)), zap.Int("workers", in.cfg.Batch.Workers))

			results := runBatch(ctx, paths, in.cfg, in.logger)
			if err = printBatch(cmd.OutOrStdout(), results); err != nil {
				return err
			}

			var failed error
			for _, r := range results {
				if r.Err != nil {
					failed = multierr.Append(failed, fmt.Errorf("%s: %w", r.Path, r.Err))
				}
			}

			return failed
		},
	}
	in.addSearchFlags(cmd.Flags())
	cmd.Flags().IntVarP(&in.workers, "workers", "w", 4, "files processed concurrently")

	return cmd
}

// expand resolves every pattern with doublestar and returns the sorted,
// de-duplicated matches. A pattern matching nothing is an error.
func expand(patterns []string) ([]string, error) {
	var (
		paths []string
		err   error
	)
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			err = multierr.Append(err, fmt.Errorf("bad pattern %q: %w", p, doublestar.ErrBadPattern))
			continue
		}
		matches, gerr := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if gerr != nil {
			err = multierr.Append(err, fmt.Errorf("glob %q: %w", p, gerr))
			continue
		}
		if len(matches) == 0 {
			err = multierr.Append(err, fmt.Errorf("pattern %q matched no files", p))
			continue
		}
		paths = append(paths, matches...)
	}
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	return slices.Compact(paths), nil
}

// runBatch processes paths with at most cfg.Batch.Workers goroutines.
// Per-file failures are recorded in the result, never abort the batch.
func runBatch(ctx context.Context, paths []string, cfg config.Config, log *zap.Logger) []batchResult {
	results := make([]batchResult, len(paths))
	var eg errgroup.Group
	eg.SetLimit(cfg.Batch.Workers)
	for i, path := range paths {
		eg.Go(func() error {
			results[i] = runOne(ctx, path, cfg, log.With(zap.String("graph", path)))
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

func runOne(ctx context.Context, path string, cfg config.Config, log *zap.Logger) batchResult {
	res := batchResult{Path: path}
	f, err := graphfile.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	g, err := f.Graph()
	if err != nil {
		res.Err = err
		return res
	}
	res.Nodes, res.Edges = g.VertexCount(), g.EdgeCount()

	out, err := search(ctx, g, cfg.Search, log)
	if err != nil {
		res.Err = err
		return res
	}
	if out.Paths != nil {
		res.Reached, res.Farthest = reached(out.Paths)
	} else {
		res.Reached = len(out.Order)
	}

	return res
}

func printBatch(w io.Writer, results []batchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GRAPH\tNODES\tEDGES\tREACHED\tFARTHEST\tSTATUS")
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n", r.Path, r.Nodes, r.Edges, r.Reached, formatDist(r.Farthest), status)
	}

	return tw.Flush()
}
