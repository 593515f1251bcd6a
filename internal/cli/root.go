// Package cli implements the lvsearch command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

// Execute is the entry point to running the CLI. It returns the process
// exit code.
func Execute(ctx context.Context, version string) int {
	in := &Input{}
	rootCmd := createRootCommand(ctx, in, version)
	err := rootCmd.ExecuteContext(ctx)
	if in.logger != nil {
		_ = in.logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}

func createRootCommand(ctx context.Context, in *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "lvsearch",
		Short:             "Run graph searches (BFS, DFS, Dijkstra, Bellman-Ford, DAG paths) over YAML graph files.",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup(in),
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&in.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&in.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&in.development, "dev", false, "human-readable console logs")

	rootCmd.AddCommand(
		newRunCommand(ctx, in),
		newCompareCommand(ctx, in),
		newBatchCommand(ctx, in),
		newGenerateCommand(in),
	)

	return rootCmd
}

// setup resolves the configuration (defaults, file, flags) and builds the logger.
func setup(in *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(in.configPath)
		if err != nil {
			return err
		}
		in.applyFlags(cmd.Flags(), &cfg)
		if err = cfg.Validate(); err != nil {
			return err
		}
		in.cfg = cfg

		in.logger, err = logging.New(logging.Config{
			Name:        "lvsearch",
			Level:       cfg.Log.Level,
			Development: cfg.Log.Development,
			Out:         cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		in.logger.Debug("config resolved",
			zap.String("algorithm", cfg.Search.Algorithm),
			zap.String("source", cfg.Search.Source),
			zap.Int("workers", cfg.Batch.Workers),
		)

		return nil
	}
}
