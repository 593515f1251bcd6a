package cli

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/internal/config"
)

// Input holds raw flag values and the configuration resolved from them.
type Input struct {
	configPath  string
	logLevel    string
	development bool

	algorithm   string
	source      string
	target      string
	maxDistance float64
	arity       int
	maxDepth    int
	fullRounds  bool
	workers     int

	cfg    config.Config
	logger *zap.Logger
}

// applyFlags overrides cfg with every flag set explicitly on the command line.
func (i *Input) applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	overrides := map[string]func(){
		"log-level":    func() { cfg.Log.Level = i.logLevel },
		"dev":          func() { cfg.Log.Development = i.development },
		"algo":         func() { cfg.Search.Algorithm = i.algorithm },
		"source":       func() { cfg.Search.Source = i.source },
		"target":       func() { cfg.Search.Target = i.target },
		"max-distance": func() { cfg.Search.MaxDistance = i.maxDistance },
		"arity":        func() { cfg.Search.Arity = i.arity },
		"max-depth":    func() { cfg.Search.MaxDepth = i.maxDepth },
		"full-rounds":  func() { cfg.Search.FullRounds = i.fullRounds },
		"workers":      func() { cfg.Batch.Workers = i.workers },
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})
}

// addSearchFlags registers the algorithm flags shared by run, compare and batch.
func (i *Input) addSearchFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.algorithm, "algo", "a", "", "algorithm: bfs, dfs, dijkstra, bellmanford, dagsp, dagsp-longest, topo")
	fs.StringVarP(&i.source, "source", "s", "", "source node (default: first node of the graph)")
	fs.StringVarP(&i.target, "target", "t", "", "print only the path to this node")
	fs.Float64Var(&i.maxDistance, "max-distance", 0, "dijkstra: stop exploring beyond this distance (0 = no cap)")
	fs.IntVar(&i.arity, "arity", 2, "dijkstra: heap arity")
	fs.IntVar(&i.maxDepth, "max-depth", -1, "bfs/dfs: deepest level visited (0 = source only, -1 = none)")
	fs.BoolVar(&i.fullRounds, "full-rounds", false, "bellmanford: always run |V| rounds")
}
