// Package config loads the lvsearch command configuration from YAML.
//
// Every field can be overridden by a command-line flag; Load only supplies
// defaults and file values. Validate reports every problem at once.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Algorithm names accepted by Search.Algorithm.
const (
	AlgoBFS          = "bfs"
	AlgoDFS          = "dfs"
	AlgoDijkstra     = "dijkstra"
	AlgoBellmanFord  = "bellmanford"
	AlgoDAG          = "dagsp"
	AlgoDAGLongest   = "dagsp-longest"
	AlgoTopological  = "topo"
	defaultAlgorithm = AlgoDijkstra
)

// Algorithms lists every supported algorithm name.
var Algorithms = []string{
	AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoBellmanFord, AlgoDAG, AlgoDAGLongest, AlgoTopological,
}

// ErrInvalid tags every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the YAML document.
type Config struct {
	Log    Log    `yaml:"log"`
	Search Search `yaml:"search"`
	Batch  Batch  `yaml:"batch"`
}

// Log configures internal/logging.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Search holds per-run algorithm settings.
type Search struct {
	Algorithm   string  `yaml:"algorithm"`
	Source      string  `yaml:"source"`
	Target      string  `yaml:"target"`
	MaxDistance float64 `yaml:"max_distance"` // 0 disables the cap
	Arity       int     `yaml:"arity"`
	MaxDepth    int     `yaml:"max_depth"` // deepest level for bfs and dfs; 0 keeps the source only, -1 disables
	FullRounds  bool    `yaml:"full_rounds"`
}

// Batch configures the batch command.
type Batch struct {
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Search: Search{Algorithm: defaultAlgorithm, Arity: 2, MaxDepth: -1},
		Batch:  Batch{Workers: 4},
	}
}

// Load reads path over Default(). An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML document over Default(). Unknown keys are errors.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Validate checks every field and combines all failures.
func (c Config) Validate() error {
	var err error
	if !slices.Contains(Algorithms, c.Search.Algorithm) {
		err = multierr.Append(err, fmt.Errorf("%w: search.algorithm %q (want one of %v)", ErrInvalid, c.Search.Algorithm, Algorithms))
	}
	if c.Search.Arity < 2 {
		err = multierr.Append(err, fmt.Errorf("%w: search.arity %d < 2", ErrInvalid, c.Search.Arity))
	}
	if c.Search.MaxDistance < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: search.max_distance %g < 0", ErrInvalid, c.Search.MaxDistance))
	}
	if c.Search.MaxDepth < -1 {
		err = multierr.Append(err, fmt.Errorf("%w: search.max_depth %d < -1", ErrInvalid, c.Search.MaxDepth))
	}
	if c.Batch.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: batch.workers %d < 1", ErrInvalid, c.Batch.Workers))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}

	return err
}
