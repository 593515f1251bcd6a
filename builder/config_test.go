// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbNumb("v")).idFn(12); got != "v12" {
		t.Errorf("WithSymbNumb: expected \"v12\", got %q", got)
	}
}

// TestRNGOptions verifies RNG configuration and reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	exp := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(exp)); cfg.rng != exp {
		t.Errorf("WithRand: expected rng %v, got %v", exp, cfg.rng)
	}

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 3; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Errorf("WithSeed draw %d: %d != %d", i, x, y)
		}
	}
}

// TestWeightAndModeOptions verifies weight override and undirected mode.
func TestWeightAndModeOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if w := cfg.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("default weight: expected %g, got %g", DefaultEdgeWeight, w)
	}
	if cfg.undirected {
		t.Error("default mode must be directed")
	}

	cfg = newBuilderConfig(WithConstantWeight(-2.5), WithUndirected())
	if w := cfg.weightFn(nil); w != -2.5 {
		t.Errorf("WithConstantWeight: expected -2.5, got %g", w)
	}
	if !cfg.undirected {
		t.Error("WithUndirected not applied")
	}
}
