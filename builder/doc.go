// SPDX-License-Identifier: MIT

// Package builder provides deterministic generators of weighted
// core.Digraph[string] fixtures for tests, benchmarks and the lvsearch CLI.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeights(1, 9)},
//	    builder.Grid(4, 4),
//	)
//
// Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse, RandomDAG.
// Options pick the ID scheme (WithIDScheme, WithSymbolIDs, WithSymbNumb…),
// the RNG (WithSeed, WithRand), the weight distribution (WithWeightFn,
// WithConstantWeight, WithUniformWeight, WithIntWeights, WithNormalWeight)
// and whether every edge is emitted as a pair of arcs (WithUndirected).
//
// Determinism: identical options, seed and constructor order produce
// identical graphs, including vertex order, edge order and weights.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, each wrapped with the constructor's name. Core
// insertion errors (e.g. core.ErrMultiEdgeNotAllowed when two constructors
// emit the same arc) are wrapped as well.
package builder
