// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs for tests, examples
// and benchmarks.
//
// BuildGraph creates a core.Graph and applies Constructors in order. Each
// constructor appends its own block of fresh vertex ids starting at the
// current VertexCount, so composing constructors yields a disjoint union:
//
//	g, err := builder.BuildGraph[int, core.Empty](nil,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Cycle(5, builder.UniformIntWeightFn(1, 9)),  // ids 0..4
//		builder.RandomSparse(10, 0.3, builder.ConstantWeightFn(1)), // ids 5..14
//	)
//
// Edge attributes come from a WeightFn; a nil WeightFn yields A's zero value.
//
// Determinism: equal options, seed and constructor order produce identical
// graphs, edge order included.
//
// Errors: constructors validate their parameters and return the sentinels in
// errors.go, wrapped with the constructor name; they never panic. WeightFn
// factories panic on invalid ranges (programmer error).
package builder
