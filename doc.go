// Package forest is a small toolkit for spanning forests: a hookable
// union-find, a hookable Kruskal solver and the graph containers they share.
//
// What is forest?
//
//	A generic, allocation-light library that brings together:
//		• disjoint: union-find with merge-by-size, path compression and hooks
//		• core:     edge list, vertex table and the Graph composing them
//		• mst:      Kruskal's minimum spanning forest, every phase overridable
//		• builder:  deterministic fixture graphs (path, cycle, grid, random...)
//		• tourbelt: a tour belt counter built entirely from mst hooks
//
// Layout:
//
//	disjoint/           partition of {0..n-1} with OnMakeSingleton/OnMergeSets/OnCompressPath
//	core/               Edge[A], EdgeList[A], VertexList[V], Graph[A, V]
//	mst/                FindMinimumSpanningTree, Hooks, BaseHooks, Kruskal
//	builder/            BuildGraph + Constructors for tests and benchmarks
//	tourbelt/           problem driver: reads cases, prints belt sizes
//	cmd/tourbelt/       CLI around tourbelt (cobra + viper + slog)
//	internal/config/    CLI configuration
//	internal/solutiontest/  testdata/inN.txt vs outN.txt fixture runner
//
// Quick ASCII example:
//
//	    0───1        weights: 0-1:4  1-2:1  2-3:2  0-3:3  0-2:5
//	    │ ╲ │
//	    3───2        Kruskal keeps 1-2, 2-3, 0-3 (total 6)
//
// The algorithm packages never log; logging lives in disjoint.LogHooks, the
// tourbelt Solver and the CLI.
//
//	go get github.com/katalvlaran/forest
package forest
