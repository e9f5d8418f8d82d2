// Package disjoint provides a union-find (disjoint-set) partition over the
// dense element range 0..n-1.
//
// What & Why
//
//   - A partition groups every element into exactly one non-empty set. Sets are
//     stored as a forest; the root of each tree is the representative returned
//     by Find. Representatives may change when sets are merged.
//
//   - Typical uses: connectivity queries, Kruskal's minimum spanning forest
//     (see package mst), equivalence-class bookkeeping.
//
// Representation
//
// The forest is a single []int. For element i:
//
//	parentOrSize[i] <  0  →  i is a root and -parentOrSize[i] is the size of its set
//	parentOrSize[i] >= 0  →  parentOrSize[i] is the parent of i
//
// Elements are only ever appended (MakeSingleton); nothing is removed.
//
// Optimizations
//
//   - Path compression: Find rewrites every node on the visited path to point
//     directly at the root.
//   - Merge by size: MergeSets attaches the strictly smaller set under the
//     larger one. On a tie the second argument's root survives.
//
// With both enabled the amortized cost per operation is O(α(n)), α being the
// inverse Ackermann function. With one of them it is O(log n); with neither a
// degenerate chain costs O(n). Both toggles are fixed at construction.
//
// Hooks
//
// A Hooks value observes MakeSingleton, MergeSets and path compression. Hooks
// are notified before the structural change happens and cannot alter it. Embed
// NopHooks to override only the notifications you care about; LogHooks writes
// each one to a *slog.Logger.
//
// Preconditions
//
// Element arguments must satisfy 0 <= element < UnionSize(). A violation is a
// caller bug and panics.
//
// Concurrency
//
// Sets is not safe for concurrent use. Callers that share one instance across
// goroutines must serialize access themselves.
package disjoint
