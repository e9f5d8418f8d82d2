package mst

import (
	"fmt"

	"github.com/katalvlaran/forest/core"
)

// FindMinimumSpanningTree computes a minimum spanning forest of g with
// Kruskal's algorithm, driven by hooks.
//
// The result lists the accepted edges in acceptance order. It has
// g.VertexCount() − (number of connected components) edges, so a graph is
// connected iff len(result) == g.VertexCount()−1. An empty graph yields an
// empty result; a disconnected graph is not an error.
//
// A nil hooks selects the defaults, which order edges by A's Less method; the
// call panics if A does not implement Lesser[A]. Prefer Kruskal for a
// compile-time check. g's edge slice is sorted in place.
//
// Preconditions (panics): g is non-nil; every edge endpoint lies in
// [0, g.VertexCount()).
//
// Steps:
//  1. Create the partition via hooks.NewComponents and hand it to OnSetUp.
//  2. Let hooks.SortEdges order g.Edges().
//  3. Sweep the edges, accepting those joining two different sets.
//  4. Call OnTearDown and return the accepted edges.
//
// Complexity: O(E log E + E·α(V)) time, O(V) extra memory.
func FindMinimumSpanningTree[A any](g Graph[A], hooks Hooks[A]) []core.Edge[A] {
	if g == nil {
		panic("mst: nil graph")
	}
	if hooks == nil {
		hooks = defaultHooks[A]()
	}

	// 1. Partition over the vertices; hooks may keep a reference until teardown.
	n := g.VertexCount()
	components := hooks.NewComponents(n)
	if components == nil {
		panic("mst: NewComponents returned nil")
	}
	hooks.OnSetUp(g, components)

	// 2. Order edges by acceptance priority (in place).
	hooks.SortEdges(g.Edges())

	// 3. Sweep: an edge joining two different sets is a tree edge.
	tree := make([]core.Edge[A], 0, max(n-1, 0))
	for _, e := range g.Edges() {
		if components.Find(e.Source) != components.Find(e.Target) {
			tree = append(tree, e)
			hooks.OnMSTEdge(e)
			components.MergeSets(e.Source, e.Target)
		} else {
			hooks.OnNonMSTEdge(e)
		}
	}

	// 4. The partition is discarded with this frame.
	hooks.OnTearDown()

	return tree
}

// Kruskal computes a minimum spanning forest of g ordering edges ascending by
// A's Less method. It is FindMinimumSpanningTree(g, Default[A]()).
func Kruskal[A Lesser[A]](g Graph[A]) []core.Edge[A] {
	return FindMinimumSpanningTree[A](g, Default[A]())
}

// defaultHooks builds Default[A] for an A only known to satisfy Lesser[A] at
// run time.
func defaultHooks[A any]() Hooks[A] {
	var zero A
	if _, ok := any(zero).(Lesser[A]); !ok {
		panic(fmt.Sprintf("mst: nil hooks require %T to implement Less(%T) bool", zero, zero))
	}

	return NewHooks(func(a, b A) int {
		switch {
		case any(a).(Lesser[A]).Less(b):
			return -1
		case any(b).(Lesser[A]).Less(a):
			return 1
		default:
			return 0
		}
	})
}
