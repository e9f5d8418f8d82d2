package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forest/builder"
	"github.com/katalvlaran/forest/core"
	"github.com/katalvlaran/forest/disjoint"
	"github.com/katalvlaran/forest/mst"
)

type weight int

func (w weight) Less(other weight) bool { return w < other }

func w(a weight) int { return int(a) }

// tracer records every hook call as a string and checks that accepted edges
// reach OnMSTEdge before their endpoints are merged.
type tracer struct {
	mst.BaseHooks[weight]
	calls       []string
	mergedEarly bool
	finalCount  int
}

func newTracer(stable bool) *tracer {
	h := &tracer{BaseHooks: *mst.Default[weight]()}
	h.Stable = stable

	return h
}

func (h *tracer) OnSetUp(g mst.Graph[weight], c *disjoint.Sets) {
	h.calls = append(h.calls, "setup")
	h.BaseHooks.OnSetUp(g, c)
}

func (h *tracer) OnMSTEdge(e core.Edge[weight]) {
	h.calls = append(h.calls, "mst"+e.String())
	if h.Components().Same(e.Source, e.Target) {
		h.mergedEarly = true
	}
}

func (h *tracer) OnNonMSTEdge(e core.Edge[weight]) {
	h.calls = append(h.calls, "non"+e.String())
}

func (h *tracer) OnTearDown() {
	h.calls = append(h.calls, "teardown")
	h.finalCount = h.Components().Count()
	h.BaseHooks.OnTearDown()
}

// roads builds the eight-edge network over vertices 1..6 (vertex 0 isolated).
func roads(t *testing.T) *core.Graph[weight, core.Empty] {
	t.Helper()
	g := core.NewGraph[weight, core.Empty]()
	for _, e := range []core.Edge[weight]{
		{Source: 1, Target: 2, Attr: 3},
		{Source: 2, Target: 5, Attr: 6},
		{Source: 5, Target: 1, Attr: 5},
		{Source: 2, Target: 3, Attr: 5},
		{Source: 3, Target: 4, Attr: 9},
		{Source: 4, Target: 6, Attr: 7},
		{Source: 6, Target: 5, Attr: 2},
		{Source: 3, Target: 6, Attr: 3},
	} {
		require.NoError(t, g.AddEdge(e.Source, e.Target, e.Attr))
	}

	return g
}

func TestFindMinimumSpanningTree_HookSequence(t *testing.T) {
	g := roads(t)
	h := newTracer(true)

	tree := mst.FindMinimumSpanningTree[weight](g, h)

	assert.Equal(t, []string{
		"setup",
		"mst(6, 5, 2)",
		"mst(1, 2, 3)",
		"mst(3, 6, 3)",
		"mst(5, 1, 5)",
		"non(2, 3, 5)",
		"non(2, 5, 6)",
		"mst(4, 6, 7)",
		"non(3, 4, 9)",
		"teardown",
	}, h.calls)
	assert.False(t, h.mergedEarly, "OnMSTEdge must run before the merge")
	assert.Equal(t, 2, h.finalCount, "vertex 0 stays alone")

	assert.Equal(t, []core.Edge[weight]{
		{Source: 6, Target: 5, Attr: 2},
		{Source: 1, Target: 2, Attr: 3},
		{Source: 3, Target: 6, Attr: 3},
		{Source: 5, Target: 1, Attr: 5},
		{Source: 4, Target: 6, Attr: 7},
	}, tree)
	assert.Equal(t, 20, mst.TotalWeight(tree, w))
	assert.Equal(t, 2, mst.ComponentCount(g.VertexCount(), tree))

	assert.Nil(t, h.Components(), "teardown clears the partition")
	assert.Nil(t, h.Graph())
}

func TestFindMinimumSpanningTree_DefaultHooks(t *testing.T) {
	// Ties are broken arbitrarily, the total is not.
	tree := mst.FindMinimumSpanningTree[weight](roads(t), nil)
	assert.Len(t, tree, 5)
	assert.Equal(t, 20, mst.TotalWeight(tree, w))

	tree = mst.Kruskal[weight](roads(t))
	assert.Len(t, tree, 5)
	assert.Equal(t, 20, mst.TotalWeight(tree, w))
}

func TestFindMinimumSpanningTree_SortsInPlace(t *testing.T) {
	g := roads(t)
	mst.Kruskal[weight](g)

	edges := g.Edges()
	require.Len(t, edges, 8)
	for i := 1; i < len(edges); i++ {
		assert.LessOrEqual(t, edges[i-1].Attr, edges[i].Attr)
	}

	c := roads(t)
	orig := c.Clone()
	mst.Kruskal[weight](c.Clone())
	assert.Equal(t, orig.Edges(), c.Edges(), "running on a clone leaves the source order")
}

func TestFindMinimumSpanningTree_StableIsReproducible(t *testing.T) {
	g := roads(t)
	first, second := newTracer(true), newTracer(true)
	mst.FindMinimumSpanningTree[weight](g.Clone(), first)
	mst.FindMinimumSpanningTree[weight](g.Clone(), second)
	assert.Equal(t, first.calls, second.calls)
}

func TestFindMinimumSpanningTree_EmptyGraph(t *testing.T) {
	g := core.NewGraph[weight, core.Empty]()
	h := newTracer(false)

	tree := mst.FindMinimumSpanningTree[weight](g, h)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
	assert.Equal(t, []string{"setup", "teardown"}, h.calls)
	assert.True(t, mst.Spanning(g.VertexCount(), tree))
}

func TestFindMinimumSpanningTree_Disconnected(t *testing.T) {
	g := core.NewGraph[weight, core.Empty](core.WithVertexCount(5))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	tree := mst.Kruskal[weight](g)
	assert.Len(t, tree, 2)
	assert.Equal(t, 3, mst.ComponentCount(g.VertexCount(), tree))
	assert.False(t, mst.Spanning(g.VertexCount(), tree))
}

func TestFindMinimumSpanningTree_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph[weight, core.Empty](core.WithLoops())
	require.NoError(t, g.AddEdge(2, 2, -100))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	h := newTracer(true)
	tree := mst.FindMinimumSpanningTree[weight](g, h)
	assert.Equal(t, []string{"setup", "non(2, 2, -100)", "mst(0, 1, 1)", "mst(1, 2, 1)", "teardown"}, h.calls)
	assert.Equal(t, 2, mst.TotalWeight(tree, w))
	assert.True(t, mst.Spanning(g.VertexCount(), tree))
}

func TestFindMinimumSpanningTree_ParallelAndReversedEdges(t *testing.T) {
	g := core.NewGraph[weight, core.Empty]()
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 0, 1))

	tree := mst.Kruskal[weight](g)
	assert.Equal(t, []core.Edge[weight]{{Source: 1, Target: 0, Attr: 1}}, tree)
}

func TestByKey_MaximumSpanningTree(t *testing.T) {
	h := mst.ByKey(func(a weight) int { return -int(a) })
	h.Stable = true

	tree := mst.FindMinimumSpanningTree[weight](roads(t), h)
	assert.Equal(t, []core.Edge[weight]{
		{Source: 3, Target: 4, Attr: 9},
		{Source: 4, Target: 6, Attr: 7},
		{Source: 2, Target: 5, Attr: 6},
		{Source: 5, Target: 1, Attr: 5},
		{Source: 2, Target: 3, Attr: 5},
	}, tree)
	assert.Equal(t, 32, mst.TotalWeight(tree, w))
}

func TestKruskal_Topologies(t *testing.T) {
	one := builder.ConstantWeightFn(weight(1))
	cases := []struct {
		name       string
		cons       []builder.Constructor[weight]
		edges      int
		components int
	}{
		{name: "grid", cons: []builder.Constructor[weight]{builder.Grid(4, 5, one)}, edges: 19, components: 1},
		{name: "complete", cons: []builder.Constructor[weight]{builder.Complete(6, one)}, edges: 5, components: 1},
		{name: "star", cons: []builder.Constructor[weight]{builder.Star(7, one)}, edges: 6, components: 1},
		{name: "cycle and path", cons: []builder.Constructor[weight]{builder.Cycle(4, one), builder.Path(3, one)}, edges: 5, components: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph[weight, core.Empty](nil, nil, tc.cons...)
			require.NoError(t, err)
			tree := mst.Kruskal[weight](g)
			assert.Len(t, tree, tc.edges)
			assert.Equal(t, tc.components, mst.ComponentCount(g.VertexCount(), tree))
		})
	}
}

type mergeCounter struct {
	disjoint.NopHooks
	merges int
}

func (c *mergeCounter) OnMergeSets(int, int, bool) { c.merges++ }

type customComponents struct {
	mst.BaseHooks[weight]
	counter *mergeCounter
}

func (h *customComponents) NewComponents(n int) *disjoint.Sets {
	return disjoint.New(n, disjoint.WithMergeBySize(false), disjoint.WithHooks(h.counter))
}

func TestFindMinimumSpanningTree_CustomComponents(t *testing.T) {
	h := &customComponents{BaseHooks: *mst.Default[weight](), counter: &mergeCounter{}}
	tree := mst.FindMinimumSpanningTree[weight](roads(t), h)
	assert.Len(t, tree, 5)
	assert.Equal(t, 5, h.counter.merges, "one merge per accepted edge")
}

type sliceGraph struct {
	n     int
	edges []core.Edge[weight]
}

func (g *sliceGraph) VertexCount() int            { return g.n }
func (g *sliceGraph) Edges() []core.Edge[weight] { return g.edges }

func TestFindMinimumSpanningTree_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "mst: nil graph", func() {
		mst.FindMinimumSpanningTree[weight](nil, nil)
	})

	out := &sliceGraph{n: 2, edges: []core.Edge[weight]{{Source: 0, Target: 3, Attr: 1}}}
	assert.Panics(t, func() { mst.Kruskal[weight](out) }, "endpoint outside the vertex range")

	ints := core.NewGraph[int, core.Empty]()
	require.NoError(t, ints.AddEdge(0, 1, 1))
	assert.Panics(t, func() { mst.FindMinimumSpanningTree[int](ints, nil) }, "int has no Less method")

	assert.PanicsWithValue(t, "mst: BaseHooks.Compare is nil", func() {
		mst.FindMinimumSpanningTree[int](ints, &mst.BaseHooks[int]{})
	})
}

// bruteForce returns the minimum total weight over all acyclic edge subsets of
// size n − components(g).
func bruteForce(n int, edges []core.Edge[weight]) int {
	all := disjoint.New(n)
	for _, e := range edges {
		all.MergeSets(e.Source, e.Target)
	}
	want := n - all.Count()

	best := -1
	for mask := 0; mask < 1<<len(edges); mask++ {
		s := disjoint.New(n)
		total, size, acyclic := 0, 0, true
		for i, e := range edges {
			if mask&(1<<i) == 0 {
				continue
			}
			if s.Same(e.Source, e.Target) {
				acyclic = false
				break
			}
			s.MergeSets(e.Source, e.Target)
			total += int(e.Attr)
			size++
		}
		if acyclic && size == want && (best < 0 || total < best) {
			best = total
		}
	}

	return best
}

func TestFindMinimumSpanningTree_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(5)
		g := core.NewGraph[weight, core.Empty](core.WithVertexCount(n), core.WithLoops())
		m := r.Intn(9)
		for i := 0; i < m; i++ {
			require.NoError(t, g.AddEdge(r.Intn(n), r.Intn(n), weight(1+r.Intn(9))))
		}
		edges := append([]core.Edge[weight](nil), g.Edges()...)

		tree := mst.Kruskal[weight](g)
		assert.Equal(t, bruteForce(n, edges), mst.TotalWeight(tree, w), "round %d: %v", round, edges)

		check := disjoint.New(n)
		for _, e := range tree {
			assert.False(t, check.Same(e.Source, e.Target), "round %d: tree has a cycle", round)
			check.MergeSets(e.Source, e.Target)
		}
	}
}

func TestTotalWeight_Float(t *testing.T) {
	edges := []core.Edge[float64]{{Attr: 0.5}, {Attr: 1.25}}
	assert.InDelta(t, 1.75, mst.TotalWeight(edges, func(a float64) float64 { return a }), 1e-9)
	assert.Zero(t, mst.TotalWeight[float64, int](nil, func(float64) int { return 1 }))
}
