package mst

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/forest/core"
	"github.com/katalvlaran/forest/disjoint"
)

// Graph is the minimal view of a graph the solver consumes.
//
// Edges must return the graph's backing slice: SortEdges reorders it in place
// and the sweep iterates it afterwards. *core.Graph satisfies Graph.
type Graph[A any] interface {
	// VertexCount returns the number of vertices; ids are 0..VertexCount()-1.
	VertexCount() int

	// Edges returns the mutable, ordered edge sequence.
	Edges() []core.Edge[A]
}

// Hooks customizes and observes one run of the Kruskal sweep.
type Hooks[A any] interface {
	// NewComponents creates the partition used for the run.
	NewComponents(vertexCount int) *disjoint.Sets

	// OnSetUp is called before any edge is sorted or processed. The partition
	// is owned by the run and valid until OnTearDown.
	OnSetUp(g Graph[A], components *disjoint.Sets)

	// SortEdges must leave edges ordered by acceptance priority.
	SortEdges(edges []core.Edge[A])

	// OnMSTEdge is called for every accepted edge, before its endpoints' sets
	// are merged.
	OnMSTEdge(edge core.Edge[A])

	// OnNonMSTEdge is called for every rejected edge.
	OnNonMSTEdge(edge core.Edge[A])

	// OnTearDown is called after the last edge. The partition must not be used
	// afterwards.
	OnTearDown()
}

// Lesser is implemented by attribute types with a natural ascending order.
type Lesser[A any] interface {
	Less(other A) bool
}

// BaseHooks provides the default behavior of every hook. Embed it in a custom
// hooks type and override a subset of the methods.
type BaseHooks[A any] struct {
	// Compare orders edge attributes for the default SortEdges: negative when
	// a sorts before b, zero when equal, positive otherwise.
	Compare func(a, b A) int

	// Stable selects a stable sort, keeping equal edges in their original order.
	Stable bool

	graph      Graph[A]
	components *disjoint.Sets
}

// NewHooks returns BaseHooks sorting ascending by cmp.
func NewHooks[A any](cmp func(a, b A) int) *BaseHooks[A] {
	return &BaseHooks[A]{Compare: cmp}
}

// ByKey returns BaseHooks sorting ascending by key(attr).
func ByKey[A any, K constraints.Ordered](key func(A) K) *BaseHooks[A] {
	return NewHooks(func(a, b A) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})
}

// Default returns BaseHooks sorting ascending by A's Less method.
func Default[A Lesser[A]]() *BaseHooks[A] {
	return NewHooks(compareByLess[A])
}

// NewComponents returns disjoint.New(vertexCount) with both optimizations.
func (h *BaseHooks[A]) NewComponents(vertexCount int) *disjoint.Sets {
	return disjoint.New(vertexCount)
}

// OnSetUp stores g and components for Graph and Components.
func (h *BaseHooks[A]) OnSetUp(g Graph[A], components *disjoint.Sets) {
	h.graph = g
	h.components = components
}

// SortEdges sorts edges ascending by Compare on their attributes.
// It panics if Compare is nil.
func (h *BaseHooks[A]) SortEdges(edges []core.Edge[A]) {
	if h.Compare == nil {
		panic("mst: BaseHooks.Compare is nil")
	}
	cmp := func(x, y core.Edge[A]) int { return h.Compare(x.Attr, y.Attr) }
	if h.Stable {
		slices.SortStableFunc(edges, cmp)
		return
	}
	slices.SortFunc(edges, cmp)
}

// OnMSTEdge does nothing.
func (h *BaseHooks[A]) OnMSTEdge(core.Edge[A]) {}

// OnNonMSTEdge does nothing.
func (h *BaseHooks[A]) OnNonMSTEdge(core.Edge[A]) {}

// OnTearDown drops the references stored by OnSetUp.
func (h *BaseHooks[A]) OnTearDown() {
	h.graph = nil
	h.components = nil
}

// Graph returns the graph of the run in progress, or nil outside a run.
func (h *BaseHooks[A]) Graph() Graph[A] { return h.graph }

// Components returns the partition of the run in progress, or nil outside a run.
func (h *BaseHooks[A]) Components() *disjoint.Sets { return h.components }

func compareByLess[A Lesser[A]](a, b A) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
