package tourbelt

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/forest/core"
	"github.com/katalvlaran/forest/disjoint"
	"github.com/katalvlaran/forest/mst"
)

const (
	minSynergy = 0
	maxSynergy = 100001
)

// beltHooks accumulates the tour belt sizes while Kruskal merges components
// in order of descending synergy.
//
// Rows of low and high are indexed by a component's representative and hold,
// per vertex, the weakest and strongest edge between that component and the
// vertex. Only representative rows are kept current.
type beltHooks struct {
	mst.BaseHooks[int]
	low, high [][]int32
	answer    int
}

func (h *beltHooks) OnSetUp(g mst.Graph[int], c *disjoint.Sets) {
	h.BaseHooks.OnSetUp(g, c)

	n := g.VertexCount()
	h.low = table(n, maxSynergy)
	h.high = table(n, minSynergy)
	for _, e := range g.Edges() {
		k := int32(e.Attr)
		u, v := e.Source, e.Target
		h.low[u][v] = min(h.low[u][v], k)
		h.low[v][u] = h.low[u][v]
		h.high[u][v] = max(h.high[u][v], k)
		h.high[v][u] = h.high[u][v]
	}
}

func (h *beltHooks) SortEdges(edges []core.Edge[int]) {
	slices.SortFunc(edges, func(a, b core.Edge[int]) int { return b.Attr - a.Attr })
}

func (h *beltHooks) OnMSTEdge(e core.Edge[int]) {
	c := h.Components()
	u, v := c.Find(e.Source), c.Find(e.Target)
	if c.Size(u) > c.Size(v) {
		u, v = v, u
	}

	border, inside := int32(minSynergy), int32(maxSynergy)
	lowU, lowV := h.low[u], h.low[v]
	highU, highV := h.high[u], h.high[v]
	for i := range lowV {
		lowV[i] = min(lowV[i], lowU[i])
		highV[i] = max(highV[i], highU[i])
		if r := c.Find(i); r == u || r == v {
			inside = min(inside, lowV[i])
		} else {
			border = max(border, highV[i])
		}
	}
	if border < inside {
		h.answer += c.Size(u) + c.Size(v)
	}
}

func (h *beltHooks) OnTearDown() {
	h.BaseHooks.OnTearDown()
	h.low, h.high = nil, nil
}

// table returns an n×n matrix filled with fill, backed by one allocation.
func table(n int, fill int32) [][]int32 {
	cells := make([]int32, n*n)
	for i := range cells {
		cells[i] = fill
	}
	rows := make([][]int32, n)
	for i := range rows {
		rows[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	return rows
}

// CountBelts returns the sum of the sizes of all tour belts of g, where an
// edge attribute is its synergy in [1, 100000]. g's edges are reordered.
func CountBelts(g mst.Graph[int]) int {
	h := &beltHooks{}
	mst.FindMinimumSpanningTree[int](g, h)

	return h.answer
}
