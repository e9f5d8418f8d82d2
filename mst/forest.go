package mst

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/forest/core"
)

// TotalWeight sums weight(e.Attr) over edges. An empty slice sums to zero.
func TotalWeight[A any, W constraints.Integer | constraints.Float](edges []core.Edge[A], weight func(A) W) W {
	var total W
	for _, e := range edges {
		total += weight(e.Attr)
	}

	return total
}

// ComponentCount returns the number of connected components of a graph with
// vertexCount vertices whose spanning forest is tree.
func ComponentCount[A any](vertexCount int, tree []core.Edge[A]) int {
	return vertexCount - len(tree)
}

// Spanning reports whether tree spans all vertexCount vertices. An empty graph
// is spanned by the empty forest.
func Spanning[A any](vertexCount int, tree []core.Edge[A]) bool {
	return ComponentCount(vertexCount, tree) <= 1
}
