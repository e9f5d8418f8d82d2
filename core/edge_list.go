// File: edge_list.go
// Role: Ordered edge storage: AddEdge/Edges/EdgeIndex/Edge/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order until a caller reorders the slice.
//   - EdgeIndex/Edge return the first match in the current order.

package core

import "fmt"

// EdgeList contains the *directed* edges of a graph in some order.
//
// It is the right container when an algorithm processes every edge but never
// needs the edges leaving a particular vertex. The zero value is an empty list.
type EdgeList[A any] struct {
	edges []Edge[A]
}

// NewEdgeList returns an empty EdgeList with room for capacity edges.
func NewEdgeList[A any](capacity int) *EdgeList[A] {
	if capacity < 0 {
		capacity = 0
	}

	return &EdgeList[A]{edges: make([]Edge[A], 0, capacity)}
}

// AddEdge appends the edge source→target with the given attributes.
// No validation is performed; Graph.AddEdge validates ids.
// Complexity: O(1) amortized.
func (l *EdgeList[A]) AddEdge(source, target int, attr A) {
	l.edges = append(l.edges, Edge[A]{Source: source, Target: target, Attr: attr})
}

// Edges returns the backing slice of all edges. Reordering or mutating its
// elements changes the list.
// Complexity: O(1).
func (l *EdgeList[A]) Edges() []Edge[A] { return l.edges }

// EdgeIndex returns the position of the first edge source→target, or -1 when
// no such edge exists.
// Complexity: O(E).
func (l *EdgeList[A]) EdgeIndex(source, target int) int {
	for i := range l.edges {
		if l.edges[i].Source == source && l.edges[i].Target == target {
			return i
		}
	}

	return -1
}

// Edge returns a pointer to the first edge source→target. The pointer stays
// valid until the list grows.
// Errors: ErrEdgeNotFound.
// Complexity: O(E).
func (l *EdgeList[A]) Edge(source, target int) (*Edge[A], error) {
	i := l.EdgeIndex(source, target)
	if i < 0 {
		return nil, fmt.Errorf("edge %d→%d: %w", source, target, ErrEdgeNotFound)
	}

	return &l.edges[i], nil
}

// EdgeCount returns the total number of edges.
func (l *EdgeList[A]) EdgeCount() int { return len(l.edges) }
