// File: vertex_list.go
// Role: Vertex table keyed by dense ids 0..n-1: AddVertex/Vertex/Vertices/VertexCount.
// Invariant:
//   - len(vertices) == VertexCount(); ids seen only through edges hold the zero V.

package core

import "fmt"

// VertexList stores vertex attributes keyed by their ids.
//
// Vertices are numbered 0, 1, ..., n-1. Seeing id k (through AddVertex or
// UpdateVertexCount) means the table holds at least k+1 vertices.
// The zero value is an empty table.
type VertexList[V any] struct {
	vertices []V
}

// AddVertex stores attr for vertex id, growing the table if needed.
// Errors: ErrNegativeVertexID.
// Complexity: O(1) amortized.
func (l *VertexList[V]) AddVertex(id int, attr V) error {
	if err := l.UpdateVertexCount(id); err != nil {
		return err
	}
	l.vertices[id] = attr

	return nil
}

// UpdateVertexCount records that vertex id exists. Call it whenever a vertex or
// an edge referencing id is added.
// Errors: ErrNegativeVertexID.
func (l *VertexList[V]) UpdateVertexCount(id int) error {
	if id < 0 {
		return fmt.Errorf("vertex %d: %w", id, ErrNegativeVertexID)
	}
	if id >= len(l.vertices) {
		l.vertices = append(l.vertices, make([]V, id+1-len(l.vertices))...)
	}

	return nil
}

// Vertex returns a pointer to the attributes of vertex id. The pointer stays
// valid until the table grows.
// Errors: ErrVertexNotFound.
func (l *VertexList[V]) Vertex(id int) (*V, error) {
	if id < 0 || id >= len(l.vertices) {
		return nil, fmt.Errorf("vertex %d: %w", id, ErrVertexNotFound)
	}

	return &l.vertices[id], nil
}

// Vertices returns the backing slice of vertex attributes indexed by id.
func (l *VertexList[V]) Vertices() []V { return l.vertices }

// VertexCount returns the total number of vertices.
func (l *VertexList[V]) VertexCount() int { return len(l.vertices) }
