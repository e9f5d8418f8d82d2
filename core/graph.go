// File: graph.go
// Role: Graph facade composing EdgeList and VertexList; the mst.Graph contract
//       (VertexCount, Edges) lives here, plus Looped and Clone.

package core

import "fmt"

// Graph contains a collection of *directed* edges and a vertex table.
//
// Vertices are numbered 0, 1, ..., n-1. A is the edge attribute type and V the
// vertex attribute type; use Empty for either when there is no payload.
type Graph[A, V any] struct {
	allowLoops bool

	edges    EdgeList[A]
	vertices VertexList[V]
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1) plus any pre-allocation requested by opts.
func NewGraph[A, V any](opts ...GraphOption) *Graph[A, V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[A, V]{
		allowLoops: cfg.allowLoops,
		edges:      EdgeList[A]{edges: make([]Edge[A], 0, cfg.edgeCapacity)},
	}
	if cfg.vertexCount > 0 {
		_ = g.vertices.UpdateVertexCount(cfg.vertexCount - 1) // non-negative by construction
	}

	return g
}

// -- Edges -------------------------------------------------------------------

// AddEdge adds the directed edge source→target carrying attr. Both endpoints
// are registered in the vertex table.
//
// Errors:
//   - ErrNegativeVertexID if either endpoint is negative.
//   - ErrLoopNotAllowed if source == target and the graph was built without WithLoops.
//
// Complexity: O(1) amortized.
func (g *Graph[A, V]) AddEdge(source, target int, attr A) error {
	if source < 0 || target < 0 {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", source, target, ErrNegativeVertexID)
	}
	if source == target && !g.allowLoops {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", source, target, ErrLoopNotAllowed)
	}
	_ = g.vertices.UpdateVertexCount(source)
	_ = g.vertices.UpdateVertexCount(target)
	g.edges.AddEdge(source, target, attr)

	return nil
}

// Edges returns the backing slice of all edges (see EdgeList.Edges).
func (g *Graph[A, V]) Edges() []Edge[A] { return g.edges.Edges() }

// EdgeIndex returns the position of the first edge source→target in Edges(),
// or -1 when there is none.
func (g *Graph[A, V]) EdgeIndex(source, target int) int { return g.edges.EdgeIndex(source, target) }

// Edge returns a pointer to the first edge source→target.
// Errors: ErrEdgeNotFound.
func (g *Graph[A, V]) Edge(source, target int) (*Edge[A], error) {
	return g.edges.Edge(source, target)
}

// EdgeCount returns the total number of edges.
func (g *Graph[A, V]) EdgeCount() int { return g.edges.EdgeCount() }

// -- Vertices ----------------------------------------------------------------

// AddVertex stores attr for vertex id, growing the vertex count if needed.
// Errors: ErrNegativeVertexID.
func (g *Graph[A, V]) AddVertex(id int, attr V) error {
	if err := g.vertices.AddVertex(id, attr); err != nil {
		return fmt.Errorf("core: AddVertex: %w", err)
	}

	return nil
}

// UpdateVertexCount grows the vertex count to at least id+1 without setting
// attributes. Errors: ErrNegativeVertexID.
func (g *Graph[A, V]) UpdateVertexCount(id int) error {
	if err := g.vertices.UpdateVertexCount(id); err != nil {
		return fmt.Errorf("core: UpdateVertexCount: %w", err)
	}

	return nil
}

// Vertex returns a pointer to the attributes of vertex id.
// Errors: ErrVertexNotFound.
func (g *Graph[A, V]) Vertex(id int) (*V, error) { return g.vertices.Vertex(id) }

// Vertices returns the vertex attributes indexed by id.
func (g *Graph[A, V]) Vertices() []V { return g.vertices.Vertices() }

// VertexCount returns the total number of vertices: max referenced id + 1.
func (g *Graph[A, V]) VertexCount() int { return g.vertices.VertexCount() }

// Looped reports whether self-loops are permitted.
func (g *Graph[A, V]) Looped() bool { return g.allowLoops }

// -- Copy --------------------------------------------------------------------

// Clone returns a copy of g with its own edge and vertex storage. Attribute
// values are copied shallowly.
// Complexity: O(V+E).
func (g *Graph[A, V]) Clone() *Graph[A, V] {
	c := &Graph[A, V]{allowLoops: g.allowLoops}
	c.edges.edges = append(make([]Edge[A], 0, len(g.edges.edges)), g.edges.edges...)
	c.vertices.vertices = append(make([]V, 0, len(g.vertices.vertices)), g.vertices.vertices...)

	return c
}
