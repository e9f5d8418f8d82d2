// Package core provides the thin graph containers consumed by the spanning
// forest solver: an ordered edge sequence, a vertex table keyed by dense ids,
// and a Graph composing both.
//
// The Graph G = (V,E) is deliberately simple:
//
//   - Vertices are numbered 0, 1, ..., n-1. Adding an edge that references id k
//     grows the vertex count to at least k+1 (VertexCount = max id + 1).
//   - Edges are *directed* records Edge{Source, Target, Attr} kept in insertion
//     order. Attr is any caller-defined payload (weight, synergy, capacity, …).
//   - Edges() returns the backing slice. Algorithms that sort it in place (see
//     mst.BaseHooks.SortEdges) reorder the graph itself; Clone first to keep the
//     original order.
//   - EdgeIndex / Edge give point lookups by (source, target); the first match
//     in the current order wins.
//
// Why use core.Graph?
//
//   - Generic attributes: Graph[A, V] carries any edge payload A and vertex
//     payload V without interface boxing.
//   - Satisfies mst.Graph directly: VertexCount() and Edges() are all the solver
//     needs.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (source == target); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithEdgeCapacity(n)
//	    Pre-allocates room for n edges.
//
//	– WithVertexCount(n)
//	    Starts with vertices 0..n-1 already present.
//
// Core Methods:
//
//	// Vertex table
//	AddVertex(id int, attr V) error    // O(1) amortized
//	Vertex(id int) (*V, error)         // O(1)
//	VertexCount() int                  // O(1)
//
//	// Edge sequence
//	AddEdge(source, target int, attr A) error // O(1) amortized
//	Edges() []Edge[A]                         // O(1), backing slice
//	EdgeIndex(source, target int) int         // O(E)
//	Edge(source, target int) (*Edge[A], error) // O(E)
//	EdgeCount() int                           // O(1)
//
//	// Copy
//	Clone() *Graph[A, V]                      // O(V+E)
//
// Errors:
//
//	ErrNegativeVertexID  - a vertex id below zero was supplied.
//	ErrVertexNotFound    - requested vertex id is outside 0..VertexCount()-1.
//	ErrEdgeNotFound      - no edge with the requested endpoints exists.
//	ErrLoopNotAllowed    - self-loop added to a graph built without WithLoops.
//
// Concurrency:
//
// Graph is not safe for concurrent mutation. Build it, then hand it to a single
// algorithm invocation at a time.
package core
