// Package core defines the Edge record, the Graph options and the sentinel
// errors shared by EdgeList, VertexList and Graph.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that a vertex id below zero was supplied.
	ErrNegativeVertexID = errors.New("core: negative vertex id")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Empty is the attribute type for edges or vertices that carry no payload.
type Empty = struct{}

// Edge represents a *directed* connection Source→Target carrying Attr.
//
// Edge identity is structural: two edges with equal endpoints and attributes
// are indistinguishable. With a comparable A, Edge values compare with ==.
type Edge[A any] struct {
	// Source is the origin vertex id.
	Source int

	// Target is the destination vertex id.
	Target int

	// Attr is the caller-defined payload, e.g. a weight.
	Attr A
}

// String renders the edge as "(source, target, attr)".
func (e Edge[A]) String() string {
	return fmt.Sprintf("(%d, %d, %v)", e.Source, e.Target, e.Attr)
}

// graphConfig collects construction-time settings applied by GraphOption.
type graphConfig struct {
	allowLoops   bool // allow self-loops
	edgeCapacity int  // pre-allocated edge slots
	vertexCount  int  // initial vertex count
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *graphConfig)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithEdgeCapacity pre-allocates storage for n edges. Non-positive n is ignored.
func WithEdgeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.edgeCapacity = n
		}
	}
}

// WithVertexCount starts the graph with vertices 0..n-1 holding zero attributes.
// Non-positive n is ignored.
func WithVertexCount(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.vertexCount = n
		}
	}
}
