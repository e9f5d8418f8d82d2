// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/forest/core"
)

// Target is the part of core.Graph a constructor mutates.
type Target[A any] interface {
	AddEdge(source, target int, attr A) error
	UpdateVertexCount(id int) error
	VertexCount() int
	Looped() bool
}

// Constructor appends one topology to g using the resolved config.
type Constructor[A any] func(g Target[A], cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w"; no
// partial graph is returned.
//
// Complexity: sum of the constructors' costs.
func BuildGraph[A, V any](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[A]) (*core.Graph[A, V], error) {
	g := core.NewGraph[A, V](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices reserves n fresh ids and returns the first one.
func addVertices[A any](g Target[A], method string, n int) (int, error) {
	base := g.VertexCount()
	if err := g.UpdateVertexCount(base + n - 1); err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}

	return base, nil
}

func addEdge[A any](g Target[A], method string, u, v int, attr A) error {
	if err := g.AddEdge(u, v, attr); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}

	return nil
}
