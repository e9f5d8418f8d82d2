// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor for a star: the first new id is the center and
// the n-1 others are leaves, linked center→leaf in ascending order.
// Requires n ≥ 2.
// Complexity: O(n).
func Star[A any](n int, w WeightFn[A]) Constructor[A] {
	return func(g Target[A], cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		center, err := addVertices(g, methodStar, n)
		if err != nil {
			return err
		}
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err = addEdge(g, methodStar, center, leaf, w.next(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
