// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor for the path P_n: edges i→i+1 in ascending order.
// Requires n ≥ 2.
// Complexity: O(n).
func Path[A any](n int, w WeightFn[A]) Constructor[A] {
	return func(g Target[A], cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, base+i, base+i+1, w.next(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
