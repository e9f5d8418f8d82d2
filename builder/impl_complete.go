// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor for K_n: one edge i→j for every i < j,
// ordered by i then j. Requires n ≥ 1.
// Complexity: O(n²).
func Complete[A any](n int, w WeightFn[A]) Constructor[A] {
	return func(g Target[A], cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, base+i, base+j, w.next(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
