// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor for the cycle C_n: the path P_n followed by the
// closing edge (n-1)→0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle[A any](n int, w WeightFn[A]) Constructor[A] {
	return func(g Target[A], cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, base+i, base+(i+1)%n, w.next(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
