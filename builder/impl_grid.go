// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor for a rows×cols 4-neighborhood grid. Cell (r, c)
// gets id base + r*cols + c; cells are visited row-major, each emitting its
// right edge then its down edge.
// Complexity: O(rows·cols).
func Grid[A any](rows, cols int, w WeightFn[A]) Constructor[A] {
	return func(g Target[A], cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		base, err := addVertices(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					if err = addEdge(g, methodGrid, id, id+1, w.next(cfg.rng)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(g, methodGrid, id, id+cols, w.next(cfg.rng)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
