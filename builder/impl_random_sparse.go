// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi-like graph: every
// pair i < j is linked independently with probability p, plus the self-loop
// i→i when the graph allows loops. Trials run in (i asc, j asc) order.
//
// Requires n ≥ 1, 0 ≤ p ≤ 1, and an RNG unless p is 0 or 1.
// Complexity: O(n²) trials.
func RandomSparse[A any](n int, p float64, w WeightFn[A]) Constructor[A] {
	return func(g Target[A], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base, err := addVertices(g, methodRandomSparse, n)
		if err != nil {
			return err
		}

		first := 1
		if g.Looped() {
			first = 0
		}
		for i := 0; i < n; i++ {
			for j := i + first; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				if err = addEdge(g, methodRandomSparse, base+i, base+j, w.next(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports a Bernoulli(p) outcome; p ∈ {0, 1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
