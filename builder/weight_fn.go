// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge attribute from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn[A any] func(rng *rand.Rand) A

// ConstantWeightFn always yields value.
func ConstantWeightFn[A any](value A) WeightFn[A] {
	return func(*rand.Rand) A { return value }
}

// UniformIntWeightFn samples uniformly in [min, max]. With a nil RNG it yields
// min. Panics if max < min.
func UniformIntWeightFn(min, max int) WeightFn[int] {
	if max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}

func (w WeightFn[A]) next(rng *rand.Rand) A {
	if w == nil {
		var zero A
		return zero
	}

	return w(rng)
}
