// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
}

// BuilderOption configures BuildGraph.
type BuilderOption func(*builderConfig)

// WithSeed seeds a private RNG for reproducible stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r for stochastic constructors. A nil r clears the RNG.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
