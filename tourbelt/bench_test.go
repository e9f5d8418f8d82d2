package tourbelt_test

import (
	"testing"

	"github.com/katalvlaran/forest/builder"
	"github.com/katalvlaran/forest/core"
	"github.com/katalvlaran/forest/tourbelt"
)

// BenchmarkCountBelts runs the belt count on a complete graph over 200
// vertices with random synergies.
func BenchmarkCountBelts(b *testing.B) {
	g, err := builder.BuildGraph[int, core.Empty](nil,
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.Complete(200, builder.UniformIntWeightFn(1, 100000)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := g.Clone()
		b.StartTimer()
		_ = tourbelt.CountBelts(c)
	}
}
