package builder_test

import (
	"testing"

	"github.com/katalvlaran/hyperpath/builder"
	"github.com/katalvlaran/hyperpath/hyperpath"
	"github.com/katalvlaran/hyperpath/loading"
)

// BenchmarkComputeGrid measures one backward pass plus loading on a 30×30 lattice.
func BenchmarkComputeGrid(b *testing.B) {
	net, err := builder.Build([]builder.BuilderOption{
		builder.WithSeed(1),
		builder.WithCostFn(builder.UniformFn(1, 3)),
		builder.WithFrequencyFn(builder.HeadwayFn(4, 12)),
	}, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	demand := map[string]float64{"0,0": 100, "29,0": 50, "0,29": 25}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := hyperpath.Compute(net, "15,15")
		if err != nil {
			b.Fatal(err)
		}
		if _, err := loading.Load(net, s, demand); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComputePruned compares against the origin-pruned pass.
func BenchmarkComputePruned(b *testing.B) {
	net, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hyperpath.Compute(net, "15,15", hyperpath.WithOrigins("14,14")); err != nil {
			b.Fatal(err)
		}
	}
}
