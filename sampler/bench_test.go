package sampler_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/spintower/lattice"
	"github.com/katalvlaran/spintower/sampler"
)

// BenchmarkSample measures the hot loop: proposal, incremental delta,
// accept/reject, tracking.
func BenchmarkSample(b *testing.B) {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	opts := sampler.Options{Steps: 2000, Beta: 2.0, Seed: 42}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampler.Sample(ctx, torus, cpl, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSampleRuns measures parallel fan-out over 4 substreams.
func BenchmarkSampleRuns(b *testing.B) {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	opts := sampler.Options{Steps: 2000, Beta: 2.0, Seed: 42}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampler.SampleRuns(ctx, torus, cpl, opts, 4); err != nil {
			b.Fatal(err)
		}
	}
}
