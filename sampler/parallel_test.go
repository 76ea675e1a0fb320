package sampler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spintower/lattice"
	"github.com/katalvlaran/spintower/sampler"
)

// TestSampleRunsValidation rejects non-positive run counts and bad options.
func TestSampleRunsValidation(t *testing.T) {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	ctx := context.Background()

	_, err := sampler.SampleRuns(ctx, torus, cpl, sampler.DefaultOptions(), 0)
	require.ErrorIs(t, err, sampler.ErrBadRuns)

	_, err = sampler.SampleRuns(ctx, nil, cpl, sampler.DefaultOptions(), 2)
	require.ErrorIs(t, err, sampler.ErrNilTorus)

	opts := sampler.DefaultOptions()
	opts.Steps = -5
	_, err = sampler.SampleRuns(ctx, torus, cpl, opts, 2)
	require.ErrorIs(t, err, sampler.ErrBadSteps)
}

// TestSampleRunsMergeShape verifies the documented merge: concatenated
// histories in run order and a deduplicated distinct union.
func TestSampleRunsMergeShape(t *testing.T) {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	opts := sampler.Options{Steps: 300, Beta: 1.0, Seed: 17}
	const runs = 3

	ens, err := sampler.SampleRuns(context.Background(), torus, cpl, opts, runs)
	require.NoError(t, err)
	require.Len(t, ens.History, runs*(opts.Steps+1))

	seen := make(map[string]bool, ens.Size())
	for _, v := range ens.Visits() {
		key := v.Config.Key()
		require.False(t, seen[key], "merge must deduplicate")
		seen[key] = true
	}
}

// TestSampleRunsDeterminism verifies scheduling-independent reproducibility:
// the merged ensemble is a pure function of (couplings, options, runs).
func TestSampleRunsDeterminism(t *testing.T) {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: -0.8, Jy: 1.1}
	opts := sampler.Options{Steps: 400, Beta: 1.5, Seed: 29}

	a, err := sampler.SampleRuns(context.Background(), torus, cpl, opts, 4)
	require.NoError(t, err)
	b, err := sampler.SampleRuns(context.Background(), torus, cpl, opts, 4)
	require.NoError(t, err)

	require.Equal(t, a.History, b.History)
	va, vb := a.Visits(), b.Visits()
	require.Equal(t, len(va), len(vb))
	for i := range va {
		require.Equal(t, va[i].Config.Key(), vb[i].Config.Key(), "visit %d", i)
	}
}

// TestSampleRunsSubstreams verifies that runs explore independently:
// with distinct derived seeds the runs must not replay one another.
func TestSampleRunsSubstreams(t *testing.T) {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	opts := sampler.Options{Steps: 200, Beta: 0.5, Seed: 8}

	single, err := sampler.Sample(context.Background(), torus, cpl, opts)
	require.NoError(t, err)
	merged, err := sampler.SampleRuns(context.Background(), torus, cpl, opts, 2)
	require.NoError(t, err)

	// Two independent runs visit more states than either alone replayed twice.
	require.Greater(t, merged.Size(), single.Size())
}

// TestSampleRunsCancellation verifies partial merges survive cancellation.
func TestSampleRunsCancellation(t *testing.T) {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ens, err := sampler.SampleRuns(ctx, torus, cpl, sampler.DefaultOptions(), 3)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, ens)
	require.Len(t, ens.History, 3) // one initial entry per run
}
