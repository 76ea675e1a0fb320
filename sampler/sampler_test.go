package sampler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spintower/lattice"
	"github.com/katalvlaran/spintower/sampler"
)

// SamplerSuite exercises the Metropolis exchange walk.
type SamplerSuite struct {
	suite.Suite
	torus *lattice.Torus
}

func (s *SamplerSuite) SetupSuite() {
	s.torus = lattice.New()
}

// TestValidation rejects invalid parameters before any sampling work.
func (s *SamplerSuite) TestValidation() {
	ctx := context.Background()
	cpl := lattice.Couplings{Jx: 1, Jy: 1}

	_, err := sampler.Sample(ctx, nil, cpl, sampler.DefaultOptions())
	require.ErrorIs(s.T(), err, sampler.ErrNilTorus)

	opts := sampler.DefaultOptions()
	opts.Steps = 0
	_, err = sampler.Sample(ctx, s.torus, cpl, opts)
	require.ErrorIs(s.T(), err, sampler.ErrBadSteps)

	opts = sampler.DefaultOptions()
	opts.Beta = -0.1
	_, err = sampler.Sample(ctx, s.torus, cpl, opts)
	require.ErrorIs(s.T(), err, sampler.ErrBadBeta)
}

// TestDeterminism verifies that a fixed seed reproduces the walk exactly:
// identical history and identical first-seen order.
func (s *SamplerSuite) TestDeterminism() {
	ctx := context.Background()
	cpl := lattice.Couplings{Jx: 1, Jy: -0.5}
	opts := sampler.Options{Steps: 500, Beta: 1.0, Seed: 99}

	a, err := sampler.Sample(ctx, s.torus, cpl, opts)
	require.NoError(s.T(), err)
	b, err := sampler.Sample(ctx, s.torus, cpl, opts)
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.History, b.History)

	va, vb := a.Visits(), b.Visits()
	require.Equal(s.T(), len(va), len(vb))
	for i := range va {
		require.Equal(s.T(), va[i].Config.Key(), vb[i].Config.Key(), "visit %d", i)
		require.Equal(s.T(), va[i].Energy, vb[i].Energy, "visit %d", i)
	}
}

// TestHistoryShape checks the Steps+1 history contract and that the first
// entry is the initial configuration's energy.
func (s *SamplerSuite) TestHistoryShape() {
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	opts := sampler.Options{Steps: 250, Beta: 0.5, Seed: 3}

	ens, err := sampler.Sample(context.Background(), s.torus, cpl, opts)
	require.NoError(s.T(), err)
	require.Len(s.T(), ens.History, opts.Steps+1)

	first := ens.Visits()[0]
	require.Equal(s.T(), first.Energy, ens.History[0])
	require.InDelta(s.T(), s.torus.Energy(first.Config, cpl), ens.History[0], 1e-12)
}

// TestSectorInvariant asserts 18 up / 18 down for every distinct
// configuration the walk ever produced.
func (s *SamplerSuite) TestSectorInvariant() {
	cpl := lattice.Couplings{Jx: -1, Jy: 1}
	opts := sampler.Options{Steps: 1500, Beta: 0.3, Seed: 11}

	ens, err := sampler.Sample(context.Background(), s.torus, cpl, opts)
	require.NoError(s.T(), err)
	for i, v := range ens.Visits() {
		up, down := v.Config.Counts()
		require.Equal(s.T(), lattice.UpCount, up, "visit %d", i)
		require.Equal(s.T(), lattice.UpCount, down, "visit %d", i)
	}
}

// TestRecordedEnergies cross-checks the incremental energy bookkeeping:
// every recorded visit energy must equal a full recomputation.
func (s *SamplerSuite) TestRecordedEnergies() {
	cpl := lattice.Couplings{Jx: 1.7, Jy: 0.4}
	opts := sampler.Options{Steps: 800, Beta: 1.2, Seed: 21}

	ens, err := sampler.Sample(context.Background(), s.torus, cpl, opts)
	require.NoError(s.T(), err)
	require.Positive(s.T(), ens.Size())
	for i, v := range ens.Visits() {
		require.InDelta(s.T(), s.torus.Energy(v.Config, cpl), v.Energy, 1e-9, "visit %d", i)
	}
}

// TestDistinctCollapse verifies structural deduplication: every key appears
// once and Contains finds each visited configuration.
func (s *SamplerSuite) TestDistinctCollapse() {
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	opts := sampler.Options{Steps: 600, Beta: 2.0, Seed: 5}

	ens, err := sampler.Sample(context.Background(), s.torus, cpl, opts)
	require.NoError(s.T(), err)

	seen := make(map[string]bool, ens.Size())
	for _, v := range ens.Visits() {
		key := v.Config.Key()
		require.False(s.T(), seen[key], "duplicate distinct entry")
		seen[key] = true

		e, ok := ens.Contains(v.Config)
		require.True(s.T(), ok)
		require.Equal(s.T(), v.Energy, e)
	}
}

// TestCancellation verifies cooperative abort: a cancelled context stops the
// walk between steps and the partial history stays valid.
func (s *SamplerSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	ens, err := sampler.Sample(ctx, s.torus, cpl, sampler.DefaultOptions())
	require.ErrorIs(s.T(), err, context.Canceled)
	require.NotNil(s.T(), ens)
	require.Len(s.T(), ens.History, 1) // initial state only
	require.Equal(s.T(), 1, ens.Size())
}

// TestGroundStateScenario pins the concrete acceptance scenario:
// Jx=1, Jy=1, steps=2000, beta=2, seed=42 must visit the exact classical
// ground state (−18: each of 72 bonds at −¼) and the lowest visited
// configuration must be a perfect checkerboard.
func (s *SamplerSuite) TestGroundStateScenario() {
	cpl := lattice.Couplings{Jx: 1, Jy: 1}
	opts := sampler.Options{Steps: 2000, Beta: 2.0, Seed: 42}

	ens, err := sampler.Sample(context.Background(), s.torus, cpl, opts)
	require.NoError(s.T(), err)

	best := ens.Visits()[0]
	for _, v := range ens.Visits() {
		if v.Energy < best.Energy {
			best = v
		}
	}
	require.InDelta(s.T(), -18.0, best.Energy, 1e-12)

	// Only the two Néel phases reach −18; both alternate along rows and columns.
	for r := 0; r < lattice.Height; r++ {
		for c := 0; c < lattice.Width; c++ {
			sp := best.Config.Spin(lattice.SiteAt(r, c))
			require.Equal(s.T(), -sp, best.Config.Spin(lattice.SiteAt(r, c+1)))
			require.Equal(s.T(), -sp, best.Config.Spin(lattice.SiteAt(r+1, c)))
		}
	}
}

// TestStripeScenario pins the mixed-sign scenario: Jx=−1, Jy=1 must settle
// into row-aligned stripes (uniform along rows, alternating down columns).
func (s *SamplerSuite) TestStripeScenario() {
	cpl := lattice.Couplings{Jx: -1, Jy: 1}
	opts := sampler.Options{Steps: 2000, Beta: 2.0, Seed: 42}

	ens, err := sampler.SampleRuns(context.Background(), s.torus, cpl, opts, 4)
	require.NoError(s.T(), err)

	best := ens.Visits()[0]
	for _, v := range ens.Visits() {
		if v.Energy < best.Energy {
			best = v
		}
	}
	require.InDelta(s.T(), -18.0, best.Energy, 1e-12)

	for r := 0; r < lattice.Height; r++ {
		for c := 0; c < lattice.Width; c++ {
			sp := best.Config.Spin(lattice.SiteAt(r, c))
			require.Equal(s.T(), sp, best.Config.Spin(lattice.SiteAt(r, c+1)), "rows must align")
			require.Equal(s.T(), -sp, best.Config.Spin(lattice.SiteAt(r+1, c)), "columns must alternate")
		}
	}
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerSuite))
}
