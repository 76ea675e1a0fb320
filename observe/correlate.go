// Package observe - weighted site-site correlation on the torus.
package observe

import (
	"math"

	"github.com/katalvlaran/spintower/lattice"
)

// Correlate computes the weighted correlation matrix over the given ensemble:
// for every displacement (Δrow, Δcol), the weighted average of
// Sz(site 0)·Sz(site at (Δrow, Δcol)), displacement wrapped on the torus.
//
// Contracts:
//   - states and weights must have equal positive length; Σweights must be
//     1 within 1e-9 (the weights are the same normalized probabilities the
//     ranking produced, or uniform 1/K for an unweighted ensemble).
//   - Each single-state contribution is ±¼, so every output entry lies in
//     [−0.25, +0.25] and the (0,0) self-correlation is exactly +0.25.
//
// Errors: ErrEmptyEnsemble, ErrWeightMismatch, ErrWeightSum.
//
// Complexity: O(K·N) time (K states, N = 36 displacements), O(1) extra space.
func Correlate(states []lattice.Config, weights []float64) (CorrMatrix, error) {
	var m CorrMatrix
	if len(states) == 0 {
		return m, ErrEmptyEnsemble
	}
	if len(states) != len(weights) {
		return m, ErrWeightMismatch
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > weightSumTol {
		return m, ErrWeightSum
	}

	origin := lattice.SiteAt(0, 0)
	for k, cfg := range states {
		s0 := cfg.Sz(origin)
		for dr := 0; dr < lattice.Height; dr++ {
			for dc := 0; dc < lattice.Width; dc++ {
				m[dr][dc] += weights[k] * s0 * cfg.Sz(lattice.SiteAt(dr, dc))
			}
		}
	}

	return m, nil
}

// UniformWeights returns the uniform distribution over k states, the weight
// vector to pass Correlate when the full distinct set is used unranked.
func UniformWeights(k int) []float64 {
	if k <= 0 {
		return nil
	}
	out := make([]float64, k)
	w := 1 / float64(k)
	for i := range out {
		out[i] = w
	}

	return out
}
