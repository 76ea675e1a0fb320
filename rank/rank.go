// Package rank - lowest-K selection and normalized Boltzmann weighting.
package rank

import (
	"math"
	"sort"

	"github.com/katalvlaran/spintower/sampler"
)

// Rank selects the K lowest-energy configurations from the ensemble's
// distinct set and assigns normalized exp(−beta·(E−E_min)) probabilities.
//
// Contracts:
//   - K must be positive; beta must be non-negative.
//   - Ties, including ties at the Kth boundary, are broken by the sampler's
//     first-seen order, so the selection is deterministic under a fixed seed.
//   - ΣP = 1 within floating-point tolerance; P is non-increasing in rank.
//   - K greater than the available distinct count clamps to the available
//     count and sets Truncated on the result (degraded, not an error).
//
// Errors: ErrBadK, ErrBadBeta, ErrEmptyEnsemble.
//
// Complexity: O(D log D) time, O(D) space (D = distinct configurations).
func Rank(ens *sampler.Ensemble, k int, beta float64) (Ranking, error) {
	if k <= 0 {
		return Ranking{}, ErrBadK
	}
	if beta < 0 {
		return Ranking{}, ErrBadBeta
	}
	if ens == nil || ens.Size() == 0 {
		return Ranking{}, ErrEmptyEnsemble
	}

	// Visits() is already in first-seen order; a stable sort by energy keeps
	// that order inside every tie class.
	visits := ens.Visits()
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].Energy < visits[j].Energy
	})

	var res Ranking
	if k > len(visits) {
		k = len(visits)
		res.Truncated = true
	}
	selected := visits[:k]

	// E_min shift before exponentiating: mandatory overflow protection for
	// strongly negative energies.
	eMin := selected[0].Energy
	weights := make([]float64, k)
	var total float64
	for i, v := range selected {
		weights[i] = math.Exp(-beta * (v.Energy - eMin))
		total += weights[i]
	}

	res.States = make([]RankedConfig, k)
	for i, v := range selected {
		res.States[i] = RankedConfig{
			Config:      v.Config,
			Energy:      v.Energy,
			Probability: weights[i] / total,
			Rank:        i,
		}
	}

	return res, nil
}
