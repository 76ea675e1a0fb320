// Package rank - types and sentinel errors for the probability estimator.
package rank

import (
	"errors"

	"github.com/katalvlaran/spintower/lattice"
)

// Sentinel errors for ranking operations.
var (
	// ErrBadK indicates a non-positive requested subset size.
	ErrBadK = errors.New("rank: K must be positive")
	// ErrBadBeta indicates a negative weighting strength.
	ErrBadBeta = errors.New("rank: beta must be non-negative")
	// ErrEmptyEnsemble indicates there are no distinct configurations to rank.
	ErrEmptyEnsemble = errors.New("rank: ensemble holds no configurations")
)

// RankedConfig is one selected configuration with its energy, its normalized
// probability, and its rank (0 = lowest energy = highest probability).
// Ephemeral: recomputed per sampling run, never persisted.
type RankedConfig struct {
	Config      lattice.Config
	Energy      float64
	Probability float64
	Rank        int
}

// Ranking is the ordered result of one Rank call.
type Ranking struct {
	// States is sorted ascending by energy; States[i].Rank == i.
	States []RankedConfig
	// Truncated is set when the caller requested more states than the
	// ensemble contains and the result was clamped to the available count.
	Truncated bool
}

// Configs returns the ranked configurations in rank order, ready to feed the
// correlation extractor together with Probabilities.
func (r Ranking) Configs() []lattice.Config {
	out := make([]lattice.Config, len(r.States))
	for i, st := range r.States {
		out[i] = st.Config
	}

	return out
}

// Probabilities returns the normalized weights in rank order.
func (r Ranking) Probabilities() []float64 {
	out := make([]float64, len(r.States))
	for i, st := range r.States {
		out[i] = st.Probability
	}

	return out
}
