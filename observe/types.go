// Package observe - types and sentinel errors for observable extraction.
package observe

import (
	"errors"

	"github.com/katalvlaran/spintower/lattice"
)

// Sentinel errors for observable extraction.
var (
	// ErrBadLevelCount indicates a non-positive requested spectrum depth.
	ErrBadLevelCount = errors.New("observe: level count must be positive")
	// ErrBadEpsilon indicates a non-positive degeneracy tolerance.
	ErrBadEpsilon = errors.New("observe: epsilon must be positive")
	// ErrEmptyHistory indicates an energy history with no entries.
	ErrEmptyHistory = errors.New("observe: energy history is empty")
	// ErrEmptyEnsemble indicates a correlation request over zero states.
	ErrEmptyEnsemble = errors.New("observe: ensemble holds no states")
	// ErrWeightMismatch indicates len(weights) != len(states).
	ErrWeightMismatch = errors.New("observe: weights and states differ in length")
	// ErrWeightSum indicates weights that do not sum to 1.
	ErrWeightSum = errors.New("observe: weights must sum to 1")
)

// DefaultLevelCount is the spectrum depth of the reference display: the six
// lowest distinct energies.
const DefaultLevelCount = 6

// DefaultEpsilon is the default energy-degeneracy tolerance. Energies are
// rational multiples of ¼·J; 1e-9 comfortably absorbs summation noise while
// keeping genuinely distinct levels apart.
const DefaultEpsilon = 1e-9

// weightSumTol bounds the acceptable drift of Σweights from 1.
const weightSumTol = 1e-9

// Level is one extracted energy level: its representative energy (the lowest
// member of its equivalence class), its history multiplicity, and its index
// in ascending-energy order.
type Level struct {
	Energy     float64
	Degeneracy int
	Index      int
}

// Tower is the ordered low-energy spectrum extracted from one history.
type Tower struct {
	// Levels is sorted strictly ascending by energy; Levels[i].Index == i.
	Levels []Level
	// Truncated is set when fewer distinct classes existed than requested.
	Truncated bool
}

// CorrMatrix is the site-site correlation function C(Δrow, Δcol) =
// ⟨Sz₀·Sz_(Δrow,Δcol)⟩, indexed by displacement from site 0 on the torus.
// Every entry lies in [−0.25, +0.25]; the (0,0) entry is exactly +0.25.
type CorrMatrix [lattice.Height][lattice.Width]float64
