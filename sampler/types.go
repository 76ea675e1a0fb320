// Package sampler - core types, options, and sentinel errors.
package sampler

import (
	"errors"

	"github.com/katalvlaran/spintower/lattice"
)

// Sentinel errors for sampler operations. Validation happens before any
// sampling work begins; no error is produced mid-walk except context
// cancellation, which is surfaced as the context's own error.
var (
	// ErrNilTorus indicates a nil *lattice.Torus was passed.
	ErrNilTorus = errors.New("sampler: torus is nil")
	// ErrBadSteps indicates a non-positive sampling budget.
	ErrBadSteps = errors.New("sampler: Steps must be positive")
	// ErrBadBeta indicates a negative bias strength.
	ErrBadBeta = errors.New("sampler: Beta must be non-negative")
	// ErrBadRuns indicates a non-positive parallel run count.
	ErrBadRuns = errors.New("sampler: Runs must be positive")
)

// Options configures one sampling run.
//
// Steps – number of exchange proposals (must be > 0).
// Beta  – bias strength (must be ≥ 0); 0 = unbiased exploration,
//
//	larger values prefer lower-energy configurations more strongly.
//
// Seed  – RNG seed for reproducibility; 0 maps to a fixed default stream.
type Options struct {
	Steps int
	Beta  float64
	Seed  int64
}

// DefaultOptions returns a deterministic medium-length walk:
// Steps=2000, Beta=2.0, Seed=0 (fixed default stream).
func DefaultOptions() Options {
	return Options{
		Steps: 2000,
		Beta:  2.0,
		Seed:  0,
	}
}

// validate checks Options before any work is done.
// Complexity: O(1).
func (o Options) validate() error {
	if o.Steps <= 0 {
		return ErrBadSteps
	}
	if o.Beta < 0 {
		return ErrBadBeta
	}

	return nil
}

// Visit pairs one distinct configuration with its energy. The slice order of
// visits inside an Ensemble is first-seen order, which is deterministic under
// a fixed seed and serves as the documented tie-break for ranking.
type Visit struct {
	Config lattice.Config
	Energy float64
}

// Ensemble is the output of a sampling run (or a merge of runs):
// the full ordered energy history plus the distinct-configuration set.
type Ensemble struct {
	// History holds the current energy after every proposal, including the
	// initial state at index 0. For a single run, len == Steps+1 (shorter
	// only when the run was cancelled mid-walk).
	History []float64

	visits []Visit
	index  map[string]int
}

// newEnsemble preallocates for a walk of the given budget.
func newEnsemble(steps int) *Ensemble {
	return &Ensemble{
		History: make([]float64, 0, steps+1),
		visits:  make([]Visit, 0, 64),
		index:   make(map[string]int, 64),
	}
}

// record inserts cfg into the distinct set unless a structurally equal
// configuration was seen before; the first-seen energy wins.
func (e *Ensemble) record(cfg lattice.Config, energy float64) {
	key := cfg.Key()
	if _, ok := e.index[key]; ok {
		return
	}
	e.index[key] = len(e.visits)
	e.visits = append(e.visits, Visit{Config: cfg, Energy: energy})
}

// Visits returns the distinct configurations in first-seen order.
// The returned slice is a copy; the ensemble stays immutable to callers.
//
// Complexity: O(D).
func (e *Ensemble) Visits() []Visit {
	out := make([]Visit, len(e.visits))
	copy(out, e.visits)

	return out
}

// Size returns the number of distinct configurations visited.
// Complexity: O(1).
func (e *Ensemble) Size() int {
	return len(e.visits)
}

// Contains reports whether a structurally equal configuration was visited,
// returning its recorded energy when present.
//
// Complexity: O(N) for the key, O(1) for the lookup.
func (e *Ensemble) Contains(cfg lattice.Config) (float64, bool) {
	i, ok := e.index[cfg.Key()]
	if !ok {
		return 0, false
	}

	return e.visits[i].Energy, true
}
