// Package sampler - parallel independent runs and deterministic merging.
package sampler

import (
	"context"
	"sync"

	"github.com/katalvlaran/spintower/lattice"
)

// SampleRuns dispatches `runs` independent sampling runs across goroutines
// and merges their results. Runs share only the read-only torus; each run
// walks on its own RNG substream derived from opts.Seed and the run index,
// so the merged output is reproducible regardless of scheduling.
//
// Merge order (documented total order for tie-break determinism):
//   - History: concatenation in ascending run index.
//   - Distinct set: union in ascending run index, then first-seen order
//     within each run; the earliest occurrence keeps its energy.
//
// Cancellation: ctx is observed by every run. On cancellation the merge of
// all partial ensembles is returned together with the context error; the
// partial histories remain valid up to each run's abort point.
//
// Errors: ErrBadRuns plus everything Sample can return.
//
// Complexity: O(runs·Steps) total work, O(runs) goroutines.
func SampleRuns(ctx context.Context, torus *lattice.Torus, cpl lattice.Couplings, opts Options, runs int) (*Ensemble, error) {
	if runs <= 0 {
		return nil, ErrBadRuns
	}
	if torus == nil {
		return nil, ErrNilTorus
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var (
		wg      sync.WaitGroup
		results = make([]*Ensemble, runs)
		errs    = make([]error, runs)
	)
	for run := 0; run < runs; run++ {
		wg.Add(1)
		go func(run int) {
			defer wg.Done()
			sub := opts
			sub.Seed = deriveSeed(opts.Seed, uint64(run))
			results[run], errs[run] = Sample(ctx, torus, cpl, sub)
		}(run)
	}
	wg.Wait()

	merged := newEnsemble(runs * opts.Steps)
	var firstErr error
	for run := 0; run < runs; run++ {
		if errs[run] != nil && firstErr == nil {
			firstErr = errs[run]
		}
		if results[run] == nil {
			continue
		}
		merged.History = append(merged.History, results[run].History...)
		for _, v := range results[run].visits {
			merged.record(v.Config, v.Energy)
		}
	}

	return merged, firstErr
}
