// Package observe - tower-of-states extraction from an energy history.
package observe

import "sort"

// Spectrum clusters the energy history into tolerance-equivalence classes
// and returns the lowest levelCount levels in ascending order.
//
// Contracts:
//   - history must be non-empty; levelCount > 0; eps > 0.
//   - Two energies belong to the same class when their distance to the class
//     representative (its lowest member) is below eps.
//   - Degeneracy counts history entries, not distinct configurations; the
//     sum of degeneracies over ALL classes equals len(history).
//   - Fewer classes than requested clamps the tower and sets Truncated.
//
// Errors: ErrEmptyHistory, ErrBadLevelCount, ErrBadEpsilon.
//
// Complexity: O(S log S) time, O(S) space (S = history length).
func Spectrum(history []float64, levelCount int, eps float64) (Tower, error) {
	if levelCount <= 0 {
		return Tower{}, ErrBadLevelCount
	}
	if eps <= 0 {
		return Tower{}, ErrBadEpsilon
	}
	if len(history) == 0 {
		return Tower{}, ErrEmptyHistory
	}

	sorted := make([]float64, len(history))
	copy(sorted, history)
	sort.Float64s(sorted)

	// One pass over the sorted energies: a new class opens whenever the gap
	// to the current representative exceeds eps. Anchoring the comparison on
	// the representative (not the previous member) keeps classes from
	// chaining across many sub-eps gaps.
	var levels []Level
	rep := sorted[0]
	count := 0
	for _, e := range sorted {
		if e-rep < eps {
			count++
			continue
		}
		levels = append(levels, Level{Energy: rep, Degeneracy: count, Index: len(levels)})
		rep = e
		count = 1
	}
	levels = append(levels, Level{Energy: rep, Degeneracy: count, Index: len(levels)})

	var res Tower
	if levelCount > len(levels) {
		levelCount = len(levels)
		res.Truncated = true
	}
	res.Levels = levels[:levelCount]

	return res, nil
}
