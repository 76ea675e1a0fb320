// Package rank orders sampled spin configurations by energy and assigns
// normalized Boltzmann-like probabilities to the lowest-energy subset.
//
// What:
//
//   - Rank selects the K lowest-energy distinct configurations from a sampled
//     ensemble, ties at the Kth boundary broken by first-seen order (the
//     sampler's deterministic insertion order).
//   - Each selected state receives weight w = exp(−beta·(E − E_min)); the
//     E_min shift is a numerical-stability requirement, not a convenience:
//     without it large negative energies overflow the exponential.
//   - Probabilities are the normalized weights: ΣP = 1, every P ∈ (0,1], and
//     P is non-increasing as energy grows (for beta ≥ 0).
//
// Why:
//
//   - The probabilities are a classical-sampling proxy for rendering, not
//     quantum amplitudes; the contract is purely the weighting rule above.
//
// Degraded condition:
//
//   - K larger than the available distinct count is not an error: the result
//     is clamped to what was sampled and flagged Truncated so callers can
//     indicate partial data instead of silently shortening the list.
//
// Complexity: O(D log D) for the sort, D = distinct configurations.
package rank
