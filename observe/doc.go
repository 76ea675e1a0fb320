// Package observe derives the two snapshot observables from a sampled
// ensemble: the approximate low-energy spectrum ("tower of states") and the
// site-site correlation matrix.
//
// What:
//
//   - Spectrum groups the full energy history into equivalence classes under
//     a numeric tolerance (floating-point sums of ±¼ terms may not compare
//     exactly), sorts them ascending, and reports the lowest levels with
//     their degeneracies. Degeneracy is the history multiplicity of the
//     class — repeated visits legitimately increase apparent weight, a
//     sampling-frequency proxy for multiplet multiplicity, not a derived
//     physical quantity.
//   - Correlate computes the weighted average ⟨Sz(site 0)·Sz(site at
//     (Δrow,Δcol))⟩ over a weighted ensemble for every displacement on the
//     torus. Each single-configuration contribution is exactly ±¼, so every
//     entry lies in [−0.25, +0.25] by construction and the (0,0) entry is
//     exactly +0.25.
//
// Both extractors read the same sampled ensemble and are independent of each
// other; neither mutates its input.
//
// Degraded conditions:
//
//   - Fewer distinct classes than the requested level count (numeric
//     degeneracy) clamps the tower and flags it Truncated — a normal edge
//     case, not an error.
//
// Complexity:
//
//   - Spectrum:  O(S log S), S = history length.
//   - Correlate: O(K·N), K = ensemble states, N = 36 sites.
package observe
