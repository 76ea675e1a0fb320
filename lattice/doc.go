// Package lattice models a fixed 6×6 spin-½ lattice with periodic boundary
// conditions (torus geometry) and anisotropic nearest-neighbor couplings.
//
// What:
//
//   - Torus builds the complete site/bond topology exactly once; afterwards
//     every lookup is a pure function of that fixed structure.
//   - Sites are row-major indices in [0,36); bonds are unordered pairs of
//     adjacent sites tagged BondX (along a row) or BondY (along a column).
//     Periodicity gives every site exactly 4 neighbors: 2 x-type, 2 y-type.
//   - Config is a classical Sz-basis snapshot: 36 spins, each ±½, constrained
//     to exactly 18 up and 18 down (the Sz_tot=0 sector). The constraint holds
//     from construction through every exchange move.
//   - Energy evaluates E = Σ_x Jx·Sz_i·Sz_j + Σ_y Jy·Sz_i·Sz_j over all 72
//     bonds; SwapDelta evaluates the same quantity incrementally over the
//     bonds incident to a single proposed exchange.
//
// Why:
//
//   - The topology is the only long-lived object in a sampling session; it is
//     immutable after New and therefore safe for concurrent reads by parallel
//     sampling runs without locking.
//   - Reference configurations (Néel, stripes) give tests and callers exact
//     classical ground states to compare sampled output against.
//
// Complexity:
//
//   - New:        O(N) time and memory, N = 36 sites (72 bonds).
//   - Energy:     O(B), B = 72 bonds.
//   - SwapDelta:  O(1) — at most 8 incident bonds inspected.
//   - All lookups: O(1).
//
// Errors:
//
//   - ErrSiteRange: a site index lies outside [0,36).
//   - ErrSameSpin:  an exchange was proposed between two equal spins.
package lattice
