// Package sampler explores the constrained configuration space of the 6×6
// spin lattice with a biased-exchange Metropolis walk and returns the visited
// ensemble for downstream ranking and observable extraction.
//
// 🚀 What is the sampler?
//
//	A restricted random walk on the graph whose nodes are balanced spin
//	snapshots (18 up, 18 down) and whose edges are magnetization-preserving
//	exchanges of two opposite spins. Each proposal is scored by the
//	incremental energy change of the swap alone:
//	  • ΔE ≤ 0             → accept unconditionally
//	  • ΔE > 0             → accept with probability exp(−beta·ΔE)
//	Beta is a greediness knob, not a physical temperature: 0 walks the
//	sector uniformly, large values descend toward classical ground states.
//
// ✨ Key guarantees:
//   - Determinism: same seed ⇒ identical history, identical distinct set,
//     identical first-seen order (the tie-break order ranking relies on).
//   - The Sz_tot=0 invariant holds after every step; exchange moves cannot
//     change the up/down counts.
//   - The energy history records the current energy after every proposal,
//     accepted or rejected, plus the initial state: len = Steps+1.
//   - Cooperative cancellation between steps: on context cancellation the
//     partial ensemble up to the abort point is returned intact.
//
// ⚙️ Usage:
//
//	torus := lattice.New()
//	opts := sampler.DefaultOptions()
//	opts.Steps, opts.Beta, opts.Seed = 2000, 2.0, 42
//	ens, err := sampler.Sample(context.Background(), torus, couplings, opts)
//
// Independent runs are embarrassingly parallel; SampleRuns fans out over
// derived seed substreams and merges results in a documented total order
// (run index, then first-seen order within a run).
//
// Performance:
//
//   - Time:   O(Steps) with O(1) work per proposal (≤8 bonds inspected).
//   - Memory: O(Steps + D·N), D = distinct configurations visited.
package sampler
