// Package lattice - Sz-basis spin configurations in the Sz_tot=0 sector.
package lattice

import "math/rand"

// Spin values as stored. Sz in physical units is the stored value divided by
// two, so every bond product contributes ±¼ before scaling by the coupling.
const (
	// SpinUp is the stored value for Sz=+½.
	SpinUp int8 = 1
	// SpinDown is the stored value for Sz=−½.
	SpinDown int8 = -1
)

// Config is one classical snapshot: an ordered sequence of 36 spins indexed
// by site. The zero value is NOT valid; use a constructor. All constructors
// produce exactly 18 up and 18 down spins, and Exchange is the only mutator,
// so the Sz_tot=0 invariant holds for the lifetime of every Config.
//
// Config is a value type: assignment copies the full snapshot, which is what
// samplers rely on when recording visited states.
type Config struct {
	spins [NumSites]int8
}

// NeelConfig returns the checkerboard (Néel) pattern: spin up where row+col
// is even. On an even-sized torus this pattern is globally consistent and is
// the classical ground state for Jx>0, Jy>0.
func NeelConfig() Config {
	var cfg Config
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if (r+c)%2 == 0 {
				cfg.spins[SiteAt(r, c)] = SpinUp
			} else {
				cfg.spins[SiteAt(r, c)] = SpinDown
			}
		}
	}

	return cfg
}

// StripeConfig returns the striped pattern aligned along the given axis:
// spins are uniform along every line of that axis and alternate between
// adjacent lines. StripeConfig(BondX) is the classical ground state for
// Jx<0, Jy>0 (ferromagnetic rows, antiferromagnetic columns), and
// StripeConfig(BondY) for the opposite sign choice.
func StripeConfig(aligned BondKind) Config {
	var cfg Config
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			stripe := r
			if aligned == BondY {
				stripe = c
			}
			if stripe%2 == 0 {
				cfg.spins[SiteAt(r, c)] = SpinUp
			} else {
				cfg.spins[SiteAt(r, c)] = SpinDown
			}
		}
	}

	return cfg
}

// BalancedConfig returns a uniformly shuffled balanced configuration:
// 18 up and 18 down spins permuted by rng (Fisher–Yates). Deterministic for
// a deterministic rng, which makes it the canonical sampler starting point.
//
// Complexity: O(NumSites).
func BalancedConfig(rng *rand.Rand) Config {
	var cfg Config

	var i int
	for i = 0; i < UpCount; i++ {
		cfg.spins[i] = SpinUp
	}
	for i = UpCount; i < NumSites; i++ {
		cfg.spins[i] = SpinDown
	}

	var j int
	for i = NumSites - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		cfg.spins[i], cfg.spins[j] = cfg.spins[j], cfg.spins[i]
	}

	return cfg
}

// Spin returns the stored ±1 value at site s. Out-of-range sites return 0;
// hot paths validate indices once at the boundary, not per lookup.
func (c Config) Spin(s Site) int8 {
	if !s.InRange() {
		return 0
	}

	return c.spins[s]
}

// Sz returns the physical spin-z value (±½) at site s.
func (c Config) Sz(s Site) float64 {
	return float64(c.Spin(s)) / 2
}

// Counts returns the number of up and down spins. For any constructed Config
// this is always (18, 18); tests use it to assert the sector invariant.
func (c Config) Counts() (up, down int) {
	for _, v := range c.spins {
		if v == SpinUp {
			up++
		} else {
			down++
		}
	}

	return up, down
}

// Exchange swaps the spins at sites a and b, the magnetization-preserving
// move: a swap of opposite spins can never change the up/down counts.
// Returns ErrSiteRange for invalid sites and ErrSameSpin when the two sites
// hold equal values (the exchange would be a silent no-op).
//
// Complexity: O(1).
func (c *Config) Exchange(a, b Site) error {
	if !a.InRange() || !b.InRange() {
		return ErrSiteRange
	}
	if c.spins[a] == c.spins[b] {
		return ErrSameSpin
	}
	c.spins[a], c.spins[b] = c.spins[b], c.spins[a]

	return nil
}

// Key returns a compact structural identity: one byte per site, '+' for up
// and '-' for down. Structurally equal configurations produce equal keys,
// which is exactly the collapse rule distinct-set tracking needs.
//
// Complexity: O(NumSites).
func (c Config) Key() string {
	var buf [NumSites]byte
	for i, v := range c.spins {
		if v == SpinUp {
			buf[i] = '+'
		} else {
			buf[i] = '-'
		}
	}

	return string(buf[:])
}
