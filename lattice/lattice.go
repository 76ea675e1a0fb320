// Package lattice - torus topology construction and index mapping.
//
// The 6×6 grid wraps at both boundaries, so the site graph is 4-regular:
// edge and corner cells have the same neighborhood shape as interior cells.
package lattice

// Torus is the fixed 6×6 periodic site graph. It is immutable once built and
// safe for concurrent reads without locking; construct it once per process
// (or once per test) and share it across sampling runs.
type Torus struct {
	bonds    [NumBonds]Bond
	incident [NumSites][4]Bond
}

// New builds the complete bond list and per-site incidence table.
// Each site contributes one BondX (to its right neighbor) and one BondY
// (to its lower neighbor); wraparound closes the remaining boundary bonds.
//
// Complexity: O(NumSites) time and memory.
func New() *Torus {
	var t Torus

	// fill[i] tracks how many incident bonds have been recorded for site i.
	var fill [NumSites]int

	var n int
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			s := SiteAt(r, c)

			bx := Bond{A: s, B: SiteAt(r, c+1), Kind: BondX}
			t.bonds[n] = bx
			n++
			t.incident[bx.A][fill[bx.A]] = bx
			fill[bx.A]++
			t.incident[bx.B][fill[bx.B]] = bx
			fill[bx.B]++

			by := Bond{A: s, B: SiteAt(r+1, c), Kind: BondY}
			t.bonds[n] = by
			n++
			t.incident[by.A][fill[by.A]] = by
			fill[by.A]++
			t.incident[by.B][fill[by.B]] = by
			fill[by.B]++
		}
	}

	return &t
}

// SiteAt maps (row, col) to a Site, wrapping both coordinates modulo the
// lattice dimensions so that callers may pass displaced or negative indices.
//
// Complexity: O(1).
func SiteAt(row, col int) Site {
	row = ((row % Height) + Height) % Height
	col = ((col % Width) + Width) % Width

	return Site(row*Width + col)
}

// Coordinate converts a site back to its (row, col) pair.
// Complexity: O(1).
func (s Site) Coordinate() (row, col int) {
	return int(s) / Width, int(s) % Width
}

// InRange reports whether s is a valid site index.
// Complexity: O(1).
func (s Site) InRange() bool {
	return s >= 0 && s < NumSites
}

// Bonds returns a copy of the full bond list (36 x-type and 36 y-type,
// interleaved in construction order). The copy preserves immutability of the
// shared topology.
//
// Complexity: O(NumBonds).
func (t *Torus) Bonds() []Bond {
	out := make([]Bond, NumBonds)
	copy(out, t.bonds[:])

	return out
}

// Incident returns the 4 bonds touching site s (2 x-type, 2 y-type).
// Returns ErrSiteRange if s is out of range.
//
// Complexity: O(1).
func (t *Torus) Incident(s Site) ([4]Bond, error) {
	if !s.InRange() {
		return [4]Bond{}, ErrSiteRange
	}

	return t.incident[s], nil
}

// Neighbors returns the 4 adjacent sites of s in incidence order.
// Returns ErrSiteRange if s is out of range.
//
// Complexity: O(1).
func (t *Torus) Neighbors(s Site) ([4]Site, error) {
	var out [4]Site
	if !s.InRange() {
		return out, ErrSiteRange
	}

	var i int
	for i = 0; i < 4; i++ {
		b := t.incident[s][i]
		if b.A == s {
			out[i] = b.B
		} else {
			out[i] = b.A
		}
	}

	return out, nil
}
