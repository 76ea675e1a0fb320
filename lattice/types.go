// Package lattice defines core types, dimensions, and sentinel errors for the
// 6×6 periodic spin lattice.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrSiteRange indicates a site index outside [0, NumSites).
	ErrSiteRange = errors.New("lattice: site index out of range")
	// ErrSameSpin indicates an exchange proposed between two equal spins,
	// which would be a no-op and is rejected to keep move accounting honest.
	ErrSameSpin = errors.New("lattice: exchange requires opposite spins")
)

// Fixed lattice dimensions. The 6×6 torus is a design constant: topology
// construction has no error conditions because the shape is not an input.
const (
	// Width is the number of columns.
	Width = 6
	// Height is the number of rows.
	Height = 6
	// NumSites is the total number of spin sites (Width×Height).
	NumSites = Width * Height
	// NumBonds is the total number of nearest-neighbor bonds on the torus.
	NumBonds = 2 * NumSites
	// UpCount is the fixed number of up spins in the Sz_tot=0 sector.
	UpCount = NumSites / 2
)

// Site identifies one lattice location in row-major order: site = row*Width+col.
type Site int

// BondKind tags a bond by the lattice axis it runs along.
type BondKind int

const (
	// BondX couples two sites adjacent along a row (col → col+1 mod Width).
	BondX BondKind = iota
	// BondY couples two sites adjacent along a column (row → row+1 mod Height).
	BondY
)

// String returns "x" or "y" for diagnostic output.
func (k BondKind) String() string {
	if k == BondX {
		return "x"
	}

	return "y"
}

// Bond is an unordered pair of adjacent sites plus its axis tag.
// The full bond set (36 x-type + 36 y-type) is fixed and built once.
type Bond struct {
	A, B Site
	Kind BondKind
}

// Couplings holds the anisotropic interaction strengths, one per bond axis.
// Sign convention: negative = ferromagnetic bias, positive = antiferromagnetic
// bias for that direction. Immutable within one sampling run.
type Couplings struct {
	Jx float64
	Jy float64
}

// J returns the coupling constant for the given bond axis.
func (c Couplings) J(k BondKind) float64 {
	if k == BondX {
		return c.Jx
	}

	return c.Jy
}
