package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RunParams is the full configuration surface of one evaluation; together
// with the library version it determines every output bit, which is what
// makes the manifest a reproducibility record.
type RunParams struct {
	// Jx, Jy are the anisotropic coupling strengths.
	Jx float64 `json:"jx"`
	Jy float64 `json:"jy"`

	// Steps is the sampling budget per run.
	Steps int `json:"steps"`

	// Beta is the sampling-bias strength.
	Beta float64 `json:"beta"`

	// Seed is the base RNG seed.
	Seed int64 `json:"seed"`

	// Runs is the number of parallel independent runs merged together.
	Runs int `json:"runs"`

	// K is the ranked-subset size.
	K int `json:"k"`

	// LevelCount is the spectrum depth.
	LevelCount int `json:"level_count"`

	// Epsilon is the energy-degeneracy tolerance.
	Epsilon float64 `json:"epsilon"`
}

// Manifest records one evaluation: a unique ID, creation time, the exact
// parameters, and summary figures of the produced ensemble.
type Manifest struct {
	// ID is a random UUID identifying this evaluation.
	ID string `json:"id"`

	// CreatedAt is the UTC creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// Params is the complete parameter set.
	Params RunParams `json:"params"`

	// HistoryLength is the total number of recorded energies.
	HistoryLength int `json:"history_length"`

	// DistinctCount is the number of distinct configurations visited.
	DistinctCount int `json:"distinct_count"`

	// GroundEnergy is the lowest energy in the ranked subset.
	GroundEnergy float64 `json:"ground_energy"`

	// RankTruncated / TowerTruncated flag the degraded conditions where the
	// ensemble held fewer states or levels than requested.
	RankTruncated  bool `json:"rank_truncated"`
	TowerTruncated bool `json:"tower_truncated"`
}

// NewManifest stamps a manifest with a fresh UUID and the current UTC time.
func NewManifest(params RunParams) Manifest {
	return Manifest{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Params:    params,
	}
}

// WriteManifest renders the manifest as indented JSON.
func WriteManifest(w io.Writer, m Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(m), "export: manifest encode")
}
