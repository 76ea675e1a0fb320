package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/spintower/lattice"
	"github.com/katalvlaran/spintower/observe"
	"github.com/katalvlaran/spintower/rank"
)

// CSVConfig specifies formatting options for the CSV writers.
type CSVConfig struct {
	// Precision is the number of decimal places for floating-point values.
	// Default: 6.
	Precision int
	// IncludeHeader writes column headers as the first row. Default: true.
	IncludeHeader bool
}

// DefaultCSVConfig returns the standard formatting: 6 decimal places,
// headers included.
func DefaultCSVConfig() CSVConfig {
	return CSVConfig{
		Precision:     6,
		IncludeHeader: true,
	}
}

func (c CSVConfig) formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', c.Precision, 64)
}

// WriteRanking writes the ranked configurations as one row per state:
// rank, energy, probability, and the 36-character spin key.
func WriteRanking(w io.Writer, r rank.Ranking, cfg CSVConfig) error {
	cw := csv.NewWriter(w)
	if cfg.IncludeHeader {
		if err := cw.Write([]string{"rank", "energy", "probability", "configuration"}); err != nil {
			return errors.Wrap(err, "export: ranking header")
		}
	}
	for _, st := range r.States {
		row := []string{
			strconv.Itoa(st.Rank),
			cfg.formatFloat(st.Energy),
			cfg.formatFloat(st.Probability),
			st.Config.Key(),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "export: ranking row")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "export: ranking flush")
}

// WriteTower writes the extracted spectrum as one row per level:
// index, energy, degeneracy.
func WriteTower(w io.Writer, tower observe.Tower, cfg CSVConfig) error {
	cw := csv.NewWriter(w)
	if cfg.IncludeHeader {
		if err := cw.Write([]string{"level", "energy", "degeneracy"}); err != nil {
			return errors.Wrap(err, "export: tower header")
		}
	}
	for _, lv := range tower.Levels {
		row := []string{
			strconv.Itoa(lv.Index),
			cfg.formatFloat(lv.Energy),
			strconv.Itoa(lv.Degeneracy),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "export: tower row")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "export: tower flush")
}

// WriteCorrelation writes the 6×6 correlation matrix, one row per Δrow,
// columns ordered by Δcol.
func WriteCorrelation(w io.Writer, m observe.CorrMatrix, cfg CSVConfig) error {
	cw := csv.NewWriter(w)
	if cfg.IncludeHeader {
		header := make([]string, lattice.Width)
		for dc := range header {
			header[dc] = "dcol" + strconv.Itoa(dc)
		}
		if err := cw.Write(header); err != nil {
			return errors.Wrap(err, "export: correlation header")
		}
	}
	for dr := 0; dr < lattice.Height; dr++ {
		row := make([]string, lattice.Width)
		for dc := 0; dc < lattice.Width; dc++ {
			row[dc] = cfg.formatFloat(m[dr][dc])
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "export: correlation row")
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "export: correlation flush")
}
