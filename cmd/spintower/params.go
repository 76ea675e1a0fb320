package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spintower/export"
	"github.com/katalvlaran/spintower/observe"
	"github.com/katalvlaran/spintower/sampler"
)

// runParams is the YAML shape of a parameter file. Field names match the
// manifest keys so a manifest's params block can be replayed directly.
type runParams struct {
	Jx         float64 `yaml:"jx"`
	Jy         float64 `yaml:"jy"`
	Steps      int     `yaml:"steps"`
	Beta       float64 `yaml:"beta"`
	Seed       int64   `yaml:"seed"`
	Runs       int     `yaml:"runs"`
	K          int     `yaml:"k"`
	LevelCount int     `yaml:"level_count"`
	Epsilon    float64 `yaml:"epsilon"`
}

// defaultParams mirrors the library defaults.
func defaultParams() runParams {
	opts := sampler.DefaultOptions()

	return runParams{
		Jx:         1.0,
		Jy:         1.0,
		Steps:      opts.Steps,
		Beta:       opts.Beta,
		Seed:       opts.Seed,
		Runs:       1,
		K:          6,
		LevelCount: observe.DefaultLevelCount,
		Epsilon:    observe.DefaultEpsilon,
	}
}

// loadParams reads a YAML parameter file over the defaults.
func loadParams(path string) (runParams, error) {
	p := defaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "read parameter file")
	}
	if err = yaml.Unmarshal(data, &p); err != nil {
		return p, errors.Wrap(err, "parse parameter file")
	}

	return p, nil
}

// manifestParams converts the CLI parameters into the manifest record.
func (p runParams) manifestParams() export.RunParams {
	return export.RunParams{
		Jx:         p.Jx,
		Jy:         p.Jy,
		Steps:      p.Steps,
		Beta:       p.Beta,
		Seed:       p.Seed,
		Runs:       p.Runs,
		K:          p.K,
		LevelCount: p.LevelCount,
		Epsilon:    p.Epsilon,
	}
}
