package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spintower/export"
	"github.com/katalvlaran/spintower/lattice"
	"github.com/katalvlaran/spintower/observe"
	"github.com/katalvlaran/spintower/rank"
	"github.com/katalvlaran/spintower/sampler"
)

// newRunCmd wires the full pipeline: sample → rank → spectrum → correlate →
// export. Flags override values from an optional YAML parameter file.
func newRunCmd() *cobra.Command {
	var (
		configPath string
		outDir     string
		flags      = defaultParams()
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sample one (Jx, Jy) parameter set and export the observables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := flags
			if configPath != "" {
				loaded, err := loadParams(configPath)
				if err != nil {
					return err
				}
				// File values win unless the flag was set explicitly.
				params = loaded
				applyFlagOverrides(cmd, &params, flags)
			}

			return runPipeline(cmd, params, outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML parameter file")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for artifacts")
	cmd.Flags().Float64Var(&flags.Jx, "jx", flags.Jx, "horizontal coupling (negative = ferromagnetic)")
	cmd.Flags().Float64Var(&flags.Jy, "jy", flags.Jy, "vertical coupling (negative = ferromagnetic)")
	cmd.Flags().IntVar(&flags.Steps, "steps", flags.Steps, "sampling budget per run")
	cmd.Flags().Float64Var(&flags.Beta, "beta", flags.Beta, "sampling-bias strength (0 = unbiased)")
	cmd.Flags().Int64Var(&flags.Seed, "seed", flags.Seed, "RNG seed (0 = fixed default stream)")
	cmd.Flags().IntVar(&flags.Runs, "runs", flags.Runs, "independent parallel runs to merge")
	cmd.Flags().IntVar(&flags.K, "k", flags.K, "ranked-subset size")
	cmd.Flags().IntVar(&flags.LevelCount, "levels", flags.LevelCount, "spectrum depth")
	cmd.Flags().Float64Var(&flags.Epsilon, "eps", flags.Epsilon, "energy-degeneracy tolerance")

	return cmd
}

// applyFlagOverrides copies explicitly-set flag values over file values.
func applyFlagOverrides(cmd *cobra.Command, params *runParams, flags runParams) {
	set := map[string]func(){
		"jx":     func() { params.Jx = flags.Jx },
		"jy":     func() { params.Jy = flags.Jy },
		"steps":  func() { params.Steps = flags.Steps },
		"beta":   func() { params.Beta = flags.Beta },
		"seed":   func() { params.Seed = flags.Seed },
		"runs":   func() { params.Runs = flags.Runs },
		"k":      func() { params.K = flags.K },
		"levels": func() { params.LevelCount = flags.LevelCount },
		"eps":    func() { params.Epsilon = flags.Epsilon },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

func runPipeline(cmd *cobra.Command, params runParams, outDir string) error {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: params.Jx, Jy: params.Jy}
	opts := sampler.Options{Steps: params.Steps, Beta: params.Beta, Seed: params.Seed}
	ctx := cmd.Context()

	var (
		ens *sampler.Ensemble
		err error
	)
	if params.Runs > 1 {
		ens, err = sampler.SampleRuns(ctx, torus, cpl, opts, params.Runs)
	} else {
		ens, err = sampler.Sample(ctx, torus, cpl, opts)
	}
	if err != nil {
		return err
	}

	ranking, err := rank.Rank(ens, params.K, params.Beta)
	if err != nil {
		return err
	}
	tower, err := observe.Spectrum(ens.History, params.LevelCount, params.Epsilon)
	if err != nil {
		return err
	}
	matrix, err := observe.Correlate(ranking.Configs(), ranking.Probabilities())
	if err != nil {
		return err
	}

	if err = os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	csvCfg := export.DefaultCSVConfig()
	if err = writeArtifact(filepath.Join(outDir, "ranking.csv"), func(f *os.File) error {
		return export.WriteRanking(f, ranking, csvCfg)
	}); err != nil {
		return err
	}
	if err = writeArtifact(filepath.Join(outDir, "tower.csv"), func(f *os.File) error {
		return export.WriteTower(f, tower, csvCfg)
	}); err != nil {
		return err
	}
	if err = writeArtifact(filepath.Join(outDir, "correlation.csv"), func(f *os.File) error {
		return export.WriteCorrelation(f, matrix, csvCfg)
	}); err != nil {
		return err
	}

	manifest := export.NewManifest(params.manifestParams())
	manifest.HistoryLength = len(ens.History)
	manifest.DistinctCount = ens.Size()
	manifest.GroundEnergy = ranking.States[0].Energy
	manifest.RankTruncated = ranking.Truncated
	manifest.TowerTruncated = tower.Truncated
	if err = writeArtifact(filepath.Join(outDir, "manifest.json"), func(f *os.File) error {
		return export.WriteManifest(f, manifest)
	}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %d distinct configurations, ground energy %.4f\n",
		manifest.ID, manifest.DistinctCount, manifest.GroundEnergy)
	if ranking.Truncated || tower.Truncated {
		fmt.Fprintln(out, "warning: ensemble smaller than requested; output truncated")
	}
	fmt.Fprintf(out, "artifacts written to %s\n", outDir)

	return nil
}

// writeArtifact creates path, hands it to write, and closes it, keeping the
// first error.
func writeArtifact(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	err = write(f)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = errors.Wrapf(cerr, "close %s", path)
	}

	return err
}
