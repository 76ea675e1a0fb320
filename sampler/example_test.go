package sampler_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spintower/lattice"
	"github.com/katalvlaran/spintower/sampler"
)

// ExampleSample runs a short deterministic walk and inspects the ensemble
// shape: Steps+1 history entries and a balanced first-seen configuration.
func ExampleSample() {
	torus := lattice.New()
	cpl := lattice.Couplings{Jx: 1.0, Jy: 1.0}
	opts := sampler.Options{Steps: 100, Beta: 2.0, Seed: 42}

	ens, err := sampler.Sample(context.Background(), torus, cpl, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	up, down := ens.Visits()[0].Config.Counts()
	fmt.Printf("history entries: %d\n", len(ens.History))
	fmt.Printf("start sector: %d up, %d down\n", up, down)
	// Output:
	// history entries: 101
	// start sector: 18 up, 18 down
}
