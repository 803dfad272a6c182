package fractal_test

import (
	"fmt"

	"github.com/katalvlaran/fractad/dual"
	"github.com/katalvlaran/fractad/fractal"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Scan the classic z³ − 1 fractal over [−2,2]×[−2,2]. Every sample
//	point runs its own Newton iteration; converged points are matched
//	into the shared root table within δ. Three basins → three roots.
//
// Options:
//   - Tolerance = 1e-8     (Newton ε)
//   - MaxIter   = 50       (Newton K)
//   - RootTolerance = 1e-6 (δ — required, no default)
//   - Workers   = 1        (deterministic discovery order for the demo)
//
// Complexity: O(W·H·K) function evaluations.
func ExampleGenerate() {
	f := func(v []dual.Number) (dual.Number, error) {
		z3, err := dual.PowReal(v[0], 3)
		if err != nil {
			return nil, err
		}

		return dual.Sub(z3, dual.Lift(1))
	}

	grid, err := fractal.Generate(f, fractal.Region{ReMin: -2, ReMax: 2, ImMin: -2, ImMax: 2},
		fractal.Options{
			Width: 9, Height: 9,
			Tolerance: 1e-8, MaxIter: 50,
			RootTolerance: 1e-6,
			Workers:       1,
		})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cells=%d roots=%d\n", grid.Width*grid.Height, grid.RootCount())
	// Output:
	// cells=81 roots=3
}
