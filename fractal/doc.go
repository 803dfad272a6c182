// Package fractal scans rectangles of the complex plane with Newton's
// method and turns the basins of attraction into grids and images —
// the classical Newton fractal.
//
// 🚀 What is a Newton fractal?
//
//	Run Newton's method from every sample point of a complex rectangle
//	and color each point by WHICH root it converges to. The basin
//	boundaries are fractal: arbitrarily close starting points can end
//	at different roots.
//
// ✨ Key features:
//   - Independent cells — every sample point runs its own Newton
//     iteration; no information flows between cells except the shared,
//     append-only table of discovered roots
//   - Incremental root discovery — converged points are matched against
//     known roots within the RootTolerance δ, or append a new entry;
//     the table is mutex-serialized so a race can never register the
//     same root twice
//   - Parallel scan — rows are distributed over an errgroup worker pool
//     (Workers, default GOMAXPROCS)
//   - Rendering — Render maps root index → palette color and iteration
//     count → shade, producing an *image.RGBA ready for PNG encoding
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fractad/dual"
//	  "github.com/katalvlaran/fractad/fractal"
//	)
//
//	// f(z) = z³ − 1
//	f := func(v []dual.Number) (dual.Number, error) {
//	  z3, err := dual.PowReal(v[0], 3)
//	  if err != nil {
//	    return nil, err
//	  }
//	  return dual.Sub(z3, dual.Lift(1))
//	}
//
//	opts := fractal.Options{
//	  Width: 512, Height: 512,
//	  Tolerance: 1e-8, MaxIter: 50,
//	  RootTolerance: 1e-6, // δ — required, no default
//	}
//	grid, err := fractal.Generate(f, fractal.Region{ReMin: -2, ReMax: 2, ImMin: -2, ImMax: 2}, opts)
//	img := grid.Render(nil) // default palette
//
// Cells that never converge within MaxIter carry the NonConvergent
// sentinel and render black; they are data, not errors.
//
// Errors:
//   - ErrNilFunction  — nil function
//   - ErrEmptyRegion  — degenerate rectangle
//   - ErrBadResolution — width or height below 1
//   - ErrRootTolerance — δ missing or non-positive (it has no default;
//     choose it relative to the convergence tolerance ε)
//   - ErrCellIndex    — At called outside the grid
//
// Complexity: O(W·H·K) function evaluations, spread across Workers.
package fractal
