package fractal

import (
	"errors"
	"fmt"
	"math/cmplx"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fractad/autodiff"
	"github.com/katalvlaran/fractad/newton"
)

// rootTable is the scan's only shared state: the append-only list of
// distinct roots. Lookup-or-append runs under the mutex so two workers
// converging to the same new root concurrently can never register it
// twice or miss a match.
type rootTable struct {
	mu    sync.Mutex
	tol   float64
	roots []complex128
}

// match returns the index of the first known root within tol of z,
// appending z as a new root when none matches.
// Complexity: O(r) under the lock, r = roots discovered so far.
func (t *rootTable) match(z complex128) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, r := range t.roots {
		if cmplx.Abs(z-r) < t.tol {
			return i
		}
	}
	t.roots = append(t.roots, z)

	return len(t.roots) - 1
}

// Generate — Newton fractal grid scan.
//
// Description:
//
//	Every sample point of the region runs an independent Newton
//	iteration on f. Converged points are matched against the shared
//	roots table within δ; non-convergent points (MaxIter exhausted or a
//	stationary point hit) record the NonConvergent sentinel. Rows are
//	scanned in parallel by an errgroup worker pool.
//
// Sampling: points span the region inclusively — column 0 sits at ReMin,
// column Width−1 at ReMax; row 0 at ImMax (image convention, top row
// first), row Height−1 at ImMin. A 1-wide or 1-tall grid samples the
// axis midpoint.
//
// Errors:
//   - ErrNilFunction, ErrEmptyRegion, ErrBadResolution, ErrRootTolerance
//     — validation, before any work starts.
//   - domain violations raised by f itself (other than a stationary
//     Newton step, which is recorded as non-convergent) abort the scan.
//
// Complexity: O(W·H·K) evaluations of f across opts.Workers goroutines;
// memory O(W·H).
func Generate(f autodiff.Func, region Region, opts Options) (*Grid, error) {
	if f == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNilFunction)
	}
	if !region.valid() {
		return nil, fmt.Errorf("Generate: [%g,%g]x[%g,%g]: %w",
			region.ReMin, region.ReMax, region.ImMin, region.ImMax, ErrEmptyRegion)
	}
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("Generate: %dx%d: %w", opts.Width, opts.Height, ErrBadResolution)
	}
	if opts.RootTolerance <= 0 {
		return nil, fmt.Errorf("Generate: δ=%g: %w", opts.RootTolerance, ErrRootTolerance)
	}

	nOpts := opts.newtonOptions()
	table := &rootTable{tol: opts.RootTolerance}
	grid := &Grid{
		Width:   opts.Width,
		Height:  opts.Height,
		MaxIter: nOpts.MaxIter,
		cells:   make([]Cell, opts.Width*opts.Height),
	}

	var eg errgroup.Group
	eg.SetLimit(opts.workers())
	for y := 0; y < opts.Height; y++ {
		y := y
		eg.Go(func() error {
			for x := 0; x < opts.Width; x++ {
				point := region.sample(x, y, opts.Width, opts.Height)
				cell, err := scanPoint(f, point, nOpts, table)
				if err != nil {
					return fmt.Errorf("Generate: cell (%d,%d): %w", x, y, err)
				}
				grid.cells[grid.index(x, y)] = cell
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	grid.roots = table.roots

	return grid, nil
}

// scanPoint runs one independent Newton iteration and classifies the
// outcome. A stationary point (zero derivative) is flagged
// non-convergent rather than aborting the scan; every other evaluation
// error propagates.
func scanPoint(f autodiff.Func, point complex128, nOpts newton.Options, table *rootTable) (Cell, error) {
	res, err := newton.FindRoot(f, point, &nOpts)
	switch {
	case errors.Is(err, newton.ErrZeroDerivative):
		return Cell{Point: point, Root: NonConvergent, Iterations: nOpts.MaxIter}, nil
	case err != nil:
		return Cell{}, err
	case !res.Converged:
		return Cell{Point: point, Root: NonConvergent, Iterations: res.Iterations}, nil
	default:
		return Cell{Point: point, Root: table.match(res.Root), Iterations: res.Iterations}, nil
	}
}

// sample maps cell coordinates to a complex point, endpoints inclusive;
// a single-sample axis uses its midpoint.
func (r Region) sample(x, y, w, h int) complex128 {
	re := (r.ReMin + r.ReMax) / 2
	if w > 1 {
		re = r.ReMin + float64(x)*(r.ReMax-r.ReMin)/float64(w-1)
	}
	im := (r.ImMin + r.ImMax) / 2
	if h > 1 {
		im = r.ImMax - float64(y)*(r.ImMax-r.ImMin)/float64(h-1)
	}

	return complex(re, im)
}
