// Package fractal defines core types, options, and sentinel errors for
// the Newton fractal grid generator.
package fractal

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/fractad/newton"
)

// Sentinel errors for fractal generation.
var (
	// ErrNilFunction indicates a nil function was supplied.
	ErrNilFunction = errors.New("fractal: function must be non-nil")
	// ErrEmptyRegion indicates a degenerate complex-plane rectangle.
	ErrEmptyRegion = errors.New("fractal: region must have positive extent on both axes")
	// ErrBadResolution indicates a sample resolution below 1×1.
	ErrBadResolution = errors.New("fractal: resolution must be at least 1x1")
	// ErrRootTolerance indicates a missing or non-positive root-matching
	// tolerance δ. It has no default: pick it relative to ε.
	ErrRootTolerance = errors.New("fractal: root tolerance must be positive")
	// ErrCellIndex indicates a cell coordinate outside the grid.
	ErrCellIndex = errors.New("fractal: cell coordinate out of range")
)

// NonConvergent is the root-index sentinel for cells whose Newton
// iteration did not reach tolerance within MaxIter (or hit a stationary
// point). It is a normal terminal state, recorded so the scan continues.
const NonConvergent = -1

// Region is an axis-aligned rectangle of the complex plane:
// real parts in [ReMin, ReMax], imaginary parts in [ImMin, ImMax].
type Region struct {
	ReMin, ReMax float64
	ImMin, ImMax float64
}

// valid reports whether the rectangle has positive extent on both axes.
func (r Region) valid() bool {
	return r.ReMax > r.ReMin && r.ImMax > r.ImMin
}

// Options configures one fractal scan.
//
// Fields:
//   - Width, Height   — horizontal and vertical sample resolution.
//   - Tolerance       — Newton convergence tolerance ε (0 ⇒ newton default).
//   - MaxIter         — Newton iteration cap K (0 ⇒ newton default).
//   - RootTolerance   — root-matching tolerance δ: a converged point
//     within δ of a discovered root reuses its index, otherwise it
//     appends a new root. REQUIRED — there is no sensible universal
//     default; choose δ a few orders above ε.
//   - Workers         — row-level parallelism (≤ 0 ⇒ GOMAXPROCS).
type Options struct {
	Width, Height int
	Tolerance     float64
	MaxIter       int
	RootTolerance float64
	Workers       int
}

// newtonOptions resolves the embedded Newton parameters, falling back to
// the newton package defaults for unset values.
func (o Options) newtonOptions() newton.Options {
	n := newton.DefaultOptions()
	if o.Tolerance > 0 {
		n.Tolerance = o.Tolerance
	}
	if o.MaxIter > 0 {
		n.MaxIter = o.MaxIter
	}

	return n
}

// workers resolves the worker count.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// Cell is one grid sample: the complex point scanned, the index of the
// root its Newton iteration converged to (or NonConvergent), and the
// iteration count at termination.
type Cell struct {
	Point      complex128
	Root       int
	Iterations int
}

// Grid is the immutable result of one scan: row-major cells plus the
// table of distinct roots discovered during the scan. Cell.Root indexes
// into Roots; grids are safe for concurrent reads.
type Grid struct {
	Width, Height int
	MaxIter       int

	cells []Cell
	roots []complex128
}

// index maps (x, y) to a row-major cell index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// InBounds reports whether (x, y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y), or ErrCellIndex when out of bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, ErrCellIndex
	}

	return g.cells[g.index(x, y)], nil
}

// Cells returns a copy of the row-major cell slice; mutating it cannot
// affect the grid.
// Complexity: O(W·H).
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)

	return out
}

// Roots returns a copy of the discovered-roots table, in discovery order.
// Complexity: O(r).
func (g *Grid) Roots() []complex128 {
	out := make([]complex128, len(g.roots))
	copy(out, g.roots)

	return out
}

// RootCount returns the number of distinct roots discovered.
// Complexity: O(1).
func (g *Grid) RootCount() int { return len(g.roots) }
