package autodiff

import (
	"fmt"

	"github.com/katalvlaran/fractad/dual"
)

// AutoDiff evaluates f at point with forward-mode differentiation.
//
// Description:
//
//	One dual seed is created per independent variable, tagged 0..n−1 in
//	point order, each with derivative 1 with respect to itself and 0
//	with respect to its siblings. f runs once over the seeds; dual
//	arithmetic propagates every partial alongside the value.
//
// The result is normalized so its partials domain is exactly the seeded
// variables, in seed order: variables off the dependency path report
// zero, and a constant-valued f yields an all-zero gradient.
//
// Errors:
//   - ErrNilFunc   — f is nil.
//   - ErrDimension — point is empty.
//   - anything f itself reports (typically dual.ErrDomain or
//     dual.ErrUnsupported) propagates unchanged.
//
// Complexity: one evaluation of f; each dual operation costs O(n) in
// the number of live variables.
func AutoDiff(f Func, point []complex128, opts ...Option) (*dual.Dual, error) {
	if f == nil {
		return nil, fmt.Errorf("AutoDiff: %w", ErrNilFunc)
	}
	if len(point) == 0 {
		return nil, fmt.Errorf("AutoDiff: empty evaluation point: %w", ErrDimension)
	}
	c := resolve(opts)

	seeds := make([]dual.Number, len(point))
	ids := make([]dual.VarID, len(point))
	for i, v := range point {
		ids[i] = dual.VarID(i)
		seeds[i] = dual.VarWith(ids[i], v, c.backend)
	}

	out, err := f(seeds)
	if err != nil {
		return nil, fmt.Errorf("AutoDiff: %w", err)
	}

	d, err := dual.Promote(out, ids)
	if err != nil {
		return nil, fmt.Errorf("AutoDiff: %w", err)
	}

	return d, nil
}

// Jacobian runs AutoDiff for each (fns[i], points[i]) pair and collects
// the resulting duals as rows, preserving input order. Row i's partials
// domain is exactly the variables seeded for points[i] (tags 0..len−1).
//
// Errors:
//   - ErrDimension — fns and points differ in length, or a point is empty.
//   - ErrNilFunc   — any row's function is nil.
//   - per-row evaluation errors propagate with the row index attached.
//
// Complexity: one AutoDiff per row.
func Jacobian(fns []Func, points [][]complex128, opts ...Option) ([]*dual.Dual, error) {
	if len(fns) != len(points) {
		return nil, fmt.Errorf("Jacobian: %d functions vs %d points: %w",
			len(fns), len(points), ErrDimension)
	}

	rows := make([]*dual.Dual, len(fns))
	for i := range fns {
		row, err := AutoDiff(fns[i], points[i], opts...)
		if err != nil {
			return nil, fmt.Errorf("Jacobian: row %d: %w", i, err)
		}
		rows[i] = row
	}

	return rows, nil
}

// Derivative is the single-variable convenience used by root finding:
// it returns f(x) and f′(x) in one forward pass.
//
// Complexity: one evaluation of f.
func Derivative(f Func, x complex128, opts ...Option) (value, deriv complex128, err error) {
	d, err := AutoDiff(f, []complex128{x}, opts...)
	if err != nil {
		return 0, 0, err
	}

	return d.Value(), d.Partial(0), nil
}
